package booking

import "errors"

var (
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrServiceNotFound         = errors.New("service not found")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrInvalidStatus           = errors.New("invalid status value")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
