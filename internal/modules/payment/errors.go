package payment

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrAlreadyPaid     = errors.New("already_paid")
)
