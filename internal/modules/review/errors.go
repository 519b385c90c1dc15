package review

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrAlreadyReviewed = errors.New("already_reviewed")
)
