package review

import (
	"context"

	"fixitnow/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByBooking(ctx context.Context, bookingID int64) (*domain.Review, error)
}

// BookingGate checks that the reviewed booking exists
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
