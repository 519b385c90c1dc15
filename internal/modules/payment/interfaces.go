package payment

import (
	"context"

	"fixitnow/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error)
}

// BookingGate checks that the paid booking exists
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
