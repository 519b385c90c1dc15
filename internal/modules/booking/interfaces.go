package booking

import (
	"context"

	"fixitnow/internal/domain"
)

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

// CustomerGate resolves the booking customer
type CustomerGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ServiceGate resolves the booked service
type ServiceGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
