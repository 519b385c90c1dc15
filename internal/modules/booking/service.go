package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fixitnow/internal/domain"
)

type Service struct {
	bookings BookingRepository
	users    CustomerGate
	services ServiceGate
}

func NewService(bookings BookingRepository, users CustomerGate, services ServiceGate) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		services: services,
	}
}

// Create books a service for a customer. The booking starts in PENDING
// with booking_date set to the moment of the call.
func (s *Service) Create(ctx context.Context, customerID, serviceID int64) (*domain.Booking, error) {
	customer, err := s.users.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		CustomerID:  customer.ID,
		ServiceID:   svc.ID,
		BookingDate: time.Now(),
		Status:      domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	customer.PasswordHash = ""
	b.Customer = customer
	b.Service = svc
	return b, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	if _, err := s.users.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return s.bookings.ListByCustomer(ctx, customerID)
}

// UpdateStatus moves a booking along its lifecycle. Only
// PENDING→CONFIRMED and CONFIRMED→COMPLETED are legal.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, newStatus domain.BookingStatus) (*domain.Booking, error) {
	switch newStatus {
	case domain.BookingPending, domain.BookingConfirmed, domain.BookingCompleted:
	default:
		return nil, ErrInvalidStatus
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	legal := (b.Status == domain.BookingPending && newStatus == domain.BookingConfirmed) ||
		(b.Status == domain.BookingConfirmed && newStatus == domain.BookingCompleted)
	if !legal {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}

	b.Status = newStatus
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}
