package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"
)

type Service struct {
	payments PaymentRepository
	bookings BookingGate
}

func NewService(payments PaymentRepository, bookings BookingGate) *Service {
	return &Service{payments: payments, bookings: bookings}
}

func (s *Service) Create(ctx context.Context, bookingID int64, req CreatePaymentRequest) (*domain.Payment, error) {
	if bookingID <= 0 || req.Amount <= 0 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	p := &domain.Payment{
		BookingID:      bookingID,
		Amount:         req.Amount,
		Method:         domain.PaymentMethod(req.Method),
		TransactionRef: uuid.NewString(),
		PaidAt:         time.Now(),
	}

	if err := s.payments.Create(ctx, p); err != nil {
		// One payment per booking, enforced by the unique index.
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyPaid
		}
		return nil, err
	}
	return p, nil
}

// GetByBooking returns the booking's payment, or nil when it has none.
func (s *Service) GetByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return s.payments.GetByBooking(ctx, bookingID)
}
