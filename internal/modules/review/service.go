package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
}

func NewService(reviews ReviewRepository, bookings BookingGate) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

func (s *Service) Create(ctx context.Context, bookingID int64, req CreateReviewRequest) (*domain.Review, error) {
	if bookingID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		// One review per booking, enforced by the unique index.
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}

// GetByBooking returns the booking's review, or nil when it has none.
func (s *Service) GetByBooking(ctx context.Context, bookingID int64) (*domain.Review, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return s.reviews.GetByBooking(ctx, bookingID)
}
