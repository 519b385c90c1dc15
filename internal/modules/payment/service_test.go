package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fixitnow/internal/domain"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil && args.Error(0) == nil {
		p.ID = 777 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingGate)

	bookings.On("GetByID", mock.Anything, int64(9)).
		Return(&domain.Booking{ID: 9, Status: domain.BookingCompleted}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(payments, bookings)

	p, err := svc.Create(context.Background(), 9, CreatePaymentRequest{Amount: 60, Method: "CARD"})

	assert.NoError(t, err)
	assert.Equal(t, int64(777), p.ID)
	assert.Equal(t, int64(9), p.BookingID)
	assert.Equal(t, domain.PaymentCard, p.Method)
	assert.NotEmpty(t, p.TransactionRef)
	assert.False(t, p.PaidAt.IsZero())
	payments.AssertExpectations(t)
}

func TestService_Create_BookingNotFound(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingGate)

	bookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(payments, bookings)

	_, err := svc.Create(context.Background(), 404, CreatePaymentRequest{Amount: 60, Method: "CASH"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Create_SecondPaymentConflicts(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingGate)

	bookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{ID: 9}, nil)
	payments.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: payments.booking_id"))

	svc := NewService(payments, bookings)

	_, err := svc.Create(context.Background(), 9, CreatePaymentRequest{Amount: 60, Method: "CARD"})

	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestService_Create_InvalidAmount(t *testing.T) {
	svc := NewService(new(MockPaymentRepository), new(MockBookingGate))

	_, err := svc.Create(context.Background(), 9, CreatePaymentRequest{Amount: 0, Method: "CARD"})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_GetByBooking_NoPaymentIsNil(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingGate)

	bookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{ID: 9}, nil)
	payments.On("GetByBooking", mock.Anything, int64(9)).Return(nil, nil)

	svc := NewService(payments, bookings)

	p, err := svc.GetByBooking(context.Background(), 9)

	assert.NoError(t, err)
	assert.Nil(t, p)
}
