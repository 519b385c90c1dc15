package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
)

type Booking struct {
	ID          int64         `json:"id"`
	BookingDate time.Time     `json:"booking_date"`
	Status      BookingStatus `json:"status"`
	CustomerID  int64         `json:"customer_id"`
	ServiceID   int64         `json:"service_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Связи
	Customer *User    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Service  *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}
