package domain

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

type Payment struct {
	ID             int64         `json:"id"`
	BookingID      int64         `json:"booking_id" gorm:"uniqueIndex"`
	Amount         float64       `json:"amount" validate:"required,gt=0"`
	Method         PaymentMethod `json:"method"`
	TransactionRef string        `json:"transaction_ref"`
	PaidAt         time.Time     `json:"paid_at"`
	CreatedAt      time.Time     `json:"created_at"`
}
