package domain

import "time"

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" gorm:"uniqueIndex" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
