package domain

import "time"

type Service struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Price       float64   `json:"price" validate:"required,gte=0"`
	ProviderID  int64     `json:"provider_id"`
	CategoryID  int64     `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Связи
	Provider *User     `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
