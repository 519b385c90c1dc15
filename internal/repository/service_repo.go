package repository

import (
	"context"

	"gorm.io/gorm"

	"fixitnow/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Category").
		First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context, limit, offset int) ([]domain.Service, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var items []domain.Service
	tx := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Category").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&items)
	return items, tx.Error
}

func (r *ServiceRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Service, error) {
	var items []domain.Service
	tx := r.db.WithContext(ctx).
		Preload("Category").
		Where("provider_id = ?", providerID).
		Order("id ASC").
		Find(&items)
	return items, tx.Error
}
