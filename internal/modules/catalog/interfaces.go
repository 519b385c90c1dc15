package catalog

import (
	"context"

	"fixitnow/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, limit, offset int) ([]domain.Service, error)
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Service, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, cat *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// ProviderGate resolves the service owner
type ProviderGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
