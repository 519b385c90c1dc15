package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"
)

type Service struct {
	services   ServiceRepository
	categories CategoryRepository
	providers  ProviderGate
}

func NewService(services ServiceRepository, categories CategoryRepository, providers ProviderGate) *Service {
	return &Service{
		services:   services,
		categories: categories,
		providers:  providers,
	}
}

// CreateService publishes a new service offering under the given provider.
func (s *Service) CreateService(ctx context.Context, providerID int64, req CreateServiceRequest) (*domain.Service, error) {
	provider, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if provider.Role != domain.RoleProvider {
		return nil, ErrForbidden
	}

	cat, err := s.categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	svc := &domain.Service{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ProviderID:  provider.ID,
		CategoryID:  cat.ID,
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}

	provider.PasswordHash = ""
	svc.Provider = provider
	svc.Category = cat
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if svc.Provider != nil {
		svc.Provider.PasswordHash = ""
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context, limit, offset int) ([]domain.Service, error) {
	items, err := s.services.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Provider != nil {
			items[i].Provider.PasswordHash = ""
		}
	}
	return items, nil
}

func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]domain.Service, error) {
	if providerID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.services.ListByProvider(ctx, providerID)
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	cat := &domain.Category{Name: req.Name}
	if err := s.categories.Create(ctx, cat); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return cat, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}
