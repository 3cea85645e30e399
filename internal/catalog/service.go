package catalog

import (
	"context"
)

type CatalogService interface {
	CreateService(ctx context.Context, req CreateServiceRequest) (*Service, error)
	GetService(ctx context.Context, id int) (*Service, error)
	ListServices(ctx context.Context) ([]Service, error)
	DeactivateService(ctx context.Context, id int) error
}

type catalogService struct {
	repo Repository
}

func NewService(repo Repository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) CreateService(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	svc := &Service{
		GymCenterID:     req.GymCenterID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
	}

	return s.repo.Create(ctx, svc)
}

func (s *catalogService) GetService(ctx context.Context, id int) (*Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *catalogService) ListServices(ctx context.Context) ([]Service, error) {
	return s.repo.GetAllActive(ctx)
}

func (s *catalogService) DeactivateService(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}
