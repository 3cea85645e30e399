package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, s *Service) (*Service, error)
	GetByID(ctx context.Context, id int) (*Service, error)
	GetAllActive(ctx context.Context) ([]Service, error)
	Deactivate(ctx context.Context, id int) error
}
