package gym

import "context"

type Repository interface {
	Create(ctx context.Context, g *GymCenter) (*GymCenter, error)
	GetAll(ctx context.Context) ([]GymCenter, error)
	GetByID(ctx context.Context, id int) (*GymCenter, error)
	Deactivate(ctx context.Context, id int) error
}
