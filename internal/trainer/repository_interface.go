package trainer

import "context"

type Repository interface {
	Create(ctx context.Context, t *Trainer) (*Trainer, error)
	GetByID(ctx context.Context, id int) (*Trainer, error)
	GetAllActive(ctx context.Context) ([]Trainer, error)
	GetByService(ctx context.Context, serviceID int) ([]TrainerSummary, error)
	AssignServices(ctx context.Context, trainerID int, serviceIDs []int) error
	OffersService(ctx context.Context, trainerID, serviceID int) (bool, error)
	Deactivate(ctx context.Context, id int) error
}
