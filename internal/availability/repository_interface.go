package availability

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, w *Window) (*Window, error)
	ListForTrainer(ctx context.Context, trainerID int) ([]Window, error)
	ListActiveForTrainerWeekday(ctx context.Context, trainerID int, weekday time.Weekday) ([]Window, error)
	Deactivate(ctx context.Context, id, trainerID int) error
	Delete(ctx context.Context, id, trainerID int) error
}
