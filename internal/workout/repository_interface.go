package workout

import "context"

type Repository interface {
	Create(ctx context.Context, p *WorkoutPlan) (*WorkoutPlan, error)
	GetByID(ctx context.Context, id int) (*WorkoutPlan, error)
	ListForMember(ctx context.Context, memberID int) ([]WorkoutPlan, error)
	Delete(ctx context.Context, id, memberID int) error
}
