package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	GetByUserID(ctx context.Context, userID int) (*Member, error)
	GetAll(ctx context.Context) ([]Member, error)
	Update(ctx context.Context, m *Member) error
	Deactivate(ctx context.Context, id int) error
}
