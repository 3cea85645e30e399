package appointment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) (*Appointment, error)
	GetByID(ctx context.Context, id int) (*Appointment, error)
	ListForMember(ctx context.Context, memberID int) ([]Appointment, error)
	ListForTrainerDate(ctx context.Context, trainerID int, date time.Time) ([]Appointment, error)
	ListByStatus(ctx context.Context, status string) ([]Appointment, error)
	UpdateStatus(ctx context.Context, a *Appointment) error
}
