package availability

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrWindowNotFound = errors.New("availability window not found")

const windowColumns = `id, trainer_id, day_of_week, start_minute, end_minute, is_active, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, w *Window) (*Window, error) {
	query := `
		INSERT INTO trainer_availability (trainer_id, day_of_week, start_minute, end_minute)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + windowColumns

	var created Window
	err := r.db.GetContext(ctx, &created, query,
		w.TrainerID, int(w.DayOfWeek), w.StartMinute, w.EndMinute,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListForTrainer(ctx context.Context, trainerID int) ([]Window, error) {
	query := `
		SELECT ` + windowColumns + `
		FROM trainer_availability
		WHERE trainer_id = $1
		ORDER BY day_of_week, start_minute
	`

	var windows []Window
	err := r.db.SelectContext(ctx, &windows, query, trainerID)
	if err != nil {
		return nil, err
	}

	return windows, nil
}

// ListActiveForTrainerWeekday returns windows in start order; slot
// generation walks them in this order.
func (r *repository) ListActiveForTrainerWeekday(ctx context.Context, trainerID int, weekday time.Weekday) ([]Window, error) {
	query := `
		SELECT ` + windowColumns + `
		FROM trainer_availability
		WHERE trainer_id = $1 AND day_of_week = $2 AND is_active = true
		ORDER BY start_minute
	`

	var windows []Window
	err := r.db.SelectContext(ctx, &windows, query, trainerID, int(weekday))
	if err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *repository) Deactivate(ctx context.Context, id, trainerID int) error {
	query := `UPDATE trainer_availability SET is_active = false WHERE id = $1 AND trainer_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, trainerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id, trainerID int) error {
	query := `DELETE FROM trainer_availability WHERE id = $1 AND trainer_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, trainerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}
