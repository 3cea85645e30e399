package trainer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrTrainerNotFound = errors.New("trainer not found")

const trainerColumns = `
	id, gym_center_id, first_name, last_name, phone, email, specialization,
	bio, experience_years, is_active, hire_date, created_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Trainer) (*Trainer, error) {
	query := `
		INSERT INTO trainers (
			gym_center_id, first_name, last_name, phone, email,
			specialization, bio, experience_years
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + trainerColumns

	var created Trainer
	err := r.db.GetContext(ctx, &created, query,
		t.GymCenterID, t.FirstName, t.LastName, t.Phone, t.Email,
		t.Specialization, t.Bio, t.ExperienceYears,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE id = $1`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (r *repository) GetAllActive(ctx context.Context) ([]Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE is_active = true ORDER BY last_name, first_name`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) GetByService(ctx context.Context, serviceID int) ([]TrainerSummary, error) {
	query := `
		SELECT t.id, t.first_name, t.last_name
		FROM trainers t
		JOIN trainer_services ts ON ts.trainer_id = t.id
		WHERE t.is_active = true AND ts.service_id = $1 AND ts.is_active = true
		ORDER BY t.last_name, t.first_name
	`

	var summaries []TrainerSummary
	err := r.db.SelectContext(ctx, &summaries, query, serviceID)
	if err != nil {
		return nil, err
	}

	for i := range summaries {
		summaries[i].FullName = summaries[i].FirstName + " " + summaries[i].LastName
	}

	return summaries, nil
}

func (r *repository) AssignServices(ctx context.Context, trainerID int, serviceIDs []int) error {
	query := `
		INSERT INTO trainer_services (trainer_id, service_id)
		VALUES ($1, $2)
		ON CONFLICT (trainer_id, service_id) DO UPDATE SET is_active = true
	`

	for _, serviceID := range serviceIDs {
		if _, err := r.db.ExecContext(ctx, query, trainerID, serviceID); err != nil {
			return err
		}
	}

	return nil
}

func (r *repository) OffersService(ctx context.Context, trainerID, serviceID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM trainer_services
			WHERE trainer_id = $1 AND service_id = $2 AND is_active = true
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, trainerID, serviceID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE trainers SET is_active = false WHERE id = $1 AND is_active = true`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTrainerNotFound
	}

	return nil
}
