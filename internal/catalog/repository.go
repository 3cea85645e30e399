package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrServiceNotFound = errors.New("service not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Service) (*Service, error) {
	query := `
		INSERT INTO services (gym_center_id, name, description, duration_minutes, price_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, gym_center_id, name, description, duration_minutes, price_cents, is_active, created_at
	`

	var created Service
	err := r.db.GetContext(ctx, &created, query,
		s.GymCenterID, s.Name, s.Description, s.DurationMinutes, s.PriceCents,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Service, error) {
	query := `
		SELECT id, gym_center_id, name, description, duration_minutes, price_cents, is_active, created_at
		FROM services
		WHERE id = $1
	`

	var s Service
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetAllActive(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, gym_center_id, name, description, duration_minutes, price_cents, is_active, created_at
		FROM services
		WHERE is_active = true
		ORDER BY name ASC
	`

	var services []Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE services SET is_active = false WHERE id = $1 AND is_active = true`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
