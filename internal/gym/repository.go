package gym

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrGymNotFound = errors.New("gym not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, g *GymCenter) (*GymCenter, error) {
	query := `
		INSERT INTO gym_centers (name, address, phone, email, open_minute, close_minute, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, address, phone, email, open_minute, close_minute, description, is_active, created_at
	`

	var created GymCenter
	err := r.db.GetContext(ctx, &created, query,
		g.Name, g.Address, g.Phone, g.Email, g.OpenMinute, g.CloseMinute, g.Description,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetAll(ctx context.Context) ([]GymCenter, error) {
	query := `
		SELECT id, name, address, phone, email, open_minute, close_minute, description, is_active, created_at
		FROM gym_centers
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	var gyms []GymCenter
	err := r.db.SelectContext(ctx, &gyms, query)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*GymCenter, error) {
	query := `
		SELECT id, name, address, phone, email, open_minute, close_minute, description, is_active, created_at
		FROM gym_centers
		WHERE id = $1
	`

	var g GymCenter
	err := r.db.GetContext(ctx, &g, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return &g, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE gym_centers SET is_active = false WHERE id = $1 AND is_active = true`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrGymNotFound
	}

	return nil
}
