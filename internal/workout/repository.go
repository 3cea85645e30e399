package workout

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrPlanNotFound = errors.New("workout plan not found")

const planColumns = `id, member_id, goal, content, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *WorkoutPlan) (*WorkoutPlan, error) {
	query := `
		INSERT INTO workout_plans (member_id, goal, content)
		VALUES ($1, $2, $3)
		RETURNING ` + planColumns

	var created WorkoutPlan
	err := r.db.GetContext(ctx, &created, query, p.MemberID, p.Goal, p.Content)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*WorkoutPlan, error) {
	query := `SELECT ` + planColumns + ` FROM workout_plans WHERE id = $1`

	var p WorkoutPlan
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListForMember(ctx context.Context, memberID int) ([]WorkoutPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM workout_plans
		WHERE member_id = $1
		ORDER BY created_at DESC
	`

	var plans []WorkoutPlan
	err := r.db.SelectContext(ctx, &plans, query, memberID)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) Delete(ctx context.Context, id, memberID int) error {
	query := `DELETE FROM workout_plans WHERE id = $1 AND member_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, memberID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPlanNotFound
	}

	return nil
}
