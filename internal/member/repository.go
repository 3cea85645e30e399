package member

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrMemberNotFound = errors.New("member not found")

const memberColumns = `
	id, user_id, first_name, last_name, phone, date_of_birth, gender,
	address, emergency_contact, height_cm, weight_kg, fitness_goal,
	medical_conditions, is_active, join_date, membership_expiry
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) (*Member, error) {
	query := `
		INSERT INTO members (
			user_id, first_name, last_name, phone, date_of_birth, gender,
			address, emergency_contact, height_cm, weight_kg, fitness_goal,
			medical_conditions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + memberColumns

	var created Member
	err := r.db.GetContext(ctx, &created, query,
		m.UserID, m.FirstName, m.LastName, m.Phone, m.DateOfBirth, m.Gender,
		m.Address, m.EmergencyContact, m.HeightCm, m.WeightKg, m.FitnessGoal,
		m.MedicalConditions,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID int) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE user_id = $1`

	var m Member
	err := r.db.GetContext(ctx, &m, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE is_active = true ORDER BY join_date DESC`

	var members []Member
	err := r.db.SelectContext(ctx, &members, query)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) Update(ctx context.Context, m *Member) error {
	query := `
		UPDATE members
		SET phone = $1, gender = $2, address = $3, emergency_contact = $4,
		    height_cm = $5, weight_kg = $6, fitness_goal = $7,
		    medical_conditions = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		m.Phone, m.Gender, m.Address, m.EmergencyContact,
		m.HeightCm, m.WeightKg, m.FitnessGoal, m.MedicalConditions, m.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE members SET is_active = false WHERE id = $1 AND is_active = true`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
