package appointment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrTimeConflict        = errors.New("time slot already booked")
)

const appointmentColumns = `
	id, member_id, trainer_id, service_id, appointment_date, start_minute, end_minute,
	status, price_cents, notes, cancellation_reason, approved_by, approved_at, created_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts the appointment. The appointments table carries an
// exclusion constraint over (trainer, date, minute range) for
// non-cancelled rows, so two racing inserts for overlapping ranges
// cannot both land; the loser surfaces as ErrTimeConflict.
func (r *repository) Create(ctx context.Context, a *Appointment) (*Appointment, error) {
	query := `
		INSERT INTO appointments (
			member_id, trainer_id, service_id, appointment_date,
			start_minute, end_minute, status, price_cents, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + appointmentColumns

	var created Appointment
	err := r.db.GetContext(ctx, &created, query,
		a.MemberID, a.TrainerID, a.ServiceID, a.AppointmentDate,
		a.StartMinute, a.EndMinute, a.Status, a.PriceCents, a.Notes,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgerrcode.ExclusionViolation {
			return nil, ErrTimeConflict
		}
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var a Appointment
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *repository) ListForMember(ctx context.Context, memberID int) ([]Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE member_id = $1
		ORDER BY appointment_date DESC, start_minute DESC
	`

	var appointments []Appointment
	err := r.db.SelectContext(ctx, &appointments, query, memberID)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

// ListForTrainerDate returns the trainer's non-cancelled bookings for a
// date. Cancelled rows never count against occupancy.
func (r *repository) ListForTrainerDate(ctx context.Context, trainerID int, date time.Time) ([]Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE trainer_id = $1 AND appointment_date = $2 AND status <> 'cancelled'
		ORDER BY start_minute
	`

	var appointments []Appointment
	err := r.db.SelectContext(ctx, &appointments, query, trainerID, date)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *repository) ListByStatus(ctx context.Context, status string) ([]Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE status = $1
		ORDER BY appointment_date, start_minute
	`

	var appointments []Appointment
	err := r.db.SelectContext(ctx, &appointments, query, status)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *repository) UpdateStatus(ctx context.Context, a *Appointment) error {
	query := `
		UPDATE appointments
		SET status = $1, cancellation_reason = $2, approved_by = $3, approved_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		a.Status, a.CancellationReason, a.ApprovedBy, a.ApprovedAt, a.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
