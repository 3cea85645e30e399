package appointment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func appointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "member_id", "trainer_id", "service_id", "appointment_date",
		"start_minute", "end_minute", "status", "price_cents", "notes",
		"cancellation_reason", "approved_by", "approved_at", "created_at",
	})
}

func TestRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rows := appointmentRows().AddRow(
		1, 12, 7, 3, date, 540, 600, StatusPending, int64(150000),
		nil, nil, nil, nil, time.Now(),
	)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO appointments`)).
		WithArgs(12, 7, 3, date, 540, 600, StatusPending, int64(150000), nil).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), &Appointment{
		MemberID: 12, TrainerID: 7, ServiceID: 3, AppointmentDate: date,
		StartMinute: 540, EndMinute: 600, Status: StatusPending, PriceCents: 150000,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate_ExclusionViolationMapsToConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO appointments`)).
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "appointments_no_overlap"})

	created, err := repo.Create(context.Background(), &Appointment{
		MemberID: 12, TrainerID: 7, ServiceID: 3, AppointmentDate: date,
		StartMinute: 540, EndMinute: 600, Status: StatusPending,
	})

	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Nil(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListForTrainerDate_ExcludesCancelled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rows := appointmentRows().
		AddRow(1, 12, 7, 3, date, 540, 600, StatusApproved, int64(150000), nil, nil, nil, nil, time.Now()).
		AddRow(2, 13, 7, 3, date, 600, 660, StatusPending, int64(150000), nil, nil, nil, nil, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE trainer_id = $1 AND appointment_date = $2 AND status <> 'cancelled'`)).
		WithArgs(7, date).
		WillReturnRows(rows)

	appointments, err := repo.ListForTrainerDate(context.Background(), 7, date)

	require.NoError(t, err)
	assert.Len(t, appointments, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM appointments WHERE id = $1`)).
		WithArgs(99).
		WillReturnRows(appointmentRows())

	appt, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Nil(t, appt)
}

func TestRepositoryUpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE appointments`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), &Appointment{ID: 99, Status: StatusCancelled})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
