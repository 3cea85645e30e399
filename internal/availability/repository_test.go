package availability

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func windowRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "trainer_id", "day_of_week", "start_minute", "end_minute", "is_active", "created_at",
	})
}

func TestRepositoryListActiveForTrainerWeekday(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	now := time.Now()
	rows := windowRows().
		AddRow(1, 7, 1, 540, 720, true, now).
		AddRow(2, 7, 1, 840, 1020, true, now)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, trainer_id, day_of_week, start_minute, end_minute, is_active, created_at
		FROM trainer_availability
		WHERE trainer_id = $1 AND day_of_week = $2 AND is_active = true
		ORDER BY start_minute
	`)).
		WithArgs(7, 1).
		WillReturnRows(rows)

	windows, err := repo.ListActiveForTrainerWeekday(context.Background(), 7, time.Monday)

	assert.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, 540, windows[0].StartMinute)
	assert.Equal(t, 840, windows[1].StartMinute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	rows := windowRows().AddRow(3, 7, 2, 600, 780, true, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO trainer_availability (trainer_id, day_of_week, start_minute, end_minute)
		VALUES ($1, $2, $3, $4)
		RETURNING `)).
		WithArgs(7, 2, 600, 780).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), &Window{
		TrainerID:   7,
		DayOfWeek:   time.Tuesday,
		StartMinute: 600,
		EndMinute:   780,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.True(t, created.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM trainer_availability WHERE id = $1 AND trainer_id = $2`)).
		WithArgs(99, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99, 7)

	assert.ErrorIs(t, err, ErrWindowNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
