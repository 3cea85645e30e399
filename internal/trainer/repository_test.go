package trainer

import (
	"context"
	"regexp"
	"testing"

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

func TestRepositoryGetByService(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name"}).
		AddRow(1, "Ayşe", "Yılmaz").
		AddRow(2, "Mehmet", "Demir")

	mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT t.id, t.first_name, t.last_name
			FROM trainers t
			JOIN trainer_services ts ON ts.trainer_id = t.id
			WHERE t.is_active = true AND ts.service_id = $1 AND ts.is_active = true
			ORDER BY t.last_name, t.first_name
		`)).
		WithArgs(3).
		WillReturnRows(rows)

	summaries, err := repo.GetByService(context.Background(), 3)

	assert.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Ayşe Yılmaz", summaries[0].FullName)
	assert.Equal(t, "Mehmet Demir", summaries[1].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryAssignServices_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	query := regexp.QuoteMeta(`
			INSERT INTO trainer_services (trainer_id, service_id)
			VALUES ($1, $2)
			ON CONFLICT (trainer_id, service_id) DO UPDATE SET is_active = true
		`)

	mock.ExpectExec(query).WithArgs(42, 3).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(query).WithArgs(42, 7).WillReturnResult(sqlmock.NewResult(2, 1))

	err := repo.AssignServices(context.Background(), 42, []int{3, 7})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryOffersService(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(`)).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	offers, err := repo.OffersService(context.Background(), 1, 3)

	assert.NoError(t, err)
	assert.True(t, offers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeactivate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE trainers SET is_active = false WHERE id = $1 AND is_active = true`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Deactivate(context.Background(), 99)

	assert.ErrorIs(t, err, ErrTrainerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
