package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	pool, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	s := quickSettings("db-" + t.Name())
	s.CoolDown = time.Minute
	return NewDBWithSettings(pool, s), mock
}

func TestDB_QueryContext(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT name FROM categories`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("world"))

	rows, err := db.QueryContext(context.Background(), "SELECT name FROM categories")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	require.True(t, rows.Next())
	var name string
	require.NoError(t, rows.Scan(&name))
	assert.Equal(t, "world", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_ExecContext(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`CREATE TABLE`).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := db.ExecContext(context.Background(), "CREATE TABLE IF NOT EXISTS t (id int)")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_OpenBreakerSkipsPool(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		mock.ExpectQuery(`SELECT 1`).WillReturnError(errors.New("connection refused"))
		_, err := db.QueryContext(ctx, "SELECT 1")
		require.Error(t, err)
	}
	require.Equal(t, gobreaker.StateOpen, db.Breaker().State())

	_, err := db.QueryContext(ctx, "SELECT 1")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	err = db.PingContext(ctx)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_PingContext(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectPing()

	assert.NoError(t, db.PingContext(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
