package activities

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func notificationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"notification_id", "kind", "message", "created_at"}).
		AddRow("n-1", "order", "order o1 marked shipped", time.Now()).
		AddRow("n-2", "user", "user registered", time.Now())
}

func TestRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`INSERT INTO notifications_log`).
		WithArgs("order", "order o1 marked shipped").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Record(context.Background(), "order", "order o1 marked shipped")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT notification_id, kind, message, created_at FROM notifications_log`).
		WithArgs(5).
		WillReturnRows(notificationRows())

	list, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "n-1", list[0].NotificationID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	bad := sqlmock.NewRows([]string{"notification_id", "kind", "message", "created_at"}).
		AddRow("n-1", "order", "msg", "not-a-timestamp")
	mock.ExpectQuery(`SELECT notification_id, kind, message, created_at FROM notifications_log`).
		WithArgs(10, 0).
		WillReturnRows(bad)

	_, err := repo.List(context.Background(), 10, 0)
	require.ErrorContains(t, err, "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications_log`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Count(context.Background())
	require.ErrorContains(t, err, "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}
