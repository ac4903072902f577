package invites

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func inviteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"invite_user_id", "email", "role", "status", "created_at",
	}).AddRow("inv-1", "new@x.com", "editor", "pending", time.Now())
}

func TestGetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT .* FROM invite_users WHERE email`).
		WithArgs("new@x.com").
		WillReturnRows(inviteRows())

	invite, err := repo.GetByEmail(context.Background(), "new@x.com")
	require.NoError(t, err)
	require.Equal(t, "editor", invite.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT .* FROM invite_users WHERE email`).
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ExcludesEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT .* FROM invite_users WHERE email !=`).
		WithArgs("admin@example.com").
		WillReturnRows(inviteRows())

	list, err := repo.List(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`DELETE FROM invite_users WHERE email`).
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), "missing@x.com")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAccepted_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE invite_users SET status`).
		WithArgs("new@x.com").
		WillReturnError(errors.New("connection reset"))

	err := repo.MarkAccepted(context.Background(), "new@x.com")
	require.ErrorContains(t, err, "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}
