package users

import (
	"context"
	"database/sql"
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

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "email", "fname", "lname", "password_hash", "role", "refresh_token", "created_at",
	}).AddRow("u-1", "a@x.com", "Ada", "Xu", "hash", "admin", "rt-1", time.Now())
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT .* FROM users WHERE email`).
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRotateRefreshToken_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE users SET refresh_token = \$1`).
		WithArgs("rt-new", "u-1", "rt-old").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RotateRefreshToken(context.Background(), "u-1", "rt-old", "rt-new")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRotateRefreshToken_LostRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	// Conditional update misses because another refresh already rotated the
	// slot, but the user row still exists.
	mock.ExpectExec(`UPDATE users SET refresh_token = \$1`).
		WithArgs("rt-new", "u-1", "rt-stale").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .* FROM users WHERE user_id`).
		WithArgs("u-1").
		WillReturnRows(userRows())

	err := repo.RotateRefreshToken(context.Background(), "u-1", "rt-stale", "rt-new")
	require.ErrorIs(t, err, common.ErrSessionRevoked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRotateRefreshToken_UserGone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE users SET refresh_token = \$1`).
		WithArgs("rt-new", "u-404", "rt-old").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .* FROM users WHERE user_id`).
		WithArgs("u-404").
		WillReturnError(sql.ErrNoRows)

	err := repo.RotateRefreshToken(context.Background(), "u-404", "rt-old", "rt-new")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClearRefreshToken_NoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE users SET refresh_token = NULL`).
		WithArgs("rt-unknown").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ClearRefreshToken(context.Background(), "rt-unknown")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ProtectsAdmins(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`DELETE FROM users`).
		WithArgs("u-admin").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), "u-admin")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
