package catalog

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestListCategories(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"category_id", "name", "description", "created_at"}).
		AddRow("c-1", "Kitchen", "pots and pans", time.Now())
	mock.ExpectQuery(`SELECT category_id, name, description, created_at FROM categories`).
		WillReturnRows(rows)

	list, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Kitchen", list[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`INSERT INTO categories`).
		WithArgs("Kitchen", "pots and pans").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateCategory(context.Background(), "Kitchen", "pots and pans")
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCategory_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`UPDATE categories SET name`).
		WithArgs("Kitchen", "pots and pans", "c-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateCategory(context.Background(), "c-404", "Kitchen", "pots and pans")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategory_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`DELETE FROM categories WHERE category_id`).
		WithArgs("c-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCategory(context.Background(), "c-404")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBrand(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"brand_id", "name", "created_at"}).
		AddRow("b-1", "Acme", time.Now())
	mock.ExpectQuery(`INSERT INTO brands`).
		WithArgs("Acme").
		WillReturnRows(rows)

	brand, err := repo.CreateBrand(context.Background(), "Acme")
	require.NoError(t, err)
	require.Equal(t, "b-1", brand.BrandID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBrand_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`INSERT INTO brands`).
		WithArgs("Acme").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateBrand(context.Background(), "Acme")
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}
