package products

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func productRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"product_id", "name", "description", "price", "cost_price",
		"stock_quantity", "category_id", "brand_id", "created_at", "updated_at",
	}).AddRow("p-1", "Mug", "ceramic", 9.5, 4.0, 12, "c-1", "b-1", now, now)
}

func TestList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"product_id", "product_name", "description", "price",
		"stock_quantity", "category", "brand", "created_at", "updated_at",
	}).AddRow("p-1", "Mug", "ceramic", 9.5, 12, "Kitchen", "Acme", now, now)
	mock.ExpectQuery(`SELECT .* FROM products p JOIN brands`).WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Kitchen", list[0].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{
		"product_id", "product_name", "description", "price",
		"stock_quantity", "category", "brand", "created_at", "updated_at",
	}).AddRow("p-1", "Mug", "ceramic", "not-a-price", 12, "Kitchen", "Acme", time.Now(), time.Now())
	mock.ExpectQuery(`SELECT .* FROM products p JOIN brands`).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT .* FROM products WHERE product_id`).
		WithArgs("p-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "p-404")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_ReturnsRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`UPDATE products`).
		WithArgs("Mug", 9.5, "c-1", "b-1", 12, 4.0, "ceramic", "p-1").
		WillReturnRows(productRow())

	updated, err := repo.Update(context.Background(), &models.Product{
		ProductID: "p-1", Name: "Mug", Description: "ceramic", Price: 9.5,
		CostPrice: 4.0, StockQuantity: 12, CategoryID: "c-1", BrandID: "b-1",
	})
	require.NoError(t, err)
	require.Equal(t, "p-1", updated.ProductID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`DELETE FROM products WHERE product_id`).
		WithArgs("p-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "p-404")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
