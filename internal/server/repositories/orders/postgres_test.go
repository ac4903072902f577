package orders

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

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"order_id", "customer_name", "order_date", "status", "total_amount", "payment_status",
	}).AddRow("o-1", "Ana Bell", time.Now(), "pending", 120.50, "unpaid")
}

func TestList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`FROM orders o\s+JOIN customers c`).WillReturnRows(orderRows())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Ana Bell", list[0].CustomerName)
	require.Equal(t, "pending", list[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	bad := sqlmock.NewRows([]string{
		"order_id", "customer_name", "order_date", "status", "total_amount", "payment_status",
	}).AddRow("o-1", "Ana Bell", time.Now(), "pending", "not-a-number", "unpaid")
	mock.ExpectQuery(`FROM orders o\s+JOIN customers c`).WillReturnRows(bad)

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{
		"order_id", "customer_name", "order_date", "status", "total_amount", "payment_status",
	}).AddRow("o-1", "Ana Bell", time.Now(), "shipped", 120.50, "paid")
	mock.ExpectQuery(`UPDATE orders o SET status`).
		WithArgs("shipped", "o-1").
		WillReturnRows(rows)

	updated, err := repo.UpdateStatus(context.Background(), "o-1", "shipped")
	require.NoError(t, err)
	require.Equal(t, "shipped", updated.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`UPDATE orders o SET status`).
		WithArgs("shipped", "o-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), "o-404", "shipped")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
