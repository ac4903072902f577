package salesreturns

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

var returnColumns = []string{
	"return_id", "sale_id", "return_date", "return_reason", "status",
	"returned_quantity", "sale_total_amount", "sale_date",
	"product_name", "sold_quantity", "total_payment",
}

func TestList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(returnColumns).
		AddRow("r-1", "s-1", time.Now(), "damaged", "approved", 2, 250.0, time.Now(), "Keyboard", 3, 75.0)
	mock.ExpectQuery(`FROM sales_returns sr`).WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "damaged", list[0].ReturnReason)
	require.Equal(t, 2, list[0].ReturnedQuantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(returnColumns).
		AddRow("r-1", "s-1", time.Now(), "damaged", "approved", "not-a-count", 250.0, time.Now(), "Keyboard", 3, 75.0)
	mock.ExpectQuery(`FROM sales_returns sr`).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`FROM sales_returns sr`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}
