// Package customers provides the PostgreSQL-backed customer store.
package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/dbx"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const customerColumns = `customer_id, first_name, last_name, email, phone, created_at`

func (r *PostgresRepository) scanCustomer(row *sql.Row) (*models.Customer, error) {
	c := &models.Customer{}
	err := row.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

func (r *PostgresRepository) Get(ctx context.Context, customerID string) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
	return r.scanCustomer(r.db.QueryRowContext(ctx, query, customerID))
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	query := `
		INSERT INTO customers (first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + customerColumns
	return r.scanCustomer(r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone))
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, email = $3, phone = $4
		WHERE customer_id = $5
		RETURNING ` + customerColumns
	return r.scanCustomer(r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone, c.CustomerID))
}

func (r *PostgresRepository) Delete(ctx context.Context, customerID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
