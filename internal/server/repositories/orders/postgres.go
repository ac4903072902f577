// Package orders provides the PostgreSQL-backed order store.
package orders

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.OrderListItem, error) {
	query := `
		SELECT
			o.order_id,
			c.first_name || ' ' || c.last_name AS customer_name,
			o.order_date,
			o.status,
			o.total_amount,
			o.payment_status
		FROM orders o
		JOIN customers c ON o.customer_id = c.customer_id
		ORDER BY o.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.OrderListItem
	for rows.Next() {
		var o models.OrderListItem
		if err := rows.Scan(&o.OrderID, &o.CustomerName, &o.OrderDate, &o.Status,
			&o.TotalAmount, &o.PaymentStatus); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID, status string) (*models.OrderListItem, error) {
	query := `
		UPDATE orders o SET status = $1
		FROM customers c
		WHERE o.order_id = $2 AND c.customer_id = o.customer_id
		RETURNING o.order_id,
		          c.first_name || ' ' || c.last_name,
		          o.order_date, o.status, o.total_amount, o.payment_status
	`
	o := &models.OrderListItem{}
	err := r.db.QueryRowContext(ctx, query, status, orderID).
		Scan(&o.OrderID, &o.CustomerName, &o.OrderDate, &o.Status, &o.TotalAmount, &o.PaymentStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return o, nil
}
