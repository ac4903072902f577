package invoices

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.InvoiceListItem, error) {
	query := `
		SELECT
			i.invoice_id,
			i.paid_amount,
			i.status AS invoice_status,
			i.created_at,
			o.status AS order_status,
			c.first_name || ' ' || c.last_name AS customer_name
		FROM invoices i
		JOIN orders o ON i.order_id = o.order_id
		JOIN customers c ON o.customer_id = c.customer_id
		ORDER BY i.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.InvoiceListItem
	for rows.Next() {
		var inv models.InvoiceListItem
		if err := rows.Scan(&inv.InvoiceID, &inv.PaidAmount, &inv.InvoiceStatus,
			&inv.CreatedAt, &inv.OrderStatus, &inv.CustomerName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

// Details runs two queries, the header first and the line items second.
func (r *PostgresRepository) Details(ctx context.Context, invoiceID string) (*models.InvoiceDetails, error) {
	header := `
		SELECT
			i.invoice_id,
			i.issue_date,
			c.first_name || ' ' || c.last_name AS customer_name,
			c.phone AS customer_phone,
			CONCAT_WS(', ', sa.street_address, sa.city, sa.state, sa.postal_code, sa.country) AS customer_address
		FROM invoices i
		JOIN orders o ON i.order_id = o.order_id
		JOIN customers c ON o.customer_id = c.customer_id
		LEFT JOIN shipping_addresses sa ON sa.address_id = o.shipping_address_id
		WHERE i.invoice_id = $1
	`
	d := &models.InvoiceDetails{}
	err := r.db.QueryRowContext(ctx, header, invoiceID).
		Scan(&d.InvoiceID, &d.IssueDate, &d.CustomerName, &d.CustomerPhone, &d.CustomerAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	items := `
		SELECT p.name AS item_name, oi.quantity, oi.price
		FROM invoices i
		JOIN order_items oi ON oi.order_id = i.order_id
		JOIN products p ON oi.product_id = p.product_id
		WHERE i.invoice_id = $1
	`
	rows, err := r.db.QueryContext(ctx, items, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it models.InvoiceItem
		if err := rows.Scan(&it.ItemName, &it.Qty, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		d.Items = append(d.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}
