package salesreturns

import (
	"context"
	"fmt"

	"github.com/codebyfaisal/e-store-pos/internal/dbx"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.SalesReturnListItem, error) {
	query := `
		SELECT
			sr.return_id,
			s.sale_id,
			sr.return_date,
			sr.return_reason,
			sr.status,
			sr.returned_quantity,
			s.total_amount AS sale_total_amount,
			s.sale_date,
			p.name AS product_name,
			oi.quantity AS sold_quantity,
			oi.price AS total_payment
		FROM sales_returns sr
		JOIN order_items oi ON sr.order_item_id = oi.order_item_id
		JOIN products p ON p.product_id = oi.product_id
		JOIN orders o ON o.order_id = oi.order_id
		JOIN sales s ON s.order_id = o.order_id
		ORDER BY sr.return_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.SalesReturnListItem
	for rows.Next() {
		var sr models.SalesReturnListItem
		if err := rows.Scan(&sr.ReturnID, &sr.SaleID, &sr.ReturnDate, &sr.ReturnReason,
			&sr.Status, &sr.ReturnedQuantity, &sr.SaleTotalAmount, &sr.SaleDate,
			&sr.ProductName, &sr.SoldQuantity, &sr.TotalPayment); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}
