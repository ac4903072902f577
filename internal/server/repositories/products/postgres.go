// Package products provides the PostgreSQL-backed product store.
package products

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.ProductListItem, error) {
	query := `
		SELECT
			p.product_id,
			p.name AS product_name,
			p.description,
			p.price,
			p.stock_quantity,
			c.name AS category,
			b.name AS brand,
			p.created_at,
			p.updated_at
		FROM products p
		JOIN brands b ON p.brand_id = b.brand_id
		JOIN categories c ON p.category_id = c.category_id
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.ProductListItem
	for rows.Next() {
		var p models.ProductListItem
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Description, &p.Price,
			&p.StockQuantity, &p.Category, &p.Brand, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

const productColumns = `product_id, name, description, price, cost_price, stock_quantity, category_id, brand_id, created_at, updated_at`

func (r *PostgresRepository) scanProduct(row *sql.Row) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(&p.ProductID, &p.Name, &p.Description, &p.Price, &p.CostPrice,
		&p.StockQuantity, &p.CategoryID, &p.BrandID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Get(ctx context.Context, productID string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	return r.scanProduct(r.db.QueryRowContext(ctx, query, productID))
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	query := `
		INSERT INTO products (name, price, category_id, brand_id, stock_quantity, cost_price, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns
	return r.scanProduct(r.db.QueryRowContext(ctx, query,
		p.Name, p.Price, p.CategoryID, p.BrandID, p.StockQuantity, p.CostPrice, p.Description))
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Product) (*models.Product, error) {
	query := `
		UPDATE products
		SET name = $1, price = $2, category_id = $3, brand_id = $4,
		    stock_quantity = $5, cost_price = $6, description = $7,
		    updated_at = now()
		WHERE product_id = $8
		RETURNING ` + productColumns
	return r.scanProduct(r.db.QueryRowContext(ctx, query,
		p.Name, p.Price, p.CategoryID, p.BrandID, p.StockQuantity, p.CostPrice, p.Description, p.ProductID))
}

func (r *PostgresRepository) Delete(ctx context.Context, productID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
