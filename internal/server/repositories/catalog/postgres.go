// Package catalog provides the PostgreSQL-backed category and brand stores.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/dbx"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func wrapDBError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return common.ErrAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT category_id, name, description, created_at FROM categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var list []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, wrapDBError(err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}
	return list, nil
}

func (r *PostgresRepository) scanCategory(row *sql.Row) (*models.Category, error) {
	c := &models.Category{}
	if err := row.Scan(&c.CategoryID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
		return nil, wrapDBError(err)
	}
	return c, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING category_id, name, description, created_at
	`
	return r.scanCategory(r.db.QueryRowContext(ctx, query, name, description))
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, categoryID, name, description string) (*models.Category, error) {
	query := `
		UPDATE categories SET name = $1, description = $2
		WHERE category_id = $3
		RETURNING category_id, name, description, created_at
	`
	return r.scanCategory(r.db.QueryRowContext(ctx, query, name, description, categoryID))
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return wrapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	query := `SELECT brand_id, name, created_at FROM brands ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var list []models.Brand
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.BrandID, &b.Name, &b.CreatedAt); err != nil {
			return nil, wrapDBError(err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}
	return list, nil
}

func (r *PostgresRepository) scanBrand(row *sql.Row) (*models.Brand, error) {
	b := &models.Brand{}
	if err := row.Scan(&b.BrandID, &b.Name, &b.CreatedAt); err != nil {
		return nil, wrapDBError(err)
	}
	return b, nil
}

func (r *PostgresRepository) CreateBrand(ctx context.Context, name string) (*models.Brand, error) {
	query := `
		INSERT INTO brands (name)
		VALUES ($1)
		RETURNING brand_id, name, created_at
	`
	return r.scanBrand(r.db.QueryRowContext(ctx, query, name))
}

func (r *PostgresRepository) UpdateBrand(ctx context.Context, brandID, name string) (*models.Brand, error) {
	query := `
		UPDATE brands SET name = $1
		WHERE brand_id = $2
		RETURNING brand_id, name, created_at
	`
	return r.scanBrand(r.db.QueryRowContext(ctx, query, name, brandID))
}

func (r *PostgresRepository) DeleteBrand(ctx context.Context, brandID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE brand_id = $1`, brandID)
	if err != nil {
		return wrapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
