package activities

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

func (r *PostgresRepository) Record(ctx context.Context, kind, message string) error {
	query := `INSERT INTO notifications_log (kind, message) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, kind, message); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]models.Notification, error) {
	query := `
		SELECT notification_id, kind, message, created_at
		FROM notifications_log
		ORDER BY created_at DESC
		LIMIT $1
	`
	return r.query(ctx, query, limit)
}

func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]models.Notification, error) {
	query := `
		SELECT notification_id, kind, message, created_at
		FROM notifications_log
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.query(ctx, query, limit, offset)
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.NotificationID, &n.Kind, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}
