// Package invites provides the PostgreSQL-backed invitation store.
package invites

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

const inviteColumns = `invite_user_id, email, role, status, created_at`

func (r *PostgresRepository) scanInvite(row *sql.Row) (*models.Invite, error) {
	invite := &models.Invite{}
	err := row.Scan(&invite.InviteUserID, &invite.Email, &invite.Role, &invite.Status, &invite.InvitedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return invite, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invite_users WHERE email = $1 LIMIT 1`
	return r.scanInvite(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) List(ctx context.Context, excludeEmail string) ([]models.Invite, error) {
	query := `
		SELECT ` + inviteColumns + `
		FROM invite_users
		WHERE email != $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, excludeEmail)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.Invite
	for rows.Next() {
		var inv models.Invite
		if err := rows.Scan(&inv.InviteUserID, &inv.Email, &inv.Role, &inv.Status, &inv.InvitedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

func (r *PostgresRepository) Create(ctx context.Context, email, role string) (*models.Invite, error) {
	query := `
		INSERT INTO invite_users (email, role)
		VALUES ($1, $2)
		RETURNING ` + inviteColumns
	return r.scanInvite(r.db.QueryRowContext(ctx, query, email, role))
}

func (r *PostgresRepository) UpdateRole(ctx context.Context, email, role string) (*models.Invite, error) {
	query := `
		UPDATE invite_users SET role = $1
		WHERE email = $2
		RETURNING ` + inviteColumns
	return r.scanInvite(r.db.QueryRowContext(ctx, query, role, email))
}

func (r *PostgresRepository) Delete(ctx context.Context, email string) (*models.Invite, error) {
	query := `
		DELETE FROM invite_users
		WHERE email = $1
		RETURNING ` + inviteColumns
	return r.scanInvite(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) MarkAccepted(ctx context.Context, email string) error {
	query := `UPDATE invite_users SET status = 'accepted' WHERE email = $1`
	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
