// Package users provides the PostgreSQL-backed credential store.
package users

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

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func wrapDBError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return common.ErrAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, fname, lname, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.FirstName, user.LastName, user.PasswordHash, user.Role).
		Scan(&user.UserID, &user.CreatedAt)
	if err != nil {
		return nil, wrapDBError(err)
	}
	return user, nil
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var refreshToken sql.NullString
	err := row.Scan(&user.UserID, &user.Email, &user.FirstName, &user.LastName,
		&user.PasswordHash, &user.Role, &refreshToken, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, wrapDBError(err)
	}
	user.RefreshToken = refreshToken.String
	return user, nil
}

const userColumns = `user_id, email, fname, lname, password_hash, role, refresh_token, created_at`

func (r *PostgresRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, userID))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) ListExcept(ctx context.Context, userID string) ([]models.User, error) {
	query := `
		SELECT user_id, email, fname, lname, role, created_at
		FROM users
		WHERE user_id != $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var list []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt); err != nil {
			return nil, wrapDBError(err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}
	return list, nil
}

func (r *PostgresRepository) SetRefreshToken(ctx context.Context, userID, token string) error {
	query := `UPDATE users SET refresh_token = $1 WHERE user_id = $2`
	res, err := r.db.ExecContext(ctx, query, token, userID)
	if err != nil {
		return wrapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) RotateRefreshToken(ctx context.Context, userID, previous, next string) error {
	query := `
		UPDATE users SET refresh_token = $1
		WHERE user_id = $2 AND refresh_token = $3
	`
	res, err := r.db.ExecContext(ctx, query, next, userID, previous)
	if err != nil {
		return wrapDBError(err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	// Zero rows: either the user is gone or another refresh won the race.
	if _, err := r.GetByID(ctx, userID); err != nil {
		return err
	}
	return common.ErrSessionRevoked
}

func (r *PostgresRepository) ClearRefreshToken(ctx context.Context, token string) error {
	query := `UPDATE users SET refresh_token = NULL WHERE refresh_token = $1`
	res, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return wrapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, userID, email, fname, lname string) (*models.User, error) {
	query := `
		UPDATE users SET email = $1, fname = $2, lname = $3
		WHERE user_id = $4
		RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRowContext(ctx, query, email, fname, lname, userID))
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) (*models.User, error) {
	query := `
		UPDATE users SET password_hash = $1
		WHERE user_id = $2
		RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRowContext(ctx, query, passwordHash, userID))
}

func (r *PostgresRepository) UpdateRoleByEmail(ctx context.Context, email, role string) (*models.User, error) {
	query := `
		UPDATE users SET role = $1
		WHERE email = $2
		RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRowContext(ctx, query, role, email))
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string) (*models.User, error) {
	query := `
		DELETE FROM users
		WHERE user_id = $1 AND role != 'admin'
		RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRowContext(ctx, query, userID))
}

func (r *PostgresRepository) DeleteOwn(ctx context.Context, userID string) (*models.User, error) {
	query := `
		DELETE FROM users
		WHERE user_id = $1
		RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRowContext(ctx, query, userID))
}
