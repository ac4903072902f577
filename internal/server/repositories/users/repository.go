package users

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

// Repository is the credential store: the users table plus the single
// refresh-token slot per row that backs session revocation.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListExcept(ctx context.Context, userID string) ([]models.User, error)

	// SetRefreshToken unconditionally stores a new refresh token for the
	// user (login path).
	SetRefreshToken(ctx context.Context, userID, token string) error

	// RotateRefreshToken replaces the stored refresh token only when it
	// still equals previous, turning the refresh race into an explicit
	// failure instead of silent last-writer-wins. A mismatch yields
	// common.ErrSessionRevoked; a missing user yields common.ErrNotFound.
	RotateRefreshToken(ctx context.Context, userID, previous, next string) error

	// ClearRefreshToken blanks the slot holding the given token value
	// (logout path). common.ErrNotFound when no row held that token.
	ClearRefreshToken(ctx context.Context, token string) error

	UpdateProfile(ctx context.Context, userID, email, fname, lname string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) (*models.User, error)
	UpdateRoleByEmail(ctx context.Context, email, role string) (*models.User, error)

	// Delete removes a non-admin user (admin rows are protected in SQL).
	Delete(ctx context.Context, userID string) (*models.User, error)
	// DeleteOwn removes the caller's own row regardless of role.
	DeleteOwn(ctx context.Context, userID string) (*models.User, error)
}
