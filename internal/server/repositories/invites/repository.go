package invites

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

// Repository manages the invite_users table that gates registration.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.Invite, error)
	List(ctx context.Context, excludeEmail string) ([]models.Invite, error)
	Create(ctx context.Context, email, role string) (*models.Invite, error)
	UpdateRole(ctx context.Context, email, role string) (*models.Invite, error)
	Delete(ctx context.Context, email string) (*models.Invite, error)
	MarkAccepted(ctx context.Context, email string) error
}
