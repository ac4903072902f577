// Package activities stores and reads the notifications log.
package activities

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type Repository interface {
	Record(ctx context.Context, kind, message string) error
	Recent(ctx context.Context, limit int) ([]models.Notification, error)
	List(ctx context.Context, limit, offset int) ([]models.Notification, error)
	Count(ctx context.Context) (int, error)
}
