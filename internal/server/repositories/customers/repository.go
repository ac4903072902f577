package customers

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, customerID string) (*models.Customer, error)
	Create(ctx context.Context, c *models.Customer) (*models.Customer, error)
	Update(ctx context.Context, c *models.Customer) (*models.Customer, error)
	Delete(ctx context.Context, customerID string) error
}
