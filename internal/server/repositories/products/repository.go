package products

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.ProductListItem, error)
	Get(ctx context.Context, productID string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	Update(ctx context.Context, p *models.Product) (*models.Product, error)
	Delete(ctx context.Context, productID string) error
}
