package catalog

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

// Repository manages the two lookup tables products hang off of:
// categories and brands.
type Repository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name, description string) (*models.Category, error)
	UpdateCategory(ctx context.Context, categoryID, name, description string) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	ListBrands(ctx context.Context) ([]models.Brand, error)
	CreateBrand(ctx context.Context, name string) (*models.Brand, error)
	UpdateBrand(ctx context.Context, brandID, name string) (*models.Brand, error)
	DeleteBrand(ctx context.Context, brandID string) error
}
