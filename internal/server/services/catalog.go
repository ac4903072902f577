package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/repomanager"
)

// CatalogService manages products and the category/brand lookup tables.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.ProductListItem, error) {
	return s.repomanager.Products(s.db).List(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	return s.repomanager.Products(s.db).Get(ctx, productID)
}

// ProductMeta returns the categories and brands the product forms offer.
func (s *CatalogService) ProductMeta(ctx context.Context) (*models.ProductMeta, error) {
	repo := s.repomanager.Catalog(s.db)
	categories, err := repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := repo.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ProductMeta{Categories: categories, Brands: brands}, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	created, err := s.repomanager.Products(s.db).Create(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.repomanager.Activities(s.db).Record(ctx, "product",
		fmt.Sprintf("product %q added", created.Name))
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return s.repomanager.Products(s.db).Update(ctx, p)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	return s.repomanager.Products(s.db).Delete(ctx, productID)
}

func validateProduct(p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", common.ErrValidation)
	}
	if p.Price < 0 || p.CostPrice < 0 {
		return fmt.Errorf("%w: price cannot be negative", common.ErrValidation)
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", common.ErrValidation)
	}
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repomanager.Catalog(s.db).ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", common.ErrValidation)
	}
	return s.repomanager.Catalog(s.db).CreateCategory(ctx, name, description)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID, name, description string) (*models.Category, error) {
	return s.repomanager.Catalog(s.db).UpdateCategory(ctx, categoryID, name, description)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.repomanager.Catalog(s.db).DeleteCategory(ctx, categoryID)
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return s.repomanager.Catalog(s.db).ListBrands(ctx)
}

func (s *CatalogService) CreateBrand(ctx context.Context, name string) (*models.Brand, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: brand name is required", common.ErrValidation)
	}
	return s.repomanager.Catalog(s.db).CreateBrand(ctx, name)
}

func (s *CatalogService) UpdateBrand(ctx context.Context, brandID, name string) (*models.Brand, error) {
	return s.repomanager.Catalog(s.db).UpdateBrand(ctx, brandID, name)
}

func (s *CatalogService) DeleteBrand(ctx context.Context, brandID string) error {
	return s.repomanager.Catalog(s.db).DeleteBrand(ctx, brandID)
}
