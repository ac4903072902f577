package models

import "time"

type Product struct {
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	CostPrice     float64   `json:"cost_price"`
	StockQuantity int       `json:"stock_quantity"`
	CategoryID    string    `json:"category_id"`
	BrandID       string    `json:"brand_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductListItem is the joined listing row with category and brand names
// resolved for display.
type ProductListItem struct {
	ProductID     string    `json:"product_id"`
	Name          string    `json:"product_name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Category struct {
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Brand struct {
	BrandID   string    `json:"brand_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductMeta feeds the product forms: every category and brand available
// for selection.
type ProductMeta struct {
	Categories []Category `json:"categories"`
	Brands     []Brand    `json:"brands"`
}
