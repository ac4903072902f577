// Package reports runs the aggregate queries behind the dashboard and
// the reporting views. Everything here is read only.
package reports

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type Repository interface {
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	Sales(ctx context.Context) (*models.SalesReport, error)
	Inventory(ctx context.Context) (*models.InventoryReport, error)
	ProfitLoss(ctx context.Context) (*models.ProfitLossReport, error)
	Annual(ctx context.Context) (*models.AnnualReport, error)
}
