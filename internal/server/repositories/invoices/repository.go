package invoices

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

// Repository reads invoices and their line items.
type Repository interface {
	List(ctx context.Context) ([]models.InvoiceListItem, error)
	Details(ctx context.Context, invoiceID string) (*models.InvoiceDetails, error)
}
