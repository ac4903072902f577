package orders

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.OrderListItem, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*models.OrderListItem, error)
}
