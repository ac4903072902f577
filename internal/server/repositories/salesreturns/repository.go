package salesreturns

import (
	"context"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.SalesReturnListItem, error)
}
