package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/repomanager"
)

// orderStatuses an order may be moved to from the orders view.
var orderStatuses = map[string]struct{}{
	"pending":   {},
	"shipped":   {},
	"delivered": {},
	"cancelled": {},
}

// SalesService covers customers, orders, and sales returns.
type SalesService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSalesService(db *sql.DB, m repomanager.RepositoryManager) *SalesService {
	return &SalesService{db: db, repomanager: m}
}

func (s *SalesService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repomanager.Customers(s.db).List(ctx)
}

func (s *SalesService) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	return s.repomanager.Customers(s.db).Get(ctx, customerID)
}

func (s *SalesService) CreateCustomer(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	if c.FirstName == "" || c.LastName == "" {
		return nil, fmt.Errorf("%w: first name and last name is required", common.ErrValidation)
	}
	return s.repomanager.Customers(s.db).Create(ctx, c)
}

func (s *SalesService) UpdateCustomer(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	return s.repomanager.Customers(s.db).Update(ctx, c)
}

func (s *SalesService) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.repomanager.Customers(s.db).Delete(ctx, customerID)
}

func (s *SalesService) ListOrders(ctx context.Context) ([]models.OrderListItem, error) {
	return s.repomanager.Orders(s.db).List(ctx)
}

// UpdateOrderStatus stores the status lowercased so the dashboard groupings
// stay consistent no matter how the client spells it.
func (s *SalesService) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.OrderListItem, error) {
	status = strings.ToLower(status)
	if _, ok := orderStatuses[status]; !ok {
		return nil, fmt.Errorf("%w: unknown order status %q", common.ErrValidation, status)
	}
	order, err := s.repomanager.Orders(s.db).UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	_ = s.repomanager.Activities(s.db).Record(ctx, "order",
		fmt.Sprintf("order %s marked %s", orderID, status))
	return order, nil
}

func (s *SalesService) ListSalesReturns(ctx context.Context) ([]models.SalesReturnListItem, error) {
	return s.repomanager.SalesReturns(s.db).List(ctx)
}
