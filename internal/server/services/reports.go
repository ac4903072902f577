package services

import (
	"context"
	"database/sql"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/repomanager"
)

// ReportService serves the dashboard and the four reporting views.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewReportService(db *sql.DB, m repomanager.RepositoryManager) *ReportService {
	return &ReportService{db: db, repomanager: m}
}

func (s *ReportService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	return s.repomanager.Reports(s.db).Dashboard(ctx)
}

func (s *ReportService) Sales(ctx context.Context) (*models.SalesReport, error) {
	return s.repomanager.Reports(s.db).Sales(ctx)
}

func (s *ReportService) Inventory(ctx context.Context) (*models.InventoryReport, error) {
	return s.repomanager.Reports(s.db).Inventory(ctx)
}

func (s *ReportService) ProfitLoss(ctx context.Context) (*models.ProfitLossReport, error) {
	return s.repomanager.Reports(s.db).ProfitLoss(ctx)
}

func (s *ReportService) Annual(ctx context.Context) (*models.AnnualReport, error) {
	return s.repomanager.Reports(s.db).Annual(ctx)
}
