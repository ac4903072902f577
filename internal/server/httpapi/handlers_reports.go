package httpapi

import "net/http"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.reports.Dashboard(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, []any{d})
}

func (s *Server) handleSalesReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.Sales(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, []any{rep})
}

func (s *Server) handleInventoryReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.Inventory(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, []any{rep})
}

func (s *Server) handleProfitLossReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.ProfitLoss(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, []any{rep})
}

func (s *Server) handleAnnualReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.Annual(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, []any{rep})
}
