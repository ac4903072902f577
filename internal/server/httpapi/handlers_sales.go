package httpapi

import (
	"net/http"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.sales.ListCustomers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, customers)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	customer, err := s.sales.GetCustomer(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, customer)
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var c models.Customer
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := s.sales.CreateCustomer(r.Context(), &c)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var c models.Customer
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	c.CustomerID = id
	updated, err := s.sales.UpdateCustomer(r.Context(), &c)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if err := s.sales.DeleteCustomer(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "customer deleted successfully")
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.sales.ListOrders(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, orders)
}

type updateOrderRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := s.sales.UpdateOrderStatus(r.Context(), req.OrderID, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, order)
}

func (s *Server) handleListSalesReturns(w http.ResponseWriter, r *http.Request) {
	returns, err := s.sales.ListSalesReturns(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, returns)
}
