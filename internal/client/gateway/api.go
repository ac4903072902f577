package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/codebyfaisal/e-store-pos/internal/client/models"
)

// Typed wrappers over Do for the endpoints the CLI uses.

func (g *Gateway) Login(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var session models.Session
	if err := g.Do(ctx, http.MethodPost, "/api/users/auth/login", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (g *Gateway) Register(ctx context.Context, email, password, fname, lname string) error {
	body := map[string]string{
		"email":    email,
		"password": password,
		"fname":    fname,
		"lname":    lname,
	}
	return g.Do(ctx, http.MethodPost, "/api/users/auth/register", body, nil)
}

func (g *Gateway) Logout(ctx context.Context) error {
	err := g.Do(ctx, http.MethodGet, "/api/users/auth/logout", nil, nil)
	g.clearSession()
	return err
}

// Profile fetches the caller's account. The server wraps the row in a
// one-element array.
func (g *Gateway) Profile(ctx context.Context) (*models.Profile, error) {
	var rows []models.Profile
	if err := g.Do(ctx, http.MethodGet, "/api/users/profile/", nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty profile response")
	}
	return &rows[0], nil
}

func (g *Gateway) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := g.Do(ctx, http.MethodGet, "/api/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *Gateway) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := g.Do(ctx, http.MethodGet, "/api/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *Gateway) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	body := map[string]string{"order_id": orderID, "status": status}
	var order models.Order
	if err := g.Do(ctx, http.MethodPut, "/api/orders/", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *Gateway) Invoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := g.Do(ctx, http.MethodGet, "/api/invoices/", nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// InvoicePDF downloads the rendered PDF bytes. The endpoint streams raw PDF
// instead of the JSON envelope, so it bypasses Do's decoding but keeps the
// same single-retry refresh behavior on 401.
func (g *Gateway) InvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	fetch := func() ([]byte, int, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			g.baseURL+"/api/invoices/"+invoiceID+"/pdf", nil)
		if err != nil {
			return nil, 0, err
		}
		resp, err := g.httpClient.Do(req)
		if err != nil {
			return nil, 0, err
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, 0, err
		}
		return data, resp.StatusCode, nil
	}

	data, status, err := fetch()
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		if refreshErr := g.refresh(ctx); refreshErr != nil {
			g.clearSession()
			return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, refreshErr)
		}
		data, status, err = fetch()
		if err != nil {
			return nil, err
		}
	}
	if status != http.StatusOK {
		return nil, &APIError{StatusCode: status}
	}
	return data, nil
}
