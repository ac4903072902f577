// Package httpapi exposes the back-office REST API. Session state travels in
// a pair of httpOnly cookies; every response uses the success/result/error
// envelope the frontend expects.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/logging"
	"github.com/codebyfaisal/e-store-pos/internal/server/config"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/codebyfaisal/e-store-pos/internal/server/roles"
	"github.com/codebyfaisal/e-store-pos/internal/server/services"
)

// The service interfaces the HTTP layer depends on. The concrete
// implementations live in the services package; tests substitute fakes.

type AuthService interface {
	Register(ctx context.Context, email, password, fname, lname string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*models.User, *services.TokenPair, error)
	Authenticate(ctx context.Context, accessToken, refreshToken string) (*models.User, error)
}

type UserService interface {
	ListUsers(ctx context.Context, callerID string) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateUserRole(ctx context.Context, email, role string) (*models.User, error)
	DeleteUser(ctx context.Context, callerID, userID string) (*models.User, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, email, fname, lname string) (*models.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword, confirmNewPassword string) (*models.User, error)
	DeleteProfile(ctx context.Context, callerID, callerRole string) (*models.User, error)
	ListInvites(ctx context.Context) ([]models.Invite, error)
	AddInvite(ctx context.Context, email, role string) (*models.Invite, error)
	UpdateInvite(ctx context.Context, email, role string) (*models.Invite, error)
	DeleteInvite(ctx context.Context, email string) (*models.Invite, error)
	GetBootstrap(ctx context.Context, user *models.User) (*services.Bootstrap, error)
	Activities(ctx context.Context, limit, page int) (*services.ActivityPage, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.ProductListItem, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	ProductMeta(ctx context.Context) (*models.ProductMeta, error)
	CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, p *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name, description string) (*models.Category, error)
	UpdateCategory(ctx context.Context, categoryID, name, description string) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
	ListBrands(ctx context.Context) ([]models.Brand, error)
	CreateBrand(ctx context.Context, name string) (*models.Brand, error)
	UpdateBrand(ctx context.Context, brandID, name string) (*models.Brand, error)
	DeleteBrand(ctx context.Context, brandID string) error
}

type SalesService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, c *models.Customer) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, c *models.Customer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
	ListOrders(ctx context.Context) ([]models.OrderListItem, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.OrderListItem, error)
	ListSalesReturns(ctx context.Context) ([]models.SalesReturnListItem, error)
}

type InvoiceService interface {
	List(ctx context.Context) ([]models.InvoiceListItem, error)
	Details(ctx context.Context, invoiceID string) (*services.InvoiceDetailsResult, error)
	RenderPDF(ctx context.Context, invoiceID string) ([]byte, error)
	ArchiveURL(ctx context.Context, invoiceID string) (string, error)
}

type ReportService interface {
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	Sales(ctx context.Context) (*models.SalesReport, error)
	Inventory(ctx context.Context) (*models.InventoryReport, error)
	ProfitLoss(ctx context.Context) (*models.ProfitLossReport, error)
	Annual(ctx context.Context) (*models.AnnualReport, error)
}

type Server struct {
	cfg      *config.Config
	log      logging.Logger
	auth     AuthService
	users    UserService
	catalog  CatalogService
	sales    SalesService
	invoices InvoiceService
	reports  ReportService
}

func NewServer(cfg *config.Config, log logging.Logger, auth AuthService, users UserService,
	catalog CatalogService, sales SalesService, invoices InvoiceService, reports ReportService) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		auth:     auth,
		users:    users,
		catalog:  catalog,
		sales:    sales,
		invoices: invoices,
		reports:  reports,
	}
}

// Router builds the full route table. Role sets per subtree mirror what each
// screen of the frontend is allowed to reach.
func (s *Server) Router() http.Handler {
	allRoles := []string{roles.Admin, roles.Moderator, roles.Editor}
	adminOnly := []string{roles.Admin}
	adminEditor := []string{roles.Admin, roles.Editor}
	adminModerator := []string{roles.Admin, roles.Moderator}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.RequestLogger)
	r.Use(s.CORS)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Ok"))
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.With(s.Authenticate).Get("/logout", s.handleLogout)
			r.Get("/reset-token", s.handleRefreshToken)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(s.Authenticate, AuthorizeRole(allRoles...))
			r.Get("/", s.handleGetProfile)
			r.Put("/", s.handleUpdateProfile)
			r.Put("/password", s.handleChangePassword)
			r.Delete("/", s.handleDeleteProfile)
			r.Get("/bootstrap", s.handleBootstrap)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.Authenticate, AuthorizeRole(adminOnly...))
			r.Get("/", s.handleListUsers)
			r.Put("/", s.handleUpdateUserRole)
			r.Get("/{id}", s.handleGetUser)
			r.Delete("/{id}", s.handleDeleteUser)
		})

		r.Route("/invites", func(r chi.Router) {
			r.Use(s.Authenticate, AuthorizeRole(adminOnly...))
			r.Get("/", s.handleListInvites)
			r.Post("/", s.handleAddInvite)
			r.Put("/", s.handleUpdateInvite)
			r.Delete("/{email}", s.handleDeleteInvite)
		})

		r.With(s.Authenticate, AuthorizeRole(allRoles...)).Get("/activities", s.handleActivities)
	})

	r.Route("/api/dashboard", func(r chi.Router) {
		r.Use(s.Authenticate, AuthorizeRole(allRoles...))
		r.Get("/", s.handleDashboard)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Use(s.Authenticate, AuthorizeRole(adminEditor...))
		r.Get("/", s.handleListProducts)
		r.Get("/meta", s.handleProductMeta)
		r.Get("/{id}", s.handleGetProduct)
		r.Post("/", s.handleCreateProduct)
		r.Put("/", s.handleUpdateProduct)
		r.Delete("/{id}", s.handleDeleteProduct)
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Use(s.Authenticate, AuthorizeRole(adminEditor...))
		r.Get("/", s.handleListCategories)
		r.Post("/", s.handleCreateCategory)
		r.Put("/", s.handleUpdateCategory)
		r.Delete("/{id}", s.handleDeleteCategory)
	})

	r.Route("/api/brands", func(r chi.Router) {
		r.Use(s.Authenticate, AuthorizeRole(adminEditor...))
		r.Get("/", s.handleListBrands)
		r.Post("/", s.handleCreateBrand)
		r.Put("/", s.handleUpdateBrand)
		r.Delete("/{id}", s.handleDeleteBrand)
	})

	r.Route("/api/customers", func(r chi.Router) {
		r.Use(s.Authenticate, AuthorizeRole(adminOnly...))
		r.Get("/", s.handleListCustomers)
		r.Get("/{id}", s.handleGetCustomer)
		r.Post("/", s.handleCreateCustomer)
		r.Put("/{id}", s.handleUpdateCustomer)
		r.Delete("/{id}", s.handleDeleteCustomer)
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Use(s.Authenticate, AuthorizeRole(allRoles...))
		r.Get("/", s.handleListOrders)
		r.Put("/", s.handleUpdateOrderStatus)
	})

	r.Route("/api/sales-returns", func(r chi.Router) {
		r.Use(s.Authenticate, AuthorizeRole(allRoles...))
		r.Get("/", s.handleListSalesReturns)
	})

	r.Route("/api/invoices", func(r chi.Router) {
		r.Use(s.Authenticate, AuthorizeRole(adminModerator...))
		r.Get("/", s.handleListInvoices)
		r.Get("/{id}", s.handleInvoiceDetails)
		r.Get("/{id}/pdf", s.handleInvoicePDF)
		r.Get("/{id}/archive-url", s.handleInvoiceArchiveURL)
	})

	r.Route("/api/reports", func(r chi.Router) {
		r.Use(s.Authenticate, AuthorizeRole(adminModerator...))
		r.Get("/sales", s.handleSalesReport)
		r.Get("/inventory", s.handleInventoryReport)
		r.Get("/profit-loss", s.handleProfitLossReport)
		r.Get("/annual", s.handleAnnualReport)
	})

	return r
}

// setAuthCookies installs a fresh token pair. Both cookies are httpOnly and
// SameSite=None so the browser sends them cross-site but scripts never read
// them.
func (s *Server) setAuthCookies(w http.ResponseWriter, pair *services.TokenPair) {
	maxAge := int(s.cfg.RefreshTokenValidityDuration.Seconds())
	http.SetCookie(w, &http.Cookie{
		Name:     common.AccessTokenCookieName,
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     common.RefreshTokenCookieName,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (s *Server) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{common.AccessTokenCookieName, common.RefreshTokenCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}
}
