// Package server initializes and runs the back-office application server.
// It opens the database, runs migrations, wires the services and starts the
// HTTP API with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/codebyfaisal/e-store-pos/internal/logging"
	"github.com/codebyfaisal/e-store-pos/internal/server/config"
	"github.com/codebyfaisal/e-store-pos/internal/server/httpapi"
	"github.com/codebyfaisal/e-store-pos/internal/server/invoicepdf"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/repomanager"
	"github.com/codebyfaisal/e-store-pos/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, "info")

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()

	renderer := invoicepdf.NewHTTPRenderer(cfg.PDFRendererEndpoint)

	auth := services.NewAuthService(db, m, cfg)
	users := services.NewUserService(db, m, cfg)
	catalog := services.NewCatalogService(db, m)
	sales := services.NewSalesService(db, m)
	invoices := services.NewInvoiceService(db, m, renderer, cfg)
	reports := services.NewReportService(db, m)

	srv := httpapi.NewServer(cfg, logger, auth, users, catalog, sales, invoices, reports)

	return &App{config: cfg, logger: logger, db: db, repos: m, server: srv}, nil
}

// waitForDB pings the database with exponential backoff, so the server
// survives starting before the database container is ready.
func (app *App) waitForDB(ctx context.Context) error {
	backoff := retry.WithMaxRetries(5, retry.NewExponential(1*time.Second))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := app.db.PingContext(ctx); err != nil {
			app.logger.Warn(ctx, "database not ready, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	if err := app.waitForDB(ctx); err != nil {
		return fmt.Errorf("db connect error: %w", err)
	}

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	httpServer := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	if err := app.db.Close(); err != nil {
		return fmt.Errorf("db close error: %w", err)
	}

	return nil
}
