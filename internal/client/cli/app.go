// Package cli implements the interactive back-office client. It talks to the
// REST API through the gateway package, which handles the session cookies and
// silent token refresh.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/codebyfaisal/e-store-pos/internal/client/config"
	"github.com/codebyfaisal/e-store-pos/internal/client/gateway"
	"github.com/codebyfaisal/e-store-pos/internal/client/models"
)

type App struct {
	config  *config.Config
	api     *gateway.Gateway
	session *models.Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	api, err := gateway.New(c.ServerBaseURL, c.RequestTimeout, c.RefreshTimeout)
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}
