// Package cli implements the interactive wellfinder client: a REPL over the
// authentication and location-discovery services, bound to either the local
// or the remote backend at startup.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/avoronkov/wellfinder/internal/client/config"
	"github.com/avoronkov/wellfinder/internal/client/services"
	"github.com/avoronkov/wellfinder/internal/discovery"
	"github.com/avoronkov/wellfinder/internal/models"
)

type App struct {
	config    *config.Config
	auth      services.AuthService
	locations discovery.Service

	session     *models.Session
	unsubscribe func()
	closer      func() error

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	backend, err := services.NewBackend(ctx, c)
	if err != nil {
		return nil, err
	}

	app := newApp(c, backend.Auth, backend.Locations)
	app.closer = backend.Close
	return app, nil
}

// newApp wires an App over already-bound services; tests use it directly.
func newApp(c *config.Config, auth services.AuthService, locations discovery.Service) *App {
	app := &App{
		config:    c,
		auth:      auth,
		locations: locations,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	// keep the prompt in step with the session state
	app.unsubscribe = auth.Subscribe(func(s *models.Session) {
		app.session = s
	})

	return app
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	// a persisted session from an earlier run keeps the user signed in
	if s, err := a.auth.GetSession(ctx); err == nil {
		a.session = s
	}

	a.Root(ctx)
}

func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.closer != nil {
		_ = a.closer()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}
