// Package server initializes and runs the wellfinder API server. It opens
// the database, provisions the location catalog from the configured source,
// and serves the HTTP API until interrupted.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avoronkov/wellfinder/internal/catalog"
	"github.com/avoronkov/wellfinder/internal/discovery"
	"github.com/avoronkov/wellfinder/internal/logging"
	"github.com/avoronkov/wellfinder/internal/server/config"
	"github.com/avoronkov/wellfinder/internal/server/httpapi"
	"github.com/avoronkov/wellfinder/internal/server/repositories/accounts"
	"github.com/avoronkov/wellfinder/internal/server/services"
	"github.com/avoronkov/wellfinder/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	return &App{config: c, logger: logger}
}

// loadCatalog provisions the location catalog from the source named in the
// config. The choice is made once at startup.
func (app *App) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	switch app.config.CatalogSource {
	case config.CatalogSourceEmbedded:
		return catalog.New(catalog.Seed()), nil
	case config.CatalogSourceFile:
		locations, err := catalog.LoadFromFile(app.config.CatalogPath)
		if err != nil {
			return nil, err
		}
		return catalog.New(locations), nil
	case config.CatalogSourceS3:
		locations, err := catalog.LoadFromS3(ctx, catalog.S3Options{
			Bucket:       app.config.S3Bucket,
			Key:          app.config.S3Key,
			Region:       app.config.S3Region,
			AccessKey:    app.config.S3AccessKey,
			SecretKey:    app.config.S3SecretKey,
			BaseEndpoint: app.config.S3BaseEndpoint,
		})
		if err != nil {
			return nil, err
		}
		return catalog.New(locations), nil
	default:
		return nil, fmt.Errorf("unknown catalog source: %s", app.config.CatalogSource)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run() error {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	db, err := storage.Open(ctx, app.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	cat, err := app.loadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("catalog init error: %w", err)
	}
	app.logger.Info(ctx, "catalog loaded", "source", app.config.CatalogSource, "locations", cat.Len())

	authService := services.NewAuthService(accounts.NewPostgresRepository(db), app.config)
	discoveryService := discovery.NewCatalogService(cat, 0)

	router := httpapi.NewRouter(
		httpapi.NewAuthHandler(authService, app.logger),
		httpapi.NewLocationHandler(discoveryService, app.logger),
		[]byte(app.config.SecretKey),
	)

	srv := httpapi.NewServer(app.config.EndpointAddr, router, app.logger)
	return srv.Run(ctx)
}
