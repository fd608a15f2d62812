package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoronkov/wellfinder/internal/catalog"
	"github.com/avoronkov/wellfinder/internal/client/api"
	"github.com/avoronkov/wellfinder/internal/client/config"
	"github.com/avoronkov/wellfinder/internal/client/repositories/credentials"
	"github.com/avoronkov/wellfinder/internal/client/repositories/sessions"
	"github.com/avoronkov/wellfinder/internal/client/storage"
	"github.com/avoronkov/wellfinder/internal/discovery"
)

// Backend bundles the bound service implementations. Exactly one concrete
// implementation per service interface is chosen at startup; there is no
// runtime switching.
type Backend struct {
	Auth      AuthService
	Locations discovery.Service

	db *sql.DB
}

// Close releases resources held by the backend.
func (b *Backend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// NewBackend binds service implementations according to cfg.Backend.
//
// Both modes use the local SQLite store: the local backend keeps credentials
// and the session there; the remote backend keeps only the session, so a
// sign-in survives client restarts.
func NewBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	db, err := storage.Open(ctx, cfg.LocalDSN)
	if err != nil {
		return nil, fmt.Errorf("local store init error: %w", err)
	}

	sessionRepo := sessions.NewSQLiteRepository(db)

	switch cfg.Backend {
	case config.BackendLocal:
		credentialRepo := credentials.NewSQLiteRepository(db)
		cat := catalog.New(catalog.Seed())

		return &Backend{
			Auth:      NewLocalAuthService(credentialRepo, sessionRepo, cfg.SimulatedLatency),
			Locations: discovery.NewCatalogService(cat, cfg.SimulatedLatency),
			db:        db,
		}, nil

	case config.BackendRemote:
		client := api.NewHTTPClient(cfg.ServerEndpointAddr, cfg.RequestTimeout)

		return &Backend{
			Auth:      NewRemoteAuthService(client, sessionRepo),
			Locations: NewRemoteLocationService(client, sessionRepo),
			db:        db,
		}, nil

	default:
		_ = db.Close()
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}
