// Package storage opens the client-side sqlite database and applies its
// schema migrations. The database holds the persisted credential mapping and
// the single current-session slot.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/avoronkov/wellfinder/internal/client/storage/migrations"
)

// Open opens (creating if needed) the sqlite database at dsn and runs the
// embedded migrations. Use "file:wellfinder?mode=memory&cache=shared" style
// DSNs for throwaway stores.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return db, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
