package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avoronkov/wellfinder/internal/dbx"
	"github.com/avoronkov/wellfinder/internal/models"
)

// timeNow is a test seam for expiry checks.
var timeNow = time.Now

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, session *models.Session) error {
	record, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session encode error: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO session (slot, record) VALUES (1, ?)
		ON CONFLICT(slot) DO UPDATE SET record = excluded.record
	`, record)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.Session, error) {
	var record []byte
	err := r.db.QueryRowContext(ctx, `SELECT record FROM session WHERE slot = 1`).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	session := &models.Session{}
	if err := json.Unmarshal(record, session); err != nil {
		// corrupt record: self-heal by clearing it
		if clearErr := r.Clear(ctx); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	}

	if session.Expired(timeNow()) {
		if err := r.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return session, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE slot = 1`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
