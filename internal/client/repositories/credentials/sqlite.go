package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/dbx"
	"github.com/avoronkov/wellfinder/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Find(ctx context.Context, email string) (*models.StoredCredential, error) {
	var record []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT record FROM credentials WHERE email = ?`, email).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	cred := &models.StoredCredential{}
	if err := json.Unmarshal(record, cred); err != nil {
		// corrupt record: clear it and report absent
		if _, delErr := r.db.ExecContext(ctx,
			`DELETE FROM credentials WHERE email = ?`, email); delErr != nil {
			return nil, fmt.Errorf("db error: %w", delErr)
		}
		return nil, nil
	}

	return cred, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, email, secret, name string) (*models.Account, error) {
	account := models.Account{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	record, err := json.Marshal(models.StoredCredential{Account: account, Secret: secret})
	if err != nil {
		return nil, fmt.Errorf("record encode error: %w", err)
	}

	// INSERT OR IGNORE keeps check-and-set atomic: the PRIMARY KEY decides
	// the winner, and the loser observes zero affected rows.
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO credentials (email, record) VALUES (?, ?)`, email, record)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrDuplicateAccount
	}

	return &account, nil
}
