package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/dbx"
	"github.com/avoronkov/wellfinder/internal/models"
)

// uniqueViolation is the PostgreSQL error code raised when the email
// uniqueness constraint decides the loser of a concurrent create.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, email, name string, passwordHash []byte) (*models.Account, error) {
	account := &models.Account{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}

	query :=
		`INSERT INTO accounts (id, email, name, password_hash)
	     VALUES ($1, $2, $3, $4)
	     RETURNING created_at
	     `

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.Name, passwordHash).Scan(&account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*Record, error) {
	query :=
		`SELECT id, email, name, password_hash, created_at FROM accounts
	     WHERE email = $1
	     `

	rec := &Record{}
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&rec.Account.ID, &rec.Account.Email, &rec.Account.Name, &rec.PasswordHash, &createdAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	rec.Account.CreatedAt = createdAt
	return rec, nil
}
