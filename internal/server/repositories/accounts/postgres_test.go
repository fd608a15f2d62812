package accounts

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronkov/wellfinder/internal/common"
)

func TestPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts`)).
		WithArgs(sqlmock.AnyArg(), "a@x.com", "Alice", []byte("hash")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	repo := NewPostgresRepository(db)
	account, err := repo.Create(context.Background(), "a@x.com", "Alice", []byte("hash"))
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "a@x.com", account.Email)
	assert.Equal(t, created, account.CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Create_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

	repo := NewPostgresRepository(db)
	_, err = repo.Create(context.Background(), "a@x.com", "", []byte("hash"))
	require.ErrorIs(t, err, common.ErrDuplicateAccount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Create_OtherDBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts`)).
		WillReturnError(errors.New("connection refused"))

	repo := NewPostgresRepository(db)
	_, err = repo.Create(context.Background(), "a@x.com", "", []byte("hash"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrDuplicateAccount)
}

func TestPostgres_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, name, password_hash, created_at FROM accounts`)).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
			AddRow("acc-1", "a@x.com", "Alice", []byte("hash"), created))

	repo := NewPostgresRepository(db)
	rec, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", rec.Account.ID)
	assert.Equal(t, []byte("hash"), rec.PasswordHash)
	assert.Equal(t, created, rec.Account.CreatedAt)
}

func TestPostgres_GetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, name, password_hash, created_at FROM accounts`)).
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}))

	repo := NewPostgresRepository(db)
	_, err = repo.GetByEmail(context.Background(), "ghost@x.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}
