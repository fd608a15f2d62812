// Package accounts implements the server-side account store. Email
// uniqueness is enforced by the store: concurrent creates for the same email
// resolve to exactly one winner.
package accounts

import (
	"context"

	"github.com/avoronkov/wellfinder/internal/models"
)

// Record is an account together with its bcrypt password hash.
type Record struct {
	Account      models.Account
	PasswordHash []byte
}

// Repository is the account store contract. Create returns
// common.ErrDuplicateAccount when the email is taken; GetByEmail returns
// common.ErrNotFound for unknown emails.
type Repository interface {
	Create(ctx context.Context, email, name string, passwordHash []byte) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*Record, error)
}
