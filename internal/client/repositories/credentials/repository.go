// Package credentials implements the persisted account-credential mapping
// used by the local authentication backend. Records are keyed by email and
// the email uniqueness invariant is enforced by the store itself.
package credentials

import (
	"context"

	"github.com/avoronkov/wellfinder/internal/models"
)

// Repository is the credential store contract.
//
//   - Find returns (nil, nil) when the email is unknown; absence is not an
//     error. A record that fails to parse is cleared and reads as absent.
//   - Insert allocates a fresh account and persists the mapping atomically.
//     Two concurrent inserts for the same email can never both succeed; the
//     loser gets common.ErrDuplicateAccount.
type Repository interface {
	Find(ctx context.Context, email string) (*models.StoredCredential, error)
	Insert(ctx context.Context, email, secret, name string) (*models.Account, error)
}
