// Package sessions implements the single current-session slot shared by
// every caller in the same client context. Expiry is lazy: it is enforced on
// read by comparing the stored deadline to the current time, never by a
// background sweep.
package sessions

import (
	"context"

	"github.com/avoronkov/wellfinder/internal/models"
)

// Repository is the session store contract.
//
//   - Put persists the session as the single current one, replacing any
//     prior session.
//   - Get returns (nil, nil) when no session is stored. A stored session
//     that is already expired, or whose record fails to parse, is discarded
//     as a side effect and also reads as absent.
//   - Clear removes the persisted session unconditionally and is idempotent.
type Repository interface {
	Put(ctx context.Context, session *models.Session) error
	Get(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}
