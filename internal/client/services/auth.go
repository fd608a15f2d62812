// Package services contains application services for the wellfinder client.
// This file defines the authentication service contract shared by the local
// and remote backends.
package services

import (
	"context"

	"github.com/avoronkov/wellfinder/internal/models"
)

// SessionListener receives the session state after every mutating auth
// operation. A nil session means signed out.
type SessionListener func(session *models.Session)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignUp: create an account for a new identity and establish a session.
//     A taken email yields common.ErrDuplicateAccount.
//   - SignIn: verify credentials and establish a fresh session. Unknown
//     email and wrong secret both yield common.ErrInvalidCredentials.
//   - SignOut: drop the current session; idempotent.
//   - GetSession: the current session, or (nil, nil) when signed out or
//     expired. A pure read, never notifies listeners.
//   - Subscribe: register a listener called after every mutating operation,
//     in subscription order, with the resulting session state. The returned
//     function deregisters exactly that listener.
//
// Listeners are notified only after the session write has durably succeeded.
type AuthService interface {
	SignUp(ctx context.Context, email, secret, name string) (*models.Session, error)
	SignIn(ctx context.Context, email, secret string) (*models.Session, error)
	SignOut(ctx context.Context) error
	GetSession(ctx context.Context) (*models.Session, error)
	Subscribe(listener SessionListener) (unsubscribe func())
}
