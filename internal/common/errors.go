// Package common defines shared constants and sentinel errors used across
// client and server layers of wellfinder. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrStorageCorrupt = errors.New("storage record corrupt")

	// Service-level errors (generic/internal flow control).
	ErrInternal    = errors.New("internal error")
	ErrUnavailable = errors.New("service unavailable")

	// Auth errors.
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)
