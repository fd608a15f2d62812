// Package models holds the wire-level data shapes shared by the client and
// server layers: accounts, sessions, and the persisted credential record.
package models

import "time"

// Account is a registered identity. Email is unique across all accounts;
// ID is opaque and immutable once assigned.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoredCredential is the account-credential record kept by the credential
// store, keyed by email. The secret is stored verbatim; see the security
// notes in DESIGN.md.
type StoredCredential struct {
	Account Account `json:"account"`
	Secret  string  `json:"secret"`
}
