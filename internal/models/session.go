package models

import "time"

// Session is a time-bounded proof of authentication. It is valid while the
// current time is strictly before ExpiresAt; validity is checked on every
// read rather than by a background sweep.
type Session struct {
	Account     Account   `json:"account"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its expiry instant at time now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
