package entity

import "time"

// Session is the bearer credential proving a prior successful login.
// The token itself is opaque; ExpiresAt is only known when the backend issues JWTs with an exp claim.
type Session struct {
	Token     string     // The raw bearer token sent in the Authorization header.
	ExpiresAt *time.Time // Expiration read from the token, nil when unknown.
}

// Expired reports whether the session is past its known expiration.
// Sessions without an expiration never expire client-side.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.ExpiresAt == nil {
		return false
	}

	return !now.Before(*s.ExpiresAt)
}
