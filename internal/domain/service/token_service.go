package service

import (
	"time"

	"snapdish/internal/domain/entity"
)

// TokenInspector reads what the client can know about an opaque bearer token.
type TokenInspector interface {
	// Inspect never rejects a token: non-JWT tokens yield a session without expiration.
	Inspect(token string) *entity.Session
}

// TokenIssuer signs and validates the access tokens handed out by the development backend.
type TokenIssuer interface {
	// Issue returns a signed access token for the given user.
	Issue(userID string) (string, error)

	// Validate returns the user ID carried by a valid token.
	Validate(token string) (string, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
