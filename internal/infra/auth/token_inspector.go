package auth

import (
	"snapdish/internal/domain/entity"
	"snapdish/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads the exp claim of bearer tokens without verifying them.
// The client has no signing key; the backend remains the authority on validity.
type jwtInspector struct {
	parser *jwt.Parser
}

func NewTokenInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect returns a session for token. Opaque tokens carry no expiration.
func (i *jwtInspector) Inspect(token string) *entity.Session {
	session := &entity.Session{Token: token}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return session
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return session
	}
	expiresAt := exp.Time
	session.ExpiresAt = &expiresAt

	return session
}
