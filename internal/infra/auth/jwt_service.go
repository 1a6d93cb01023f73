// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"snapdish/config"
	"snapdish/internal/domain/service"
	"snapdish/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTypeAccess = "access"

// jwtIssuer signs the access tokens handed out by the development backend.
type jwtIssuer struct {
	secret []byte        // HMAC key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
	now    func() time.Time
}

// NewJWTIssuer is the constructor for jwtIssuer.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.Backend == nil || cfg.Backend.TokenSecret == "" {
		return nil, errors.New("backend.tokenSecret must be provided")
	}

	return &jwtIssuer{
		secret: []byte(cfg.Backend.TokenSecret),
		ttl:    cfg.Backend.TokenTTL,
		now:    time.Now,
	}, nil
}

// Issue creates an access token whose subject is userID.
func (s *jwtIssuer) Issue(userID string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
		"type": tokenTypeAccess,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of token and returns its subject.
func (s *jwtIssuer) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", errors.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims type")
	}
	if typ, _ := claims["type"].(string); typ != tokenTypeAccess {
		return "", errors.Errorf("unexpected token type %q", typ)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("token has no subject")
	}

	return sub, nil
}

// TTL returns the lifetime of issued tokens.
func (s *jwtIssuer) TTL() time.Duration {
	return s.ttl
}
