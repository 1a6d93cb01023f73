// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"snapdish/internal/domain/entity"
)

// SessionUsecase defines the account operations of the client.
type SessionUsecase interface {
	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, creds entity.Credentials) (*entity.Session, error)

	// Register creates an account. It does not log in.
	Register(ctx context.Context, creds entity.Credentials) (*entity.RegistrationAck, error)

	// Logout forgets the stored token.
	Logout(ctx context.Context) error

	// Current returns the stored session, or ErrAuthenticationRequired when there is none or it expired.
	Current(ctx context.Context) (*entity.Session, error)
}
