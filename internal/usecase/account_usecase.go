package usecase

import (
	"context"

	"snapdish/internal/domain/entity"
)

// AccountUsecase defines the account operations served by the development backend.
type AccountUsecase interface {
	// Register creates an account for creds.Email.
	Register(ctx context.Context, creds entity.Credentials) (*entity.Account, error)

	// Login checks the password and issues an access token.
	Login(ctx context.Context, creds entity.Credentials) (string, error)

	// Authenticate resolves a bearer token into the account it was issued for.
	Authenticate(ctx context.Context, token string) (*entity.Account, error)
}
