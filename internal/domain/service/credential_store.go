// Package service defines interfaces for the collaborators the usecases depend on.
// Implementations live under internal/infra.
package service

import (
	"context"

	"snapdish/internal/errors"
)

// ErrNoCredential is returned by CredentialStore.Get when no token is stored.
var ErrNoCredential = errors.New("no stored credential")

// CredentialStore persists the session token across restarts.
// There is at most one writer: the caller of a successful login.
type CredentialStore interface {
	// Get returns the stored token or ErrNoCredential.
	Get(ctx context.Context) (string, error)

	// Set replaces the stored token.
	Set(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
