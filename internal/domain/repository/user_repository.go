// Package repository defines the interfaces for the development backend's persistence layer.
package repository

import (
	"context"

	"snapdish/internal/domain/entity"
	"snapdish/internal/errors"
)

var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when creating an account whose email is taken.
	ErrUserExists = errors.New("user already exists")
)

// UserRepository defines the operations for account persistence.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Account, error)

	// FindByEmail retrieves a single account by email address, compared case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error
}
