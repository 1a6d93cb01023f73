// Package memory implements the development backend's repositories in process memory.
package memory

import (
	"context"
	"strings"
	"sync"

	"snapdish/internal/domain/entity"
	"snapdish/internal/domain/repository"
)

type userRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.Account
	byEmail map[string]string
}

// NewUserRepository returns an empty account repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:    make(map[string]*entity.Account),
		byEmail: make(map[string]string),
	}
}

func (repo *userRepository) FindByID(_ context.Context, id string) (*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	account, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *account

	return &clone, nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	repo.mu.RLock()
	id, ok := repo.byEmail[strings.ToLower(email)]
	repo.mu.RUnlock()

	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *userRepository) Create(_ context.Context, account *entity.Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := strings.ToLower(account.Email)
	if _, taken := repo.byEmail[key]; taken {
		return repository.ErrUserExists
	}

	clone := *account
	repo.byID[account.ID] = &clone
	repo.byEmail[key] = account.ID

	return nil
}
