package credential

import (
	"context"
	"sync"

	"snapdish/internal/domain/service"
)

// MemoryStore is a process-local CredentialStore.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

var _ service.CredentialStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return "", service.ErrNoCredential
	}

	return s.token, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token, s.set = token, true

	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token, s.set = "", false

	return nil
}
