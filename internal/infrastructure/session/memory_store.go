package session

import (
	"sync"

	"github.com/stocai/blog-admin/internal/domain/contract"
)

// MemoryStore keeps the credential in memory. Used by tests and by
// deployments that prefer to re-login on every start.
type MemoryStore struct {
	mu         sync.Mutex
	credential string
	present    bool
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
	s.present = true
	return nil
}

func (s *MemoryStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return "", nil
	}
	return s.credential, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	s.present = false
	return nil
}

var _ contract.ISessionStore = (*MemoryStore)(nil)
