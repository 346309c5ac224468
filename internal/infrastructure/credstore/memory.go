package credstore

import (
	"sync"

	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// MemoryStore implementación en memoria de Store, para tests del controller de sesión.
type MemoryStore struct {
	mu       sync.RWMutex
	identity *entity.Identity
	token    string
}

// NewMemoryStore construye un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read() (*entity.Identity, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil || s.token == "" {
		return nil, "", nil
	}
	id := *s.identity
	return &id, s.token, nil
}

func (s *MemoryStore) Write(identity entity.Identity, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.token = ""
	return nil
}
