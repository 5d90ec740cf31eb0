package store

import (
	"sync"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// MemoryStore keeps the session in process memory. Used by tests and by
// embedders that manage persistence themselves.
type MemoryStore struct {
	mu   sync.Mutex
	sess *domain.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, nil
	}
	clone := *s.sess
	return &clone, nil
}

func (s *MemoryStore) Save(sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		s.sess = nil
		return nil
	}
	clone := *sess
	s.sess = &clone
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
