package memory

import (
	"context"
	"sync"

	"github.com/ncl-services/ncl-backend-go/internal/domain/session"
)

// SessionStore keeps session keys in process memory. State is lost on restart.
type SessionStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{values: make(map[string]string)}
}

var _ session.Store = (*SessionStore)(nil)

// Get implements session.Store.
func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements session.Store.
func (s *SessionStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete implements session.Store.
func (s *SessionStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}
