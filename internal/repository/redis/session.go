package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncl-services/ncl-backend-go/internal/domain/session"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces kiosk keys, e.g. "ncl_activeJobId".
const DefaultKeyPrefix = "ncl_"

type sessionStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewSessionStore returns a session.Store that survives process restarts.
func NewSessionStore(client goredis.UniversalClient, prefix string) session.Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &sessionStore{client: client, prefix: prefix}
}

func (s *sessionStore) key(k string) string {
	return s.prefix + k
}

// Get implements session.Store.
func (s *sessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get session key %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements session.Store. Keys never expire; the kiosk session lives
// until logout or check-out clears them.
func (s *sessionStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set session key %s: %w", key, err)
	}
	return nil
}

// Delete implements session.Store.
func (s *sessionStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to delete session keys: %w", err)
	}
	return nil
}
