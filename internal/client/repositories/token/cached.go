package token

import (
	"context"
	"sync"
)

// CachedStore is a write-through cache over another Store. It is the single
// authoritative token location for the process: callers read and write
// through it and never touch the in-memory copy and the persisted copy
// independently.
//
// A failed backing write still fails the operation; the cache is only
// updated after the backing store succeeds, except for Clear, which always
// drops the cached value so the process cannot keep using a token the user
// asked to discard.
type CachedStore struct {
	backing Store

	mu     sync.Mutex
	cached string
	loaded bool
}

func NewCachedStore(backing Store) *CachedStore {
	return &CachedStore{backing: backing}
}

func (s *CachedStore) Read(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.cached, nil
	}

	token, err := s.backing.Read(ctx)
	if err != nil {
		return "", err
	}
	s.cached = token
	s.loaded = true
	return token, nil
}

func (s *CachedStore) Write(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backing.Write(ctx, token); err != nil {
		return err
	}
	s.cached = token
	s.loaded = true
	return nil
}

func (s *CachedStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = ""
	s.loaded = true
	return s.backing.Clear(ctx)
}
