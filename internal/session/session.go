package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Package session keeps the bearer token of the signed-in user.

// Store holds the current session token. An empty token means signed out.
// Every Store satisfies httpclient.TokenProvider.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Close() error
}

const (
	TypeMemory = "memory"
	TypeBBolt  = "bbolt"
)

// NewStore creates the configured session backend.
func NewStore(typ, path string) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))

	switch typ {
	case "", TypeMemory:
		return NewMemoryStore(), nil
	case TypeBBolt:
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt session store requires a path")
		}
		return openBolt(path)
	default:
		return nil, fmt.Errorf("unsupported session type %q", typ)
	}
}

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns an empty, signed-out store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = strings.TrimSpace(token)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// seededStore answers with seed until the session is changed in this process.
// The seed is never written to the underlying store.
type seededStore struct {
	Store
	mu      sync.RWMutex
	seed    string
	changed bool
}

// WithSeed returns s with token as the process-local session. A Login or
// Logout replaces it; a blank token returns s unchanged.
func WithSeed(s Store, token string) Store {
	token = strings.TrimSpace(token)
	if token == "" {
		return s
	}
	return &seededStore{Store: s, seed: token}
}

func (s *seededStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	seed, changed := s.seed, s.changed
	s.mu.RUnlock()
	if !changed {
		return seed, nil
	}
	return s.Store.Token(ctx)
}

func (s *seededStore) SetToken(ctx context.Context, token string) error {
	if err := s.Store.SetToken(ctx, token); err != nil {
		return err
	}
	s.mu.Lock()
	s.changed = true
	s.mu.Unlock()
	return nil
}

func (s *seededStore) Clear(ctx context.Context) error {
	if err := s.Store.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.changed = true
	s.mu.Unlock()
	return nil
}
