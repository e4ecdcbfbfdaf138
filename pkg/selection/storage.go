package selection

import (
	"context"
	"sync"
)

// Storage keeps the per-session selection state. Unknown sessions read as
// the default state, there is no separate "create" step.
type Storage interface {
	Get(ctx context.Context, sessionId string) (State, error)
	Set(ctx context.Context, sessionId string, state State) error
}

// MemoryStorage is the single-node store, also the fallback when no redis
// is configured.
type MemoryStorage struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		states: make(map[string]State),
	}
}

func (m *MemoryStorage) Get(_ context.Context, sessionId string) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if state, ok := m.states[sessionId]; ok {
		return state, nil
	}
	return DefaultState(), nil
}

func (m *MemoryStorage) Set(_ context.Context, sessionId string, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[sessionId] = state
	return nil
}
