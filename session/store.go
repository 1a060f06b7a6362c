// Package session keeps one dashboard state per browser session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/mbenaiss/whatsapp-helpdesk/dashboard"
)

// ErrNotFound is returned by a Store for an unknown session id
var ErrNotFound = errors.New("session not found")

// Store holds session states by id
type Store interface {
	Load(ctx context.Context, id string) (*dashboard.State, error)
	Save(ctx context.Context, id string, state *dashboard.State) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// Expirer is implemented by stores that can drop idle sessions
type Expirer interface {
	Count(ctx context.Context) (int, error)
	Expire(ctx context.Context, olderThan time.Time) (int64, error)
}

type memoryEntry struct {
	data      []byte
	updatedAt time.Time
}

// MemoryStore keeps encoded session states in a map
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]memoryEntry
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]memoryEntry)}
}

// Load returns a decoded copy of the state stored under id
func (m *MemoryStore) Load(_ context.Context, id string) (*dashboard.State, error) {
	m.mu.RLock()
	entry, ok := m.states[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var st dashboard.State
	if err := json.Unmarshal(entry.data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Save stores a copy of state under id
func (m *MemoryStore) Save(_ context.Context, id string, state *dashboard.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.states[id] = memoryEntry{data: data, updatedAt: time.Now()}
	m.mu.Unlock()
	return nil
}

// Delete drops the state stored under id
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.states, id)
	m.mu.Unlock()
	return nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}

// Count returns the number of stored sessions
func (m *MemoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states), nil
}

// Expire removes sessions not saved since olderThan
func (m *MemoryStore) Expire(_ context.Context, olderThan time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, entry := range m.states {
		if entry.updatedAt.Before(olderThan) {
			delete(m.states, id)
			n++
		}
	}
	return n, nil
}

var _ Expirer = (*MemoryStore)(nil)
