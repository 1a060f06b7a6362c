package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mbenaiss/whatsapp-helpdesk/dashboard"
)

// Manager applies events to session states one at a time
type Manager struct {
	store    Store
	language string
	log      *zap.SugaredLogger

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is dropped from Manager.locks once nobody holds or waits on it
type sessionLock struct {
	sync.Mutex
	refs int
}

// NewManager creates a Manager. New sessions start in language.
func NewManager(store Store, language string, log *zap.SugaredLogger) *Manager {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Manager{
		store:    store,
		language: language,
		log:      log,
		locks:    make(map[string]*sessionLock),
	}
}

// NewID returns a fresh session id
func (m *Manager) NewID() string {
	return uuid.NewString()
}

func (m *Manager) lock(id string) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sessionLock{}
		m.locks[id] = l
	}
	l.refs++
	m.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, id)
		}
		m.mu.Unlock()
	}
}

func (m *Manager) load(ctx context.Context, id string) (*dashboard.State, error) {
	st, err := m.store.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		m.log.Debugw("starting session", "session", id)
		return dashboard.New(m.language), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	return st, nil
}

// Get returns the state of session id. Unknown sessions start from the seed data.
func (m *Manager) Get(ctx context.Context, id string) (*dashboard.State, error) {
	unlock := m.lock(id)
	defer unlock()

	return m.load(ctx, id)
}

// Update loads the state of session id, applies fn and saves the result.
// The state is saved even when fn fails, so validation messages survive the request.
func (m *Manager) Update(ctx context.Context, id string, fn func(*dashboard.State) error) (*dashboard.State, error) {
	unlock := m.lock(id)
	defer unlock()

	st, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}

	fnErr := fn(st)

	if err := m.store.Save(ctx, id, st); err != nil {
		return nil, fmt.Errorf("failed to save session %s: %w", id, err)
	}

	return st, fnErr
}

// Delete forgets session id
func (m *Manager) Delete(ctx context.Context, id string) error {
	unlock := m.lock(id)
	defer unlock()

	return m.store.Delete(ctx, id)
}

// Expire drops sessions idle since olderThan. Stores without expiry report zero.
func (m *Manager) Expire(ctx context.Context, olderThan time.Time) (int64, error) {
	e, ok := m.store.(Expirer)
	if !ok {
		return 0, nil
	}

	n, err := e.Expire(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to expire sessions: %w", err)
	}
	if n > 0 {
		active, _ := e.Count(ctx)
		m.log.Infow("expired idle sessions", "expired", n, "active", active)
	}
	return n, nil
}
