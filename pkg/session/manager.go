package session

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/morse/internal/logging"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/ports"
	"github.com/google/uuid"
)

// Manager tracks live sessions by ID. Safe for concurrent use.
type Manager struct {
	translator ports.Translator

	mu       sync.RWMutex
	sessions map[string]*Session

	logger   *slog.Logger
	onChange func(active int)
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithActiveGauge registers a callback that receives the number of live
// sessions after every Create and Close.
func WithActiveGauge(fn func(active int)) Option {
	return func(m *Manager) {
		m.onChange = fn
	}
}

// NewManager creates a Manager whose sessions translate with translator.
func NewManager(translator ports.Translator, opts ...Option) *Manager {
	m := &Manager{
		translator: translator,
		sessions:   make(map[string]*Session),
		logger:     logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a session with a fresh ID.
func (m *Manager) Create(listener Listener) *Session {
	s := New(uuid.NewString(), m.translator, listener)

	m.mu.Lock()
	m.sessions[s.id] = s
	active := len(m.sessions)
	m.mu.Unlock()

	m.logger.Debug("session created", "session_id", s.id, "active", active)
	m.notify(active)
	return s
}

// Get returns a live session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Close forgets a session. Closing an unknown ID is a no-op.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	_, existed := m.sessions[id]
	delete(m.sessions, id)
	active := len(m.sessions)
	m.mu.Unlock()

	if existed {
		m.logger.Debug("session closed", "session_id", id, "active", active)
		m.notify(active)
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// List returns the IDs of live sessions in sorted order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Set applies an edit to a live session.
func (m *Manager) Set(ctx context.Context, id string, edited domain.Direction, text string) (Update, bool, error) {
	s, err := m.Get(id)
	if err != nil {
		return Update{}, false, err
	}
	return s.Set(ctx, edited, text)
}

func (m *Manager) notify(active int) {
	if m.onChange != nil {
		m.onChange(active)
	}
}
