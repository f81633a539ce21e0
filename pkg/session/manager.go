package session

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/internal/logging"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/observability"
)

// Manager hands out isolated ribbon.Session instances by ID. The map is
// guarded by a mutex; the sessions themselves serialize their own access,
// so the manager lock is only held for lookups.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*ribbon.Session

	sessionOpts []ribbon.Option
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for session lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithSessionOptions passes options through to every session the manager
// creates.
func WithSessionOptions(opts ...ribbon.Option) Option {
	return func(m *Manager) {
		m.sessionOpts = opts
	}
}

// WithMetrics wires the active-session gauge.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// NewManager creates an empty session manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*ribbon.Session),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the session for the ID, or domain.ErrSessionNotFound.
func (m *Manager) Get(id string) (*ribbon.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// GetOrCreate returns the session for the ID, creating a fresh one on
// first use.
func (m *Manager) GetOrCreate(id string) *ribbon.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[id]; ok {
		return sess
	}

	sess := ribbon.NewSession(m.sessionOpts...)
	m.sessions[id] = sess
	m.metrics.SetActiveSessions(len(m.sessions))
	m.logger.Info("session created", "session_id", id)
	return sess
}

// Delete drops the session. Deleting an unknown ID is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return
	}
	delete(m.sessions, id)
	m.metrics.SetActiveSessions(len(m.sessions))
	m.logger.Info("session deleted", "session_id", id)
}

// List returns the active session IDs in sorted order.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
