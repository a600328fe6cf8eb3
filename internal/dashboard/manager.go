// Package dashboard keeps per-client dashboard sessions. Each session owns an
// application state store; actions move it to pending immediately and finish
// on the worker pool.
package dashboard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pubg-dashboard/stats-api/internal/logic"
	"github.com/pubg-dashboard/stats-api/internal/models"
	"github.com/pubg-dashboard/stats-api/internal/state"
	"github.com/pubg-dashboard/stats-api/internal/worker"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrBusy            = errors.New("dashboard is busy, try again shortly")
)

// Enqueuer accepts acquisition jobs. *worker.Pool satisfies it.
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

type Config struct {
	Service logic.AcquisitionService
	Pool    Enqueuer
	Logger  *zap.Logger

	// TTL is how long a session may stay idle before the janitor evicts it.
	TTL         time.Duration
	// JanitorSpec is the cron schedule of the eviction sweep.
	JanitorSpec string
}

// Session is one client's dashboard.
type Session struct {
	ID    string
	store *state.Store

	mu       sync.Mutex
	lastSeen time.Time
}

// View is the serializable form of a session.
type View struct {
	ID    string      `json:"id"`
	State state.State `json:"state"`
}

func (s *Session) View() View {
	return View{ID: s.ID, State: s.store.Snapshot()}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager is the session registry.
type Manager struct {
	service  logic.AcquisitionService
	pool     Enqueuer
	logger   *zap.SugaredLogger
	ttl      time.Duration
	schedule string
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session

	cron *cron.Cron
}

func NewManager(cfg Config) *Manager {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	if cfg.JanitorSpec == "" {
		cfg.JanitorSpec = "@every 1m"
	}
	return &Manager{
		service:  cfg.Service,
		pool:     cfg.Pool,
		logger:   cfg.Logger.Sugar(),
		ttl:      cfg.TTL,
		schedule: cfg.JanitorSpec,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Start schedules the idle-session janitor.
func (m *Manager) Start() error {
	m.cron = cron.New()
	if _, err := m.cron.AddFunc(m.schedule, func() { m.EvictIdle() }); err != nil {
		return err
	}
	m.cron.Start()
	m.logger.Infow("Session janitor started", "schedule", m.schedule, "ttl", m.ttl)
	return nil
}

// Stop halts the janitor and waits for a running sweep to finish.
func (m *Manager) Stop() {
	if m.cron == nil {
		return
	}
	<-m.cron.Stop().Done()
}

// Create registers a new session for platform.
func (m *Manager) Create(p models.Platform) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		store:    state.NewStore(p),
		lastSeen: m.now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Infow("Session created", "session", s.ID, "platform", p)
	return s
}

// Get returns the session and marks it as active.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(m.now())
	return s, nil
}

func (m *Manager) Evict(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// EvictIdle removes sessions idle for longer than the TTL and returns how
// many were removed. In-flight jobs for an evicted session still complete
// against its store, which is then unreachable.
func (m *Manager) EvictIdle() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		m.logger.Infow("Evicted idle sessions", "count", evicted, "remaining", len(m.sessions))
	}
	return evicted
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
