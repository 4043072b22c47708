package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"edgefinder/internal/advisor"
)

const (
	DefaultTTL            = 2 * time.Hour
	DefaultChatRatePerMin = 20
)

// Config controls how the manager builds sessions.
type Config struct {
	StartingBalance decimal.Decimal
	TTL             time.Duration
	// ChatRatePerMin caps remote chat calls per session; 0 disables the cap.
	ChatRatePerMin  int
	Logger          *zap.Logger
	// Now overrides the clock in tests.
	Now             func() time.Time
}

// Manager owns every live session. Sessions share nothing but Deps.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	deps     Deps
	starting decimal.Decimal
	ttl      time.Duration
	chatRate int
	log      *zap.Logger
	now      func() time.Time
}

func NewManager(deps Deps, cfg Config) *Manager {
	if deps.Advisor == nil {
		deps.Advisor = advisor.NewResponder()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Manager{
		sessions: make(map[string]*Session),
		deps:     deps,
		starting: cfg.StartingBalance,
		ttl:      cfg.TTL,
		chatRate: cfg.ChatRatePerMin,
		log:      cfg.Logger,
		now:      cfg.Now,
	}
}

func (m *Manager) limiter() *rate.Limiter {
	if m.chatRate <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.chatRate)), m.chatRate)
}

// Create starts a fresh session at the configured starting balance.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), m.starting, &m.deps, m.limiter(), m.now)

	m.mu.Lock()
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.mu.Unlock()

	m.deps.Metrics.SetSessions(n)
	m.log.Info("session created", zap.String("session", s.ID))
	return s
}

// Get returns the session and marks it as seen.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch()
	return s, nil
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	removed := 0
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	m.deps.Metrics.SetSessions(n)
	m.deps.Metrics.RecordSweep(removed)
	if removed > 0 {
		m.log.Info("swept idle sessions", zap.Int("removed", removed), zap.Int("remaining", n))
	}
	return removed
}

// ResetDaily zeroes committed daily risk on every session.
func (m *Manager) ResetDaily() int {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	for _, s := range sessions {
		s.ResetDaily()
	}
	m.deps.Metrics.RecordDailyReset()
	m.log.Info("daily risk reset", zap.Int("sessions", len(sessions)))
	return len(sessions)
}
