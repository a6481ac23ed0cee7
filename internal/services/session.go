package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"wemetstudio/internal/domain"
	"wemetstudio/internal/i18n"
)

// Session is the in-memory state of one browser session.
type Session struct {
	ID        string
	CreatedAt time.Time

	Cart     *CartStore
	Calendar *CalendarStore
	Notifier *Notifier

	// bookingMu serializes booking submissions of the session.
	bookingMu sync.Mutex

	mu       sync.Mutex
	lang     string
	lastSeen time.Time
}

// Lang returns the session language.
func (s *Session) Lang() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLang switches the session language. Locale tags such as "he-IL" are accepted.
func (s *Session) SetLang(lang string) error {
	normalized := i18n.Normalize(lang)
	if normalized == "" {
		return fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = normalized
	return nil
}

// Info describes the session.
func (s *Session) Info() domain.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SessionInfo{
		ID:        s.ID,
		Lang:      s.lang,
		Locale:    i18n.Locale(s.lang),
		Dir:       i18n.Dir(s.lang),
		CreatedAt: s.CreatedAt,
		LastSeen:  s.lastSeen,
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionConfig configures new sessions and their expiry.
type SessionConfig struct {
	TTL                  time.Duration
	SweepInterval        time.Duration
	DefaultDate          domain.Day
	NotificationDuration time.Duration
}

// SessionRegistry keeps the live sessions of the process.
type SessionRegistry struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	catalog    *Catalog
	translator domain.Translator
	clock      Clock
	cfg        SessionConfig
	logger     *slog.Logger
}

// NewSessionRegistry returns an empty registry.
func NewSessionRegistry(catalog *Catalog, translator domain.Translator, clock Clock, cfg SessionConfig, logger *slog.Logger) *SessionRegistry {
	if cfg.DefaultDate == (domain.Day{}) {
		cfg.DefaultDate = DefaultSelectedDate
	}
	return &SessionRegistry{
		sessions:   make(map[string]*Session),
		catalog:    catalog,
		translator: translator,
		clock:      clock,
		cfg:        cfg,
		logger:     logger,
	}
}

// Create starts a session in lang. Unsupported languages fall back to the default.
func (r *SessionRegistry) Create(lang string) *Session {
	lang = i18n.Normalize(lang)
	if lang == "" {
		lang = i18n.DefaultLang
	}
	now := r.clock.Now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		Calendar:  NewCalendarStore(r.catalog, r.cfg.DefaultDate),
		Notifier:  NewNotifier(r.clock, r.cfg.NotificationDuration),
		lang:      lang,
		lastSeen:  now,
	}
	s.Cart = NewCartStore(r.catalog, func(domain.Product) {
		s.Notifier.Show(r.translator.T(s.Lang(), "addedToCart"))
	})

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.Debug("session created", "session_id", s.ID, "lang", lang)
	return s
}

// Get returns the session and marks it as used.
func (r *SessionRegistry) Get(id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	s.touch(r.clock.Now())
	return s, nil
}

// Delete ends a session. Deleting an unknown session is a no-op.
func (r *SessionRegistry) Delete(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.Notifier.Dismiss()
	}
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many were removed.
func (r *SessionRegistry) Sweep(now time.Time) int {
	if r.cfg.TTL <= 0 {
		return 0
	}
	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if now.Sub(s.idleSince()) > r.cfg.TTL {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Notifier.Dismiss()
		r.logger.Info("session expired", "session_id", s.ID)
	}
	return len(expired)
}

// Run sweeps expired sessions every SweepInterval until ctx is done.
func (r *SessionRegistry) Run(ctx context.Context) {
	if r.cfg.SweepInterval <= 0 {
		return
	}
	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	r.logger.Info("session sweeper started", "interval", r.cfg.SweepInterval, "ttl", r.cfg.TTL)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			if n := r.Sweep(r.clock.Now()); n > 0 {
				r.logger.Debug("sessions swept", "count", n, "live", r.Len())
			}
		}
	}
}
