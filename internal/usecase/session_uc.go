// File: internal/usecase/session_uc.go
package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/repository"
	"ai-health-assistant/internal/infra/metrics"
)

// Compile-time check
var _ SessionUseCase = (*sessionUC)(nil)

// SessionListener is invoked after every session transition (restore with a
// live token, login, logout). Controllers use it to re-run their
// session-dependent fetches instead of polling a global.
type SessionListener func(model.Session)

// SessionUseCase is the single authority for authentication state.
type SessionUseCase interface {
	Restore() model.Session
	Login(token string, user model.User) model.Session
	Logout()
	Current() model.Session
	IsAuthenticated() bool
	OnChange(fn SessionListener)
}

type sessionUC struct {
	mu        sync.Mutex
	store     repository.TokenStore
	ttl       time.Duration
	now       func() time.Time
	log       *zerolog.Logger
	cur       model.Session
	listeners []SessionListener
}

func NewSessionUseCase(store repository.TokenStore, ttl time.Duration, logger *zerolog.Logger) *sessionUC {
	return &sessionUC{store: store, ttl: ttl, now: time.Now, log: logger}
}

// Restore reads the persisted token once at startup. An expired token is a
// silent, expected condition: it triggers a full logout and no error. When
// the store itself is unavailable the session degrades to in-memory only.
func (s *sessionUC) Restore() model.Session {
	token, expiresAt, err := s.store.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn().Err(err).Msg("session store unavailable; continuing in-memory only")
		}
		return s.Current()
	}

	if s.now().After(expiresAt) {
		s.log.Debug().Msg("persisted token expired; logging out")
		metrics.IncSessionEvent("expired")
		s.Logout()
		return s.Current()
	}

	s.mu.Lock()
	// No identity rehydration without a fresh login: user stays unset.
	s.cur = model.Session{Token: token, ExpiresAt: expiresAt}
	cur := s.cur
	s.mu.Unlock()

	s.peekClaims(token)
	metrics.IncSessionEvent("restore")
	s.notify(cur)
	return cur
}

// Login overwrites any prior session state and persists the token with a
// fresh fixed-TTL expiry.
func (s *sessionUC) Login(token string, user model.User) model.Session {
	expiresAt := s.now().Add(s.ttl)

	s.mu.Lock()
	s.cur = model.Session{Token: token, ExpiresAt: expiresAt, User: &user}
	cur := s.cur
	s.mu.Unlock()

	if err := s.store.Save(token, expiresAt); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session; continuing in-memory only")
	}
	metrics.IncSessionEvent("login")
	s.notify(cur)
	return cur
}

// Logout clears in-memory and persisted state. Calling it on an already
// logged-out session is a no-op.
func (s *sessionUC) Logout() {
	s.mu.Lock()
	wasAuthenticated := s.cur.IsAuthenticated()
	s.cur = model.Session{}
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
	if !wasAuthenticated {
		return
	}
	metrics.IncSessionEvent("logout")
	s.notify(model.Session{})
}

func (s *sessionUC) Current() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *sessionUC) IsAuthenticated() bool { return s.Current().IsAuthenticated() }

func (s *sessionUC) OnChange(fn SessionListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *sessionUC) notify(cur model.Session) {
	s.mu.Lock()
	listeners := make([]SessionListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(cur)
	}
}

// peekClaims debug-logs the claims of a JWT-shaped token. The persisted
// expires_at stays authoritative; this is diagnostics only.
func (s *sessionUC) peekClaims(token string) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	ev := s.log.Debug().Str("sub", claims.Subject)
	if claims.ExpiresAt != nil {
		ev = ev.Time("token_exp", claims.ExpiresAt.Time)
	}
	ev.Msg("restored token claims")
}
