// Package auth tracks who a caller is. A Session starts unauthenticated and
// only a Gate can authenticate it; network callers carry their session as a
// signed access token instead.
package auth

import (
	"sync"

	"github.com/dmitrijs2005/healthgate/internal/common"
)

// Session is one caller's authentication state. The zero value is an
// unauthenticated session.
type Session struct {
	mu       sync.RWMutex
	identity string
	authed   bool
}

func NewSession() *Session {
	return &Session{}
}

// CurrentIdentity returns the authenticated username, if any.
func (s *Session) CurrentIdentity() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.authed
}

// RequireAuthenticated fails with common.ErrUnauthorized for an
// unauthenticated session.
func (s *Session) RequireAuthenticated() error {
	if _, ok := s.CurrentIdentity(); !ok {
		return common.ErrUnauthorized
	}
	return nil
}

// authenticate moves an unauthenticated session to authenticated.
func (s *Session) authenticate(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authed {
		return common.ErrAlreadyAuthenticated
	}
	s.identity = username
	s.authed = true
	return nil
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = ""
	s.authed = false
}
