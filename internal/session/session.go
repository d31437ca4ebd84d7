// Package session holds the live key material of an authenticated vault and
// enforces its time-boxed validity window.
package session

import (
	"time"

	"passvault/internal/common"
	"passvault/internal/models"
)

// DefaultTimeout is how long a session stays valid after it starts.
const DefaultTimeout = 30 * time.Minute

// timeNow is a test seam for the wall clock.
var timeNow = time.Now

// Session owns the derived key of one authenticated administrator. It is
// never persisted; validity is a pure function of (now - startedAt) and the
// timeout. The check is advisory and pull-based: callers must poll IsValid
// before sensitive operations, the session pushes no expiry notification.
type Session struct {
	user      *models.AdminRecord
	key       []byte
	startedAt time.Time
	timeout   time.Duration
}

// New returns an unstarted session. A non-positive timeout falls back to
// DefaultTimeout.
func New(timeout time.Duration) *Session {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Session{timeout: timeout}
}

// Start binds the session to an authenticated user and the key derived from
// their master password.
func (s *Session) Start(user *models.AdminRecord, key []byte) {
	s.user = user
	s.key = key
	s.startedAt = timeNow()
}

// IsValid reports whether the session has started and not yet timed out.
func (s *Session) IsValid() bool {
	if s.startedAt.IsZero() || s.key == nil {
		return false
	}
	return timeNow().Sub(s.startedAt) < s.timeout
}

// Key returns the session key while the session is valid, and
// common.ErrSessionExpired afterwards.
func (s *Session) Key() ([]byte, error) {
	if !s.IsValid() {
		return nil, common.ErrSessionExpired
	}
	return s.key, nil
}

// User returns the authenticated administrator, or nil after End.
func (s *Session) User() *models.AdminRecord {
	return s.user
}

// StartedAt returns when the session began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// End overwrites the key bytes in place, detaches the user and invalidates
// the session. Waiting for garbage collection is not enough for key
// material.
func (s *Session) End() {
	common.WipeByteArray(s.key)
	s.key = nil
	s.user = nil
	s.startedAt = time.Time{}
}
