package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/common"
	"passvault/internal/models"
)

func withFrozenClock(t *testing.T, at time.Time) func(time.Duration) {
	t.Helper()
	current := at
	timeNow = func() time.Time { return current }
	t.Cleanup(func() { timeNow = time.Now })
	return func(d time.Duration) { current = current.Add(d) }
}

func startedSession(t *testing.T) (*Session, []byte) {
	t.Helper()
	key := []byte{1, 2, 3, 4}
	s := New(DefaultTimeout)
	s.Start(&models.AdminRecord{Username: "admin"}, key)
	return s, key
}

func TestSession_ValidityWindow(t *testing.T) {
	advance := withFrozenClock(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s, _ := startedSession(t)

	advance(1 * time.Minute)
	assert.True(t, s.IsValid(), "session must be valid 1 minute in")

	advance(30 * time.Minute) // t0+31min
	assert.False(t, s.IsValid(), "session must expire after 30 minutes")
}

func TestSession_KeyAccessFollowsValidity(t *testing.T) {
	advance := withFrozenClock(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s, key := startedSession(t)

	got, err := s.Key()
	require.NoError(t, err)
	assert.Equal(t, key, got)

	advance(31 * time.Minute)
	_, err = s.Key()
	assert.ErrorIs(t, err, common.ErrSessionExpired)
}

func TestSession_UnstartedIsInvalid(t *testing.T) {
	s := New(0)
	assert.False(t, s.IsValid())

	_, err := s.Key()
	assert.ErrorIs(t, err, common.ErrSessionExpired)
}

func TestSession_EndWipesKeyMaterial(t *testing.T) {
	s, key := startedSession(t)

	s.End()

	assert.False(t, s.IsValid())
	assert.Nil(t, s.User())
	for i, b := range key {
		assert.Zerof(t, b, "key byte %d must be overwritten", i)
	}
}

func TestNew_ZeroTimeoutFallsBackToDefault(t *testing.T) {
	s := New(0)
	assert.Equal(t, DefaultTimeout, s.timeout)
}
