package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/common"
)

func TestNewAccount_SetsFieldsAndTimestamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a, err := NewAccount("Gmail", "a@b.com", "x", "Personal", "main inbox", now)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Gmail", a.Platform)
	assert.Equal(t, "a@b.com", a.Identifier)
	assert.Equal(t, "x", a.Secret)
	assert.Equal(t, "Personal", a.Category)
	assert.Equal(t, "main inbox", a.Notes)
	assert.Equal(t, now, a.CreatedAt)
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
}

func TestNewAccount_RequiredFields(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name                         string
		platform, identifier, secret string
	}{
		{name: "empty platform", identifier: "a@b.com", secret: "x"},
		{name: "blank platform", platform: "   ", identifier: "a@b.com", secret: "x"},
		{name: "empty identifier", platform: "Gmail", secret: "x"},
		{name: "empty secret", platform: "Gmail", identifier: "a@b.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccount(tt.platform, tt.identifier, tt.secret, "", "", now)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestNewAccount_UniqueIDs(t *testing.T) {
	now := time.Now()

	a1, err := NewAccount("Gmail", "a@b.com", "x", "", "", now)
	require.NoError(t, err)
	a2, err := NewAccount("Gmail", "a@b.com", "x", "", "", now)
	require.NoError(t, err)

	assert.NotEqual(t, a1.ID, a2.ID)
}

func TestAccountUpdate_Apply(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	a, err := NewAccount("Gmail", "a@b.com", "x", "Personal", "", created)
	require.NoError(t, err)

	secret := "y"
	notes := "rotated"
	AccountUpdate{Secret: &secret, Notes: &notes}.Apply(a, updated)

	assert.Equal(t, "y", a.Secret)
	assert.Equal(t, "rotated", a.Notes)
	assert.Equal(t, "a@b.com", a.Identifier, "unset fields stay unchanged")
	assert.Equal(t, "Personal", a.Category)
	assert.Equal(t, created, a.CreatedAt)
	assert.Equal(t, updated, a.UpdatedAt)
	assert.True(t, a.UpdatedAt.After(a.CreatedAt))
}

func TestAccount_Clone(t *testing.T) {
	a, err := NewAccount("Gmail", "a@b.com", "x", "", "", time.Now())
	require.NoError(t, err)

	c := a.Clone()
	c.Secret = "changed"

	assert.Equal(t, "x", a.Secret)
}
