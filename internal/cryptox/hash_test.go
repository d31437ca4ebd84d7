package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyPassword(t *testing.T) {
	hash, err := HashPassword([]byte("master-secret"))
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword([]byte("master-secret"), hash))
	assert.False(t, VerifyPassword([]byte("master-secreT"), hash))
	assert.False(t, VerifyPassword([]byte(""), hash))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword([]byte("same password"))
	require.NoError(t, err)
	h2, err := HashPassword([]byte("same password"))
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_MalformedTokenIsJustAMismatch(t *testing.T) {
	assert.False(t, VerifyPassword([]byte("anything"), "not-a-bcrypt-token"))
	assert.False(t, VerifyPassword([]byte("anything"), ""))
}
