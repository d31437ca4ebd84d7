package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/common"
)

func TestGeneratePassword_LengthAndCharset(t *testing.T) {
	pw, err := GeneratePassword(20, PasswordOptions{Digits: true})
	require.NoError(t, err)
	require.Len(t, pw, 20)

	for _, r := range pw {
		assert.Contains(t, digitChars, string(r))
	}
}

func TestGeneratePassword_AllClasses(t *testing.T) {
	pw, err := GeneratePassword(64, DefaultPasswordOptions())
	require.NoError(t, err)
	require.Len(t, pw, 64)

	charset := lowercaseChars + uppercaseChars + digitChars + symbolChars
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(charset, r), "unexpected character %q", r)
	}
}

func TestGeneratePassword_NoClassSelected(t *testing.T) {
	_, err := GeneratePassword(12, PasswordOptions{})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestGeneratePassword_NonPositiveLength(t *testing.T) {
	_, err := GeneratePassword(0, DefaultPasswordOptions())
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestGeneratePassword_EntropyHint(t *testing.T) {
	p1, err := GeneratePassword(24, DefaultPasswordOptions())
	require.NoError(t, err)
	p2, err := GeneratePassword(24, DefaultPasswordOptions())
	require.NoError(t, err)

	if p1 == p2 {
		t.Logf("warning: two generated passwords are identical; extremely unlikely")
	}
}
