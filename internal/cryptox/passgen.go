package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"passvault/internal/common"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()-_+=[]{}|;:,.<>?"
)

// DefaultPasswordLength is used when callers do not care about length.
const DefaultPasswordLength = 16

// PasswordOptions selects the character classes GeneratePassword draws from.
type PasswordOptions struct {
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// DefaultPasswordOptions enables every character class.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
}

// GeneratePassword produces a random password of the given length, each
// character drawn uniformly from the selected classes using crypto/rand.
func GeneratePassword(length int, opts PasswordOptions) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: password length must be positive", common.ErrValidation)
	}

	var charset string
	if opts.Lowercase {
		charset += lowercaseChars
	}
	if opts.Uppercase {
		charset += uppercaseChars
	}
	if opts.Digits {
		charset += digitChars
	}
	if opts.Symbols {
		charset += symbolChars
	}
	if charset == "" {
		return "", fmt.Errorf("%w: at least one character class must be selected", common.ErrValidation)
	}

	out := make([]byte, length)
	limit := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
