// Package twofactor issues short-lived numeric verification codes for the
// second-factor challenge.
package twofactor

import (
	"crypto/rand"
	"math/big"
	"time"

	"passvault/internal/models"
)

const (
	// CodeLength is the number of decimal digits in a code.
	CodeLength = 5

	// DefaultTTL is how long an issued code stays confirmable.
	DefaultTTL = 2 * time.Minute
)

var timeNow = time.Now

// Issuer produces verification codes. Each digit is drawn independently and
// uniformly from crypto/rand.
type Issuer struct {
	ttl time.Duration
}

// NewIssuer returns an issuer stamping codes with the given TTL. A
// non-positive TTL falls back to DefaultTTL.
func NewIssuer(ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{ttl: ttl}
}

// Generate returns a fresh 5-digit code with its validity window stamped.
func (i *Issuer) Generate() (*models.TwoFactorCode, error) {
	digits := make([]byte, CodeLength)
	ten := big.NewInt(10)
	for n := range digits {
		v, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return nil, err
		}
		digits[n] = byte('0' + v.Int64())
	}

	now := timeNow()
	return &models.TwoFactorCode{
		Code:      string(digits),
		CreatedAt: now,
		ExpiresAt: now.Add(i.ttl),
	}, nil
}
