package cryptox

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the password with a fresh embedded
// salt. The cost factor makes verification take tens of milliseconds, which
// is the point.
func HashPassword(password []byte) (string, error) {
	h, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches the bcrypt hash token.
// A malformed token is reported as a plain mismatch; no distinct error is
// surfaced to the caller.
func VerifyPassword(password []byte, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), password) == nil
}
