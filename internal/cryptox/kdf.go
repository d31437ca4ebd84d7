// Package cryptox implements the vault's cryptographic primitives: master
// key derivation, password hashing, authenticated encryption and random
// password generation.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"passvault/internal/common"
)

const (
	// KeySize is the length of derived symmetric keys (AES-256).
	KeySize = 32

	// SaltSize is the length of the key-derivation salt.
	SaltSize = 16

	// kdfIterations is fixed: changing it silently invalidates every
	// previously encrypted vault.
	kdfIterations = 480000
)

// DeriveKey stretches a master password into a 32-byte symmetric key using
// PBKDF2-HMAC-SHA256. Deterministic: the same (password, salt) pair always
// yields the same key. The call is deliberately slow.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, kdfIterations, KeySize, sha256.New)
}

// GenerateSalt returns a fresh random key-derivation salt. The salt is
// generated once at admin creation and must never change afterwards.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}
