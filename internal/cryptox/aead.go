package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"passvault/internal/common"
)

// Encrypt seals plaintext under key with AES-256-GCM. A fresh random nonce
// is generated per call and prepended to the ciphertext, so the returned
// token is one opaque blob and repeated encryption of identical plaintext
// yields different tokens.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())

	// Seal appends the ciphertext to the nonce, producing nonce||ciphertext.
	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a token produced by Encrypt. Any bit flip in the token or
// use of a wrong key fails closed with common.ErrAuthentication; corrupted
// plaintext is never returned.
func Decrypt(token, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(token) < aesgcm.NonceSize() {
		return nil, common.ErrAuthentication
	}
	nonce, ciphertext := token[:aesgcm.NonceSize()], token[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.ErrAuthentication
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
