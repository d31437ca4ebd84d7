// Package common defines shared sentinel errors and crypto/rand helpers
// used across passvault components. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// Authentication errors. Wrong credentials and decryption under a
	// wrong key are deliberately indistinguishable to the caller.
	ErrAuthentication = errors.New("authentication failed")

	// Admin lifecycle errors.
	ErrAdminExists = errors.New("admin user already exists")
	ErrNoAdmin     = errors.New("admin user not found")

	// Session and flow errors.
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidState   = errors.New("operation not allowed in current state")

	// Storage errors (disk full, permission denied). A failed save leaves
	// the previously committed file intact.
	ErrStorage = errors.New("storage error")
)
