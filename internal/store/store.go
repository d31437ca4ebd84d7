// Package store persists named binary blobs with atomic-replace semantics:
// a reader never observes a half-written blob, and a failed save leaves the
// previously committed version intact.
package store

import "errors"

// ErrAbsent is returned by Load for a name that has never been saved.
// It is a normal condition, not a storage failure.
var ErrAbsent = errors.New("absent")

// Store is the persistence boundary of the vault. Implementations must
// guarantee that after a crash during Save the stored blob is either the
// previous complete version or the new complete version.
type Store interface {
	// Save durably replaces the blob stored under name.
	Save(name string, data []byte) error

	// Load returns the blob stored under name, or ErrAbsent.
	Load(name string) ([]byte, error)

	// Exists reports whether a blob has ever been saved under name.
	Exists(name string) bool
}
