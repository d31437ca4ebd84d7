package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/common"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "vaultdata"))
	require.NoError(t, err)
	return s
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s := newFileStore(t)

	require.NoError(t, s.Save("accounts.enc", []byte("v1")))

	got, err := s.Load("accounts.enc")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
	assert.True(t, s.Exists("accounts.enc"))
}

func TestFileStore_LoadAbsent(t *testing.T) {
	s := newFileStore(t)

	_, err := s.Load("never-written")
	assert.ErrorIs(t, err, ErrAbsent)
	assert.False(t, s.Exists("never-written"))
}

func TestFileStore_SaveReplacesAtomically(t *testing.T) {
	s := newFileStore(t)

	require.NoError(t, s.Save("accounts.enc", []byte("v1")))
	require.NoError(t, s.Save("accounts.enc", []byte("v2 with different length")))

	got, err := s.Load("accounts.enc")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2 with different length"), got)
}

// A crash mid-save leaves a stray temporary file behind. The committed blob
// must still read back complete, never truncated or mixed.
func TestFileStore_StrayTempFileDoesNotCorruptBlob(t *testing.T) {
	s := newFileStore(t)

	require.NoError(t, s.Save("accounts.enc", []byte("committed version")))

	// Simulate an interrupted writer: a half-written temp file next to the blob.
	stray := filepath.Join(s.Dir(), "accounts.enc123456789")
	require.NoError(t, os.WriteFile(stray, []byte("partial garb"), 0o600))

	got, err := s.Load("accounts.enc")
	require.NoError(t, err)
	assert.Equal(t, []byte("committed version"), got)
}

func TestFileStore_SaveFailureKeepsPreviousVersion(t *testing.T) {
	s := newFileStore(t)

	require.NoError(t, s.Save("accounts.enc", []byte("v1")))

	// A name pointing into a nonexistent subdirectory cannot be created.
	err := s.Save(filepath.Join("missing-subdir", "accounts.enc"), []byte("v2"))
	require.ErrorIs(t, err, common.ErrStorage)

	got, err := s.Load("accounts.enc")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
}

func TestNewFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemStore_Contract(t *testing.T) {
	s := NewMemStore()

	_, err := s.Load("x")
	assert.ErrorIs(t, err, ErrAbsent)

	require.NoError(t, s.Save("x", []byte("one")))
	got, err := s.Load("x")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)

	// Mutating the returned slice must not affect stored data.
	got[0] = 'X'
	again, err := s.Load("x")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), again)
}
