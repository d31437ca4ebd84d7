package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/facebookgo/atomicfile"

	"passvault/internal/common"
)

// FileStore keeps each named blob as a file inside a single vault directory.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the vault directory (0700) if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: mkdir %s: %v", common.ErrStorage, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Save writes data to a temporary file in the same directory, flushes it,
// and atomically renames it over the destination. On any failure the
// temporary file is discarded and the previous blob stays untouched.
func (s *FileStore) Save(name string, data []byte) error {
	f, err := atomicfile.New(s.path(name), 0o600)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", common.ErrStorage, name, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Abort()
		return fmt.Errorf("%w: write %s: %v", common.ErrStorage, name, err)
	}
	if err := f.Sync(); err != nil {
		f.Abort()
		return fmt.Errorf("%w: sync %s: %v", common.ErrStorage, name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: commit %s: %v", common.ErrStorage, name, err)
	}
	return nil
}

// Load reads a previously saved blob. A name that was never saved yields
// ErrAbsent rather than a storage error.
func (s *FileStore) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrAbsent
		}
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrStorage, name, err)
	}
	return data, nil
}

func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}
