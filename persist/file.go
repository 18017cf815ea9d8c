package persist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one file per key under a directory. Values are
// written with 0600 since the session record contains a live token.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// DefaultDir returns the per-user state directory for the SDK.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "ontrack"), nil
}

func (f *FileStore) path(key string) string {
	// Keys are well-known constants, but keep path traversal out anyway.
	return filepath.Join(f.dir, strings.ReplaceAll(key, string(os.PathSeparator), "_"))
}

// Load returns the file contents or ErrNotFound.
func (f *FileStore) Load(key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return b, err
}

// Save writes value atomically via a temp file rename.
func (f *FileStore) Save(key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Rename(name, f.path(key))
}

// Delete removes the key's file. A missing file is not an error.
func (f *FileStore) Delete(key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
