package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/stocai/blog-admin/internal/domain/contract"
)

// FileStore persists the session credential in a single file. The file
// either contains the credential or does not exist; there is no other
// state to manage.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed session store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Set persists the credential, overwriting any prior value.
func (s *FileStore) Set(credential string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(credential), 0o600)
}

// Get reads the current credential. An absent file means no session.
func (s *FileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the stored credential entirely.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

var _ contract.ISessionStore = (*FileStore)(nil)
