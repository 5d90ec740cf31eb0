// Package store provides SessionStore implementations: a file-backed store
// for real use and an in-memory store for tests and embedders.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// FileStore persists the session as a single JSON file, mode 0600.
// There is no cross-process locking: concurrent writers are last-write-wins,
// which is acceptable for single-user client state.
type FileStore struct {
	path string
}

// NewFileStore creates a store at path. An empty path places the file under
// the user config dir (adoptctl/session.json).
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("store: resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "adoptctl", "session.json")
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the session is persisted to.
func (s *FileStore) Path() string { return s.path }

// Load reads the persisted session. A missing file means no session and is
// not an error.
func (s *FileStore) Load() (*domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("store: corrupt session file %s: %w", s.path, err)
	}
	return &sess, nil
}

// Save writes the session, creating the parent directory on first use.
// Saving a nil session is equivalent to Clear.
func (s *FileStore) Save(sess *domain.Session) error {
	if sess == nil {
		return s.Clear()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("store: create session dir: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("store: write session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an already-empty store
// succeeds.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: clear session: %w", err)
	}
	return nil
}
