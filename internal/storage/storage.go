package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/popularsmm/storefront/internal/models"
)

// Namespaced keys for the client-side stores. These mirror the browser
// storage keys of the hosted storefront so exported data stays portable.
const (
	KeyCartItems   = "cart.items"
	KeyFreeTests   = "free.tests"
	KeyContactSent = "contact.submissions"
)

// FileStore persists JSON documents under <dir>/<key>.json. There is one
// mutator per session, so writes need no coordination.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (models.Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %s", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save writes value as JSON, replacing any previous value under key.
func (s *FileStore) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %q: %s", key, err)
	}

	// Write through a temp file so a crashed write can't leave a
	// half-serialized document behind.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %s", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace %q: %s", key, err)
	}
	return nil
}

// Load reads the value stored under key into out. Absence and corruption
// are both errors; callers fall back to their empty default.
func (s *FileStore) Load(key string, out interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return fmt.Errorf("failed to read %q: %s", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %q: %s", key, err)
	}
	return nil
}
