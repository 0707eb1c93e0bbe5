// internal/localstore/localstore.go
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Logical keys for the two persisted slices. Everything else lives in
// memory only.
const (
	KeyAuth = "auth-storage"
	KeyUI   = "ui-storage"
)

// Store persists plain JSON snapshots under distinct logical keys, one
// file per key. Snapshots are written whole and reloaded verbatim at
// startup; there is no schema, no migration, no partial update.
type Store struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("localstore: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save serialises v and replaces the snapshot for key. The write goes via
// a temp file and rename so a crash never leaves a torn snapshot.
func (s *Store) Save(key string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: marshal %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("localstore: replace %s: %w", key, err)
	}
	return nil
}

// Load reads the snapshot for key into v. The second return is false when
// no snapshot exists, which is not an error.
func (s *Store) Load(key string, v any) (bool, error) {
	s.mu.Lock()
	b, err := os.ReadFile(s.path(key))
	s.mu.Unlock()
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("localstore: read %s: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("localstore: decode %s: %w", key, err)
	}
	return true, nil
}

// Clear removes the snapshot for key. Clearing an absent key is a no-op.
func (s *Store) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("localstore: clear %s: %w", key, err)
	}
	return nil
}
