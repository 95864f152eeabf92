package persist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// Store persists the workspace snapshot as a single versioned document.
// Load reports ok=false on a fresh install; decode errors are returned for
// the caller to log and degrade from, never to fault on.
type Store interface {
	Load() (*types.Snapshot, bool, error)
	Save(snap *types.Snapshot) error
}

// FileStore keeps the snapshot in one JSON file, written atomically via a
// temp file and rename.
type FileStore struct {
	path string
}

// NewFileStore creates a store rooted at path, creating parent directories
// lazily on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the snapshot. A missing file is a fresh install,
// not an error. Unknown fields in older or newer documents are ignored and
// missing fields zero-value.
func (s *FileStore) Load() (*types.Snapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}

	var snap types.Snapshot
	if err := sonic.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, true, nil
}

// Save encodes and atomically replaces the snapshot document.
func (s *FileStore) Save(snap *types.Snapshot) error {
	data, err := sonic.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
