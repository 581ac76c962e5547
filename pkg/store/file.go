package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/invoizy/invoizy/pkg/logger"
)

// FileStore keeps the snapshot as a single JSON file named after the
// versioned storage key. Bumping the key version orphans the old file,
// which is the migration signal: an incompatible snapshot is discarded
// wholesale, never partially applied. There is exactly one writer per
// session, so last write wins without locking.
type FileStore struct {
	path string
	log  *logger.Logger
}

func NewFileStore(dir, key string, log *logger.Logger) *FileStore {
	return &FileStore{path: filepath.Join(dir, key+".json"), log: log}
}

// Path returns the snapshot file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load returns the stored snapshot, or nil when there is none or it
// cannot be parsed. A corrupt or foreign snapshot is dropped here and
// never surfaced to the caller.
func (f *FileStore) Load() *Snapshot {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		f.log.Warnf("discarding unreadable snapshot %s: %v", f.path, err)
		return nil
	}
	return &s
}

// Save writes the snapshot atomically via a temp file and rename, so a
// crash mid-write cannot leave a truncated snapshot behind.
func (f *FileStore) Save(s *Snapshot) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Clear removes the stored snapshot. A missing file is not an error.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
