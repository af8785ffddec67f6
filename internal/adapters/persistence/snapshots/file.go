package snapshots

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"thoth-hr/internal/core/domain"
)

// fileRepository persists the snapshot as a JSON document on disk
type fileRepository struct {
	path string
}

// NewFileRepository creates a snapshot repository backed by a JSON file
// under dir, named after the fixed store key.
func NewFileRepository(dir string) SnapshotRepository {
	return &fileRepository{path: filepath.Join(dir, StoreKey+".json")}
}

// Load reads and decodes the snapshot file
func (r *fileRepository) Load(_ context.Context) (domain.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Snapshot{}, domain.ErrSnapshotNotFound
		}
		return domain.Snapshot{}, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

// Save encodes and writes the snapshot file
func (r *fileRepository) Save(_ context.Context, snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}
