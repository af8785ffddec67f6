package snapshots

import (
	"context"
	"sync"

	"thoth-hr/internal/core/domain"
)

// memoryRepository keeps the snapshot in process memory. Used in tests and
// when the server runs with STORE_BACKEND=memory.
type memoryRepository struct {
	mu     sync.Mutex
	snap   domain.Snapshot
	loaded bool
}

// NewMemoryRepository creates an empty in-memory snapshot repository
func NewMemoryRepository() SnapshotRepository {
	return &memoryRepository{}
}

// Load returns the last saved snapshot
func (r *memoryRepository) Load(_ context.Context) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		return domain.Snapshot{}, domain.ErrSnapshotNotFound
	}
	return r.snap.Clone(), nil
}

// Save stores the snapshot
func (r *memoryRepository) Save(_ context.Context, snap domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snap = snap.Clone()
	r.loaded = true
	return nil
}
