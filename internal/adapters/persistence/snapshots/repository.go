package snapshots

import (
	"context"

	"thoth-hr/internal/core/domain"
)

// StoreKey is the fixed namespace every backend persists the snapshot under.
const StoreKey = "thoth-hr-store"

// SnapshotRepository persists the complete domain snapshot as one blob.
// The store depends on this interface only, so the durable backend can be
// swapped between file, in-memory and MySQL without touching mutation logic.
type SnapshotRepository interface {
	// Load returns the persisted snapshot. It returns
	// domain.ErrSnapshotNotFound when nothing has been persisted yet.
	Load(ctx context.Context) (domain.Snapshot, error)

	// Save replaces the persisted snapshot with the given one.
	Save(ctx context.Context, snap domain.Snapshot) error
}
