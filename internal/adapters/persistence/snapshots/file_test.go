package snapshots

import (
	"context"
	"testing"

	"thoth-hr/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	snap := domain.Snapshot{
		Members: []domain.Member{{ID: "m1", Name: "Alice", Email: "alice@example.com", Status: domain.MemberActive}},
		Loans:   []domain.Loan{{ID: "l1", MemberID: "m1", Amount: 500, Date: "2025-01-10", Status: domain.LoanActive}},
	}
	require.NoError(t, repo.Save(ctx, snap))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Members, got.Members)
	assert.Equal(t, snap.Loans, got.Loans)
}

func TestFileRepositoryMissingFile(t *testing.T) {
	repo := NewFileRepository(t.TempDir())

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestMemoryRepositoryEmptyUntilFirstSave(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	require.NoError(t, repo.Save(ctx, domain.Snapshot{}))
	_, err = repo.Load(ctx)
	assert.NoError(t, err, "an empty snapshot is still a persisted snapshot")
}

func TestMemoryRepositoryIsolatesStoredSnapshot(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	snap := domain.Snapshot{Members: []domain.Member{{ID: "m1", Name: "Alice"}}}
	require.NoError(t, repo.Save(ctx, snap))

	snap.Members[0].Name = "Mallory"

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Members[0].Name, "callers must not mutate the stored copy")
}

func TestSeedDataset(t *testing.T) {
	snap := Seed()

	assert.NotEmpty(t, snap.Members)
	assert.NotEmpty(t, snap.Loans)
	assert.NotEmpty(t, snap.Payrolls)

	ids := make(map[string]bool)
	for _, m := range snap.Members {
		assert.False(t, ids[m.ID], "duplicate member id %s", m.ID)
		ids[m.ID] = true
	}
}
