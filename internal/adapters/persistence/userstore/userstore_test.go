package userstore

import (
	"context"
	"testing"

	"thoth-hr/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetByEmail(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	// Lookup is case-insensitive
	got, err = repo.GetByEmail(ctx, "ALICE@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestGetByEmailMissing(t *testing.T) {
	repo := NewFileRepository(t.TempDir())

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u1", Email: "alice@example.com"}))

	err := repo.Create(ctx, &domain.User{ID: "u2", Email: "Alice@Example.com"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "the duplicate must not leave a second record behind")
}

func TestListSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := NewFileRepository(dir)
	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u1", Email: "alice@example.com"}))

	reopened := NewFileRepository(dir)
	users, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
}

func TestExistsByEmail(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u1", Email: "alice@example.com"}))

	exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
