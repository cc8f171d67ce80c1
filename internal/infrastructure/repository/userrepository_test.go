package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchtix/internal/domain/user"
	"matchtix/internal/shared/errors"
)

func createTestUser(t *testing.T, username string) *user.User {
	u, err := user.NewUser(username, "hashed-password")
	require.NoError(t, err)
	return u
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("create assigns generated ID", func(t *testing.T) {
		u := createTestUser(t, "alice")

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate username yields conflict", func(t *testing.T) {
		first := createTestUser(t, "bob")
		require.NoError(t, repo.Create(ctx, first))

		second := createTestUser(t, "bob")
		err := repo.Create(ctx, second)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestUserRepository_Lookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, "alice")
	require.NoError(t, repo.Create(ctx, alice))
	bob := createTestUser(t, "bob")
	require.NoError(t, repo.Create(ctx, bob))

	t.Run("by ID", func(t *testing.T) {
		found, err := repo.GetByID(ctx, alice.ID())
		require.NoError(t, err)
		assert.Equal(t, "alice", found.Username())
	})

	t.Run("by username", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, bob.ID(), found.ID())
	})

	t.Run("by IDs", func(t *testing.T) {
		found, err := repo.GetByIDs(ctx, []uint{alice.ID(), bob.ID()})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("missing user yields not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.True(t, errors.IsNotFoundError(err))

		_, err = repo.GetByUsername(ctx, "nobody")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("exists by username", func(t *testing.T) {
		exists, err := repo.ExistsByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "alice")
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, u.ChangeFavoriteTeam("Brazil"))
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Brazil", found.FavoriteTeam())

	t.Run("missing user yields not found", func(t *testing.T) {
		ghost := createTestUser(t, "ghost")
		require.NoError(t, ghost.SetID(9999))

		err := repo.Update(ctx, ghost)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
