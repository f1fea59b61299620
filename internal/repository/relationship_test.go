package repository

import (
	"context"
	"testing"

	"murmur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationshipRepository_FollowUnfollow(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

	following, err = repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The inverse direction is a separate edge.
	following, err = repo.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))

	following, err = repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestRelationshipRepository_FollowIsIdempotent(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

	var count int64
	db.Model(&models.Relationship{}).
		Where("follower_id = ? AND followed_id = ?", alice.ID, bob.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRelationshipRepository_UnfollowMissingEdgeIsNoop(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewRelationshipRepository(db)

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	assert.NoError(t, repo.Unfollow(context.Background(), alice.ID, bob.ID))
}

func TestRelationshipRepository_FollowedUsersAndFollowers(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	carol := createTestUser(t, db, "Carol", "carol@example.com")

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Follow(ctx, alice.ID, carol.ID))
	require.NoError(t, repo.Follow(ctx, carol.ID, bob.ID))

	followed, err := repo.FollowedUsers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, followed, 2)
	assert.Equal(t, bob.ID, followed[0].ID)
	assert.Equal(t, carol.ID, followed[1].ID)

	followers, err := repo.Followers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, alice.ID, followers[0].ID)
	assert.Equal(t, carol.ID, followers[1].ID)

	nFollowing, err := repo.CountFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, nFollowing)

	nFollowers, err := repo.CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, nFollowers)
}
