package repository

import (
	"context"
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_CreateAndExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follower := createTestUser(t, db, "follower", "follower@test.com")
	followee := createTestUser(t, db, "followee", "followee@test.com")

	exists, err := repo.Exists(ctx, follower.ID, followee.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &models.Follow{
		FollowerID: follower.ID,
		FolloweeID: followee.ID,
	}))

	exists, err = repo.Exists(ctx, follower.ID, followee.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// Following is directional: the reverse edge does not exist.
	reverse, err := repo.Exists(ctx, followee.ID, follower.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFollowRepository_Create_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follower := createTestUser(t, db, "follower", "follower@test.com")
	followee := createTestUser(t, db, "followee", "followee@test.com")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}))

	err := repo.Create(ctx, &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID})
	require.Error(t, err)
	assert.Equal(t, models.CodeUniqueness, models.ErrorCode(err))
}

func TestFollowRepository_Create_MissingUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follower := createTestUser(t, db, "follower", "follower@test.com")

	err := repo.Create(ctx, &models.Follow{FollowerID: follower.ID, FolloweeID: 999})
	require.Error(t, err)
	assert.Equal(t, models.CodeReferential, models.ErrorCode(err))
}

func TestFollowRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follower := createTestUser(t, db, "follower", "follower@test.com")
	followee := createTestUser(t, db, "followee", "followee@test.com")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}))
	require.NoError(t, repo.Delete(ctx, follower.ID, followee.ID))

	exists, err := repo.Exists(ctx, follower.ID, followee.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting an absent edge is a no-op.
	require.NoError(t, repo.Delete(ctx, follower.ID, followee.ID))
}

func TestFollowRepository_FollowingAndFollowers(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@test.com")
	bob := createTestUser(t, db, "bob", "bob@test.com")
	carol := createTestUser(t, db, "carol", "carol@test.com")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FolloweeID: bob.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FolloweeID: carol.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: carol.ID, FolloweeID: bob.ID}))

	following, err := repo.FollowingOf(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, following, 2)

	followers, err := repo.FollowersOf(ctx, bob.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	countFollowing, err := repo.CountFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, countFollowing)

	countFollowers, err := repo.CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, countFollowers)

	countFollowersCarol, err := repo.CountFollowers(ctx, carol.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, countFollowersCarol)
}

func TestFollowRepository_CascadeOnUserDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follower := createTestUser(t, db, "follower", "follower@test.com")
	followee := createTestUser(t, db, "followee", "followee@test.com")
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}))

	require.NoError(t, db.Delete(&models.User{}, followee.ID).Error)

	exists, err := repo.Exists(ctx, follower.ID, followee.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
