package service

import (
	"context"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	relations := newRelationshipService(db)
	ctx := context.Background()

	fan := createUser(t, db, "fan")
	createUser(t, db, "author")

	// 连续关注两次，只留下一条记录，也不报错
	_, err := relations.Follow(ctx, fan.ID, "author")
	require.NoError(t, err)
	_, err = relations.Follow(ctx, fan.ID, "author")
	require.NoError(t, err)

	var cnt int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestUnfollowAbsentIsNoop(t *testing.T) {
	db := setupTestDB(t)
	relations := newRelationshipService(db)
	ctx := context.Background()

	fan := createUser(t, db, "fan")
	createUser(t, db, "author")

	// 没关注过也能取消关注，不报错不改表
	_, err := relations.Unfollow(ctx, fan.ID, "author")
	require.NoError(t, err)

	var cnt int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&cnt).Error)
	assert.Equal(t, int64(0), cnt)
}

func TestFollowThenUnfollow(t *testing.T) {
	db := setupTestDB(t)
	relations := newRelationshipService(db)
	ctx := context.Background()

	fan := createUser(t, db, "fan")
	author := createUser(t, db, "author")

	_, err := relations.Follow(ctx, fan.ID, "author")
	require.NoError(t, err)

	following, err := relations.IsFollowing(ctx, fan.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, following)

	_, err = relations.Unfollow(ctx, fan.ID, "author")
	require.NoError(t, err)

	following, err = relations.IsFollowing(ctx, fan.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestSelfFollowIsNoop(t *testing.T) {
	db := setupTestDB(t)
	relations := newRelationshipService(db)
	ctx := context.Background()

	user := createUser(t, db, "narcissus")

	_, err := relations.Follow(ctx, user.ID, "narcissus")
	require.NoError(t, err)

	var cnt int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&cnt).Error)
	assert.Equal(t, int64(0), cnt)
}

func TestFollowUnknownAuthor(t *testing.T) {
	db := setupTestDB(t)
	relations := newRelationshipService(db)
	ctx := context.Background()

	fan := createUser(t, db, "fan")

	_, err := relations.Follow(ctx, fan.ID, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = relations.Unfollow(ctx, fan.ID, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFollowerCountIsolation(t *testing.T) {
	db := setupTestDB(t)
	relations := newRelationshipService(db)
	ctx := context.Background()

	fan := createUser(t, db, "fan")
	followed := createUser(t, db, "followed")
	bystander := createUser(t, db, "bystander")

	_, err := relations.Follow(ctx, fan.ID, "followed")
	require.NoError(t, err)

	// 只有被关注者的粉丝数变化
	cnt, err := relations.FollowerCount(ctx, followed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)

	cnt, err = relations.FollowerCount(ctx, bystander.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)

	cnt, err = relations.FollowingCount(ctx, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func TestIsFollowingAnonymous(t *testing.T) {
	db := setupTestDB(t)
	relations := newRelationshipService(db)

	author := createUser(t, db, "author")

	// viewerID 为 0 表示未登录，恒为 false
	following, err := relations.IsFollowing(context.Background(), 0, author.ID)
	require.NoError(t, err)
	assert.False(t, following)
}
