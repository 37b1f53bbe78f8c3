package service

import (
	"context"
	"testing"

	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFeedPagination(t *testing.T) {
	db := setupTestDB(t)
	feeds := newFeedService(db)
	ctx := context.Background()

	author := createUser(t, db, "writer")
	seedPosts(t, db, author, nil, 13)

	// 13 篇文章，每页 10 篇：第一页 10 篇
	feed, err := feeds.Global(ctx, "")
	require.NoError(t, err)
	assert.Len(t, feed.Posts, 10)
	assert.Equal(t, int64(13), feed.Page.Total)
	assert.True(t, feed.Page.HasNext)

	// 第二页剩 3 篇
	feed, err = feeds.Global(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, feed.Posts, 3)
	assert.False(t, feed.Page.HasNext)

	// 超出末页的页码一律按末页处理
	feed, err = feeds.Global(ctx, "99")
	require.NoError(t, err)
	assert.Len(t, feed.Posts, 3)
	assert.Equal(t, 2, feed.Page.Number)
}

func TestGlobalFeedNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	feeds := newFeedService(db)
	ctx := context.Background()

	author := createUser(t, db, "writer")
	seedPosts(t, db, author, nil, 5)

	feed, err := feeds.Global(ctx, "")
	require.NoError(t, err)
	require.Len(t, feed.Posts, 5)

	// 发布时间严格不增
	for i := 1; i < len(feed.Posts); i++ {
		assert.False(t, feed.Posts[i].CreatedAt.After(feed.Posts[i-1].CreatedAt),
			"posts out of order at index %d", i)
	}
	assert.Equal(t, "Post 4", feed.Posts[0].Text)
}

func TestGroupFeedIsolation(t *testing.T) {
	db := setupTestDB(t)
	feeds := newFeedService(db)
	ctx := context.Background()

	author := createUser(t, db, "writer")
	g1 := createGroup(t, db, "Group one", "g1")
	createGroup(t, db, "Group two", "g2")
	seedPosts(t, db, author, g1, 1)

	// 文章只出现在所属小组
	feed1, err := feeds.Group(ctx, "g1", "")
	require.NoError(t, err)
	require.Len(t, feed1.Posts, 1)
	assert.Equal(t, "Post 0", feed1.Posts[0].Text)

	feed2, err := feeds.Group(ctx, "g2", "")
	require.NoError(t, err)
	assert.Empty(t, feed2.Posts)

	// 全站流里也排在最前
	global, err := feeds.Global(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, global.Posts)
	assert.Equal(t, "Post 0", global.Posts[0].Text)
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	db := setupTestDB(t)
	feeds := newFeedService(db)

	_, err := feeds.Group(context.Background(), "nope", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileFeedStats(t *testing.T) {
	db := setupTestDB(t)
	feeds := newFeedService(db)
	relations := newRelationshipService(db)
	ctx := context.Background()

	author := createUser(t, db, "author")
	fan := createUser(t, db, "fan")
	seedPosts(t, db, author, nil, 3)

	_, err := relations.Follow(ctx, fan.ID, "author")
	require.NoError(t, err)

	// 粉丝视角：已关注，能看到关注按钮
	profile, err := feeds.Profile(ctx, "author", "", fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), profile.PostCount)
	assert.True(t, profile.Following)
	assert.Equal(t, int64(1), profile.Followers)
	assert.Equal(t, int64(0), profile.Follows)
	assert.True(t, profile.IsOtherUser)

	// 未登录访客视角：Following 恒为 false
	profile, err = feeds.Profile(ctx, "author", "", 0)
	require.NoError(t, err)
	assert.False(t, profile.Following)
	assert.True(t, profile.IsOtherUser)

	// 作者本人视角：不展示关注按钮
	profile, err = feeds.Profile(ctx, "author", "", author.ID)
	require.NoError(t, err)
	assert.False(t, profile.Following)
	assert.False(t, profile.IsOtherUser)
}

func TestProfileFeedUsesElevenPerPage(t *testing.T) {
	db := setupTestDB(t)
	feeds := newFeedService(db)
	ctx := context.Background()

	author := createUser(t, db, "prolific")
	seedPosts(t, db, author, nil, 12)

	// 主页每页 11 篇
	profile, err := feeds.Profile(ctx, "prolific", "", 0)
	require.NoError(t, err)
	assert.Len(t, profile.Posts, 11)
	assert.True(t, profile.Page.HasNext)
}

func TestProfileFeedUnknownUsername(t *testing.T) {
	db := setupTestDB(t)
	feeds := newFeedService(db)

	_, err := feeds.Profile(context.Background(), "ghost", "", 0)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFollowingFeed(t *testing.T) {
	db := setupTestDB(t)
	feeds := newFeedService(db)
	relations := newRelationshipService(db)
	ctx := context.Background()

	reader := createUser(t, db, "reader")
	followed := createUser(t, db, "followed")
	other := createUser(t, db, "other")
	seedPosts(t, db, followed, nil, 2)
	seedPosts(t, db, other, nil, 2)

	// 没关注任何人时关注流为空，不是错误
	feed, err := feeds.Following(ctx, reader.ID, "")
	require.NoError(t, err)
	assert.Empty(t, feed.Posts)

	_, err = relations.Follow(ctx, reader.ID, "followed")
	require.NoError(t, err)

	// 只包含被关注作者的文章
	feed, err = feeds.Following(ctx, reader.ID, "")
	require.NoError(t, err)
	require.Len(t, feed.Posts, 2)
	for _, post := range feed.Posts {
		assert.Equal(t, followed.ID, post.UserID)
	}
}
