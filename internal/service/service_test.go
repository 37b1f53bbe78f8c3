package service

import (
	"fmt"
	"testing"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	require.NoError(t, err)
	return db
}

func newFeedService(db *gorm.DB) *FeedService {
	return NewFeedService(
		repository.NewPostRepository(db),
		repository.NewGroupRepository(db),
		repository.NewUserRepository(db),
		repository.NewFollowRepository(db),
		repository.NewCommentRepository(db),
	)
}

func newRelationshipService(db *gorm.DB) *RelationshipService {
	return NewRelationshipService(
		repository.NewUserRepository(db),
		repository.NewFollowRepository(db),
	)
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createGroup(t *testing.T, db *gorm.DB, title, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Title: title, Slug: slug, Description: "test group"}
	require.NoError(t, db.Create(group).Error)
	return group
}

// createPost 创建一篇文章，publishedAt 控制排序
func createPost(t *testing.T, db *gorm.DB, author *models.User, group *models.Group, text string, publishedAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{UserID: author.ID, Text: text, CreatedAt: publishedAt}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// seedPosts 制造 n 篇依次变新的文章
func seedPosts(t *testing.T, db *gorm.DB, author *models.User, group *models.Group, n int) {
	t.Helper()
	base := time.Now().Add(-time.Duration(n) * time.Minute)
	for i := 0; i < n; i++ {
		createPost(t, db, author, group, fmt.Sprintf("Post %d", i), base.Add(time.Duration(i)*time.Minute))
	}
}
