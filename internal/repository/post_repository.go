package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	Save(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id uint) (*models.Post, error)

	CountAll(ctx context.Context) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]models.Post, error)

	CountByGroup(ctx context.Context, groupID uint) (int64, error)
	ListByGroup(ctx context.Context, groupID uint, offset, limit int) ([]models.Post, error)

	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Post, error)

	CountByFollowed(ctx context.Context, userID uint) (int64, error)
	ListByFollowed(ctx context.Context, userID uint, offset, limit int) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Save(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("User").Preload("Group").First(&post, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

func (r *postRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error
	return total, err
}

// ListAll 全站文章，按发布时间倒序
func (r *postRepository) ListAll(ctx context.Context, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("User").Preload("Group").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Where("group_id = ?", groupID).Count(&total).Error
	return total, err
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("User").Preload("Group").
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Where("user_id = ?", authorID).Count(&total).Error
	return total, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("User").Preload("Group").
		Where("user_id = ?", authorID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// followedAuthors 当前用户关注的作者 ID 子查询
func (r *postRepository) followedAuthors(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", userID)
}

func (r *postRepository) CountByFollowed(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("user_id IN (?)", r.followedAuthors(ctx, userID)).
		Count(&total).Error
	return total, err
}

// ListByFollowed 关注流：只取当前用户关注的作者的文章
func (r *postRepository) ListByFollowed(ctx context.Context, userID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("User").Preload("Group").
		Where("user_id IN (?)", r.followedAuthors(ctx, userID)).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}
