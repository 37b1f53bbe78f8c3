package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountByPostIDs 批量查询一组文章的评论数量
func (r *commentRepository) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int, error) {
	counts := make(map[uint]int)
	if len(postIDs) == 0 {
		return counts, nil
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		counts[res.PostID] = res.Count
	}
	return counts, nil
}
