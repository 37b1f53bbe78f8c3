package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// RelationshipService 维护关注关系
// Follow/Unfollow 都是幂等的：重复调用不报错，结果与调用一次相同
type RelationshipService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
}

func NewRelationshipService(users repository.UserRepository, follows repository.FollowRepository) *RelationshipService {
	return &RelationshipService{users: users, follows: follows}
}

// Follow viewer 关注 username。目标不存在返回 ErrNotFound
// 关注自己或已关注时什么也不做
func (s *RelationshipService) Follow(ctx context.Context, viewerID uint, username string) (*models.User, error) {
	author, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if viewerID == author.ID {
		return author, nil
	}
	exists, err := s.follows.Exists(ctx, viewerID, author.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return author, nil
	}
	if err := s.follows.Create(ctx, viewerID, author.ID); err != nil {
		return nil, err
	}
	return author, nil
}

// Unfollow 取消关注。目标不存在返回 ErrNotFound，未关注时为无操作
func (s *RelationshipService) Unfollow(ctx context.Context, viewerID uint, username string) (*models.User, error) {
	author, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.follows.Delete(ctx, viewerID, author.ID); err != nil {
		return nil, err
	}
	return author, nil
}

// IsFollowing 未登录访客（viewerID 为 0）恒为 false
func (s *RelationshipService) IsFollowing(ctx context.Context, viewerID, authorID uint) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}
	return s.follows.Exists(ctx, viewerID, authorID)
}

func (s *RelationshipService) FollowerCount(ctx context.Context, authorID uint) (int64, error) {
	return s.follows.CountFollowers(ctx, authorID)
}

func (s *RelationshipService) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.follows.CountFollowing(ctx, userID)
}
