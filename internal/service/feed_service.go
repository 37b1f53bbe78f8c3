package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/pagination"
	"inkwell/internal/repository"
)

// Feed 一页文章及其分页信息
type Feed struct {
	Posts []models.Post
	Page  pagination.Page
}

// GroupFeed 小组页：小组信息 + 该小组的文章
type GroupFeed struct {
	Feed
	Group *models.Group
}

// ProfileFeed 作者主页：文章 + 关注统计
type ProfileFeed struct {
	Feed
	Author    *models.User
	PostCount int64
	Following bool  // 当前访客是否已关注该作者
	Followers int64 // 该作者的粉丝数
	Follows   int64 // 该作者关注的人数
	// IsOtherUser 访客不是主页主人时为 true，用于决定是否展示关注按钮
	IsOtherUser bool
}

// FeedService 组装四种文章流：全站、小组、作者主页、关注流
// 四种流共用同一个分页契约，只是过滤条件不同
type FeedService struct {
	posts    repository.PostRepository
	groups   repository.GroupRepository
	users    repository.UserRepository
	follows  repository.FollowRepository
	comments repository.CommentRepository
}

func NewFeedService(
	posts repository.PostRepository,
	groups repository.GroupRepository,
	users repository.UserRepository,
	follows repository.FollowRepository,
	comments repository.CommentRepository,
) *FeedService {
	return &FeedService{
		posts:    posts,
		groups:   groups,
		users:    users,
		follows:  follows,
		comments: comments,
	}
}

// fillCommentCounts 批量填充文章的评论数量
func (s *FeedService) fillCommentCounts(ctx context.Context, posts []models.Post) {
	if len(posts) == 0 {
		return
	}
	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}
	counts, err := s.comments.CountByPostIDs(ctx, postIDs)
	if err != nil {
		return
	}
	for i := range posts {
		posts[i].CommentCount = counts[posts[i].ID]
	}
}

// Global 全站文章流
func (s *FeedService) Global(ctx context.Context, pageParam string) (*Feed, error) {
	total, err := s.posts.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	page := pagination.Paginate(total, pageParam, pagination.PerPageIndex)

	posts, err := s.posts.ListAll(ctx, page.Offset(), page.PerPage)
	if err != nil {
		return nil, err
	}
	s.fillCommentCounts(ctx, posts)

	return &Feed{Posts: posts, Page: page}, nil
}

// Group 小组文章流，slug 未知时返回 repository.ErrNotFound
func (s *FeedService) Group(ctx context.Context, slug, pageParam string) (*GroupFeed, error) {
	group, err := s.groups.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	total, err := s.posts.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	page := pagination.Paginate(total, pageParam, pagination.PerPageIndex)

	posts, err := s.posts.ListByGroup(ctx, group.ID, page.Offset(), page.PerPage)
	if err != nil {
		return nil, err
	}
	s.fillCommentCounts(ctx, posts)

	return &GroupFeed{Feed: Feed{Posts: posts, Page: page}, Group: group}, nil
}

// Profile 作者主页。viewerID 为 0 表示未登录访客
func (s *FeedService) Profile(ctx context.Context, username, pageParam string, viewerID uint) (*ProfileFeed, error) {
	author, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := s.posts.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	page := pagination.Paginate(total, pageParam, pagination.PerPageProfile)

	posts, err := s.posts.ListByAuthor(ctx, author.ID, page.Offset(), page.PerPage)
	if err != nil {
		return nil, err
	}
	s.fillCommentCounts(ctx, posts)

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = s.follows.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	followers, err := s.follows.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	follows, err := s.follows.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &ProfileFeed{
		Feed:        Feed{Posts: posts, Page: page},
		Author:      author,
		PostCount:   total,
		Following:   following,
		Followers:   followers,
		Follows:     follows,
		IsOtherUser: viewerID != author.ID,
	}, nil
}

// Following 关注流：只含当前用户关注作者的文章，没关注任何人时为空页
func (s *FeedService) Following(ctx context.Context, viewerID uint, pageParam string) (*Feed, error) {
	total, err := s.posts.CountByFollowed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	page := pagination.Paginate(total, pageParam, pagination.PerPageFollow)

	posts, err := s.posts.ListByFollowed(ctx, viewerID, page.Offset(), page.PerPage)
	if err != nil {
		return nil, err
	}
	s.fillCommentCounts(ctx, posts)

	return &Feed{Posts: posts, Page: page}, nil
}
