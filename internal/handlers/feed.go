package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// indexCacheTTL 首页缓存时长。新发布的文章在窗口内不会出现在首页，
// 属于刻意的取舍：最热的页面优先保证可用性
const indexCacheTTL = 20 * time.Second

type FeedHandler struct {
	feeds *service.FeedService
}

func NewFeedHandler(database *gorm.DB) *FeedHandler {
	return &FeedHandler{
		feeds: service.NewFeedService(
			repository.NewPostRepository(database),
			repository.NewGroupRepository(database),
			repository.NewUserRepository(database),
			repository.NewFollowRepository(database),
			repository.NewCommentRepository(database),
		),
	}
}

// Index 首页 - 全站文章流，渲染数据按页缓存
// 缓存的是与访客无关的数据，条目写入后不再改动，渲染只用它的副本
func (h *FeedHandler) Index(c *gin.Context) {
	// 缓存键按解析后的页码，"", "0", "abc" 都落到第 1 页的条目上
	page := 1
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		page = n
	}

	cacheKey := fmt.Sprintf("feed:index:page:%d", page)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			Render(c, http.StatusOK, "feed/index.html", cloneH(hData))
			return
		}
	}

	feed, err := h.feeds.Global(c.Request.Context(), strconv.Itoa(page))
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load feed")
		return
	}

	renderData := gin.H{
		"Title": "Latest posts",
		"Posts": feed.Posts,
		"Page":  feed.Page,
	}

	utils.GetCache().Set(cacheKey, renderData, indexCacheTTL)

	Render(c, http.StatusOK, "feed/index.html", cloneH(renderData))
}

// GroupPosts 小组页 - 某个小组下的文章流
func (h *FeedHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")

	feed, err := h.feeds.Group(c.Request.Context(), slug, c.Query("page"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Group not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to load feed")
		return
	}

	Render(c, http.StatusOK, "feed/group.html", gin.H{
		"Title":       feed.Group.Title,
		"Group":       feed.Group,
		"Description": feed.Group.Description,
		"Posts":       feed.Posts,
		"Page":        feed.Page,
	})
}

// Profile 作者主页 - 该作者的文章 + 关注统计
func (h *FeedHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	viewerID := middleware.CurrentUserID(c)

	feed, err := h.feeds.Profile(c.Request.Context(), username, c.Query("page"), viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "User not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	Render(c, http.StatusOK, "feed/profile.html", gin.H{
		"Title":       feed.Author.Username,
		"Author":      feed.Author,
		"Posts":       feed.Posts,
		"Page":        feed.Page,
		"Count":       feed.PostCount,
		"Following":   feed.Following,
		"Followers":   feed.Followers,
		"Follows":     feed.Follows,
		"IsOtherUser": feed.IsOtherUser,
	})
}

// FollowIndex 关注流 - 已关注作者的文章，没关注任何人时为空列表
func (h *FeedHandler) FollowIndex(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)

	feed, err := h.feeds.Following(c.Request.Context(), viewerID, c.Query("page"))
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load feed")
		return
	}

	Render(c, http.StatusOK, "feed/follow.html", gin.H{
		"Title": "Favorite authors",
		"Posts": feed.Posts,
		"Page":  feed.Page,
	})
}
