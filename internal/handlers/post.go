package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// uploadDir 文章配图的存放目录
const uploadDir = "web/uploads/posts"

type PostHandler struct {
	posts    repository.PostRepository
	groups   repository.GroupRepository
	comments repository.CommentRepository
}

func NewPostHandler(database *gorm.DB) *PostHandler {
	return &PostHandler{
		posts:    repository.NewPostRepository(database),
		groups:   repository.NewGroupRepository(database),
		comments: repository.NewCommentRepository(database),
	}
}

// saveImage 保存上传的配图，返回可访问路径。未上传时返回空串
func (h *PostHandler) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil // No file attached
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	dst := filepath.Join(uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return "/uploads/posts/" + name, nil
}

// ShowCreate 发布文章页面
func (h *PostHandler) ShowCreate(c *gin.Context) {
	groups, _ := h.groups.List(c.Request.Context())
	Render(c, http.StatusOK, "post/new.html", gin.H{
		"Title":  "New post",
		"Groups": groups,
	})
}

// Create 提交发布文章，校验失败时回显表单
func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	text := c.PostForm("text")
	groupIDStr := c.PostForm("group_id")

	if text == "" {
		groups, _ := h.groups.List(c.Request.Context())
		Render(c, http.StatusBadRequest, "post/new.html", gin.H{
			"Title":  "New post",
			"Error":  "Text is required",
			"Groups": groups,
		})
		return
	}

	// 小组可选
	var groupID *uint
	if groupIDStr != "" {
		if id, err := strconv.Atoi(groupIDStr); err == nil && id > 0 {
			gid := uint(id)
			groupID = &gid
		}
	}

	image, err := h.saveImage(c)
	if err != nil {
		groups, _ := h.groups.List(c.Request.Context())
		Render(c, http.StatusBadRequest, "post/new.html", gin.H{
			"Title":  "New post",
			"Error":  "Failed to save image",
			"Groups": groups,
			"Text":   text,
		})
		return
	}

	post := models.Post{
		UserID:  user.ID,
		GroupID: groupID,
		Text:    text,
		Image:   image,
	}

	if err := h.posts.Create(c.Request.Context(), &post); err != nil {
		groups, _ := h.groups.List(c.Request.Context())
		Render(c, http.StatusInternalServerError, "post/new.html", gin.H{
			"Title":  "New post",
			"Error":  "Failed to publish",
			"Groups": groups,
			"Text":   text,
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Detail 文章详情页：正文 + 作者统计 + 评论列表和评论表单
func (h *PostHandler) Detail(c *gin.Context) {
	post, ok := h.findPost(c)
	if !ok {
		return
	}

	h.renderDetail(c, post, http.StatusOK, "")
}

// renderDetail 渲染详情页，evalError 非空时回显评论表单错误
func (h *PostHandler) renderDetail(c *gin.Context, post *models.Post, code int, evalError string) {
	ctx := c.Request.Context()

	comments, _ := h.comments.ListByPost(ctx, post.ID)
	count, _ := h.posts.CountByAuthor(ctx, post.UserID)

	type renderedComment struct {
		models.Comment
		TextHTML template.HTML
	}
	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{Comment: com, TextHTML: utils.RenderMarkdown(com.Text)}
	}

	Render(c, code, "post/detail.html", gin.H{
		"Title":        fmt.Sprintf("Post by %s", post.User.Username),
		"Post":         post,
		"PostText":     utils.RenderMarkdown(post.Text),
		"Author":       post.User,
		"Count":        count,
		"Comments":     rendered,
		"CommentError": evalError,
	})
}

// findPost 按 ID 取文章，找不到时渲染 404 页
func (h *PostHandler) findPost(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		RenderError(c, http.StatusNotFound, "Post not found")
		return nil, false
	}

	post, err := h.posts.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Post not found")
		} else {
			RenderError(c, http.StatusInternalServerError, "Failed to load post")
		}
		return nil, false
	}
	return post, true
}

// selectedGroup 编辑表单的当前小组 ID，未选小组时为 0
func selectedGroup(post *models.Post) uint {
	if post.GroupID != nil {
		return *post.GroupID
	}
	return 0
}

// ShowEdit 编辑文章页面，非作者静默跳回详情页
func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, ok := h.findPost(c)
	if !ok {
		return
	}

	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/p/%d", post.ID))
		return
	}

	groups, _ := h.groups.List(c.Request.Context())
	Render(c, http.StatusOK, "post/edit.html", gin.H{
		"Title":         "Edit post",
		"Post":          post,
		"Groups":        groups,
		"SelectedGroup": selectedGroup(post),
		"IsEdit":        true,
	})
}

// Update 提交文章更新
func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, ok := h.findPost(c)
	if !ok {
		return
	}

	// 非作者不报错，直接回到只读的详情页
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/p/%d", post.ID))
		return
	}

	text := c.PostForm("text")
	groupIDStr := c.PostForm("group_id")

	if text == "" {
		groups, _ := h.groups.List(c.Request.Context())
		Render(c, http.StatusBadRequest, "post/edit.html", gin.H{
			"Title":         "Edit post",
			"Error":         "Text is required",
			"Post":          post,
			"Groups":        groups,
			"SelectedGroup": selectedGroup(post),
			"IsEdit":        true,
		})
		return
	}

	var groupID *uint
	if groupIDStr != "" {
		if id, err := strconv.Atoi(groupIDStr); err == nil && id > 0 {
			gid := uint(id)
			groupID = &gid
		}
	}

	if image, err := h.saveImage(c); err == nil && image != "" {
		post.Image = image
	}

	post.Text = text
	post.GroupID = groupID

	if err := h.posts.Save(c.Request.Context(), post); err != nil {
		groups, _ := h.groups.List(c.Request.Context())
		Render(c, http.StatusInternalServerError, "post/edit.html", gin.H{
			"Title":         "Edit post",
			"Error":         "Failed to save",
			"Post":          post,
			"Groups":        groups,
			"SelectedGroup": selectedGroup(post),
			"IsEdit":        true,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/p/%d", post.ID))
}

// AddComment 发表评论，空内容时回显详情页
func (h *PostHandler) AddComment(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, ok := h.findPost(c)
	if !ok {
		return
	}

	text := c.PostForm("text")
	if text == "" {
		h.renderDetail(c, post, http.StatusBadRequest, "Comment text is required")
		return
	}

	comment := models.Comment{
		PostID: &post.ID,
		UserID: &user.ID,
		Text:   text,
	}
	if err := h.comments.Create(c.Request.Context(), &comment); err != nil {
		h.renderDetail(c, post, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/p/%d", post.ID))
}
