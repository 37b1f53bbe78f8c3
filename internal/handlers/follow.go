package handlers

import (
	"errors"
	"net/http"

	"inkwell/internal/middleware"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FollowHandler struct {
	relations *service.RelationshipService
}

func NewFollowHandler(database *gorm.DB) *FollowHandler {
	return &FollowHandler{
		relations: service.NewRelationshipService(
			repository.NewUserRepository(database),
			repository.NewFollowRepository(database),
		),
	}
}

// Follow 关注作者后回到其主页。重复关注、关注自己都不报错
func (h *FollowHandler) Follow(c *gin.Context) {
	username := c.Param("username")
	viewerID := middleware.CurrentUserID(c)

	if _, err := h.relations.Follow(c.Request.Context(), viewerID, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "User not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to follow")
		return
	}

	c.Redirect(http.StatusFound, "/u/"+username)
}

// Unfollow 取消关注后回到作者主页。本就未关注时同样视为成功
func (h *FollowHandler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	viewerID := middleware.CurrentUserID(c)

	if _, err := h.relations.Unfollow(c.Request.Context(), viewerID, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "User not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to unfollow")
		return
	}

	c.Redirect(http.StatusFound, "/u/"+username)
}
