package handlers

import (
	"inkwell/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// cloneH 浅拷贝渲染数据。Render 会往里写 CurrentUser 等字段，
// 缓存中的条目必须保持写入时的原样，只把副本交给 Render
func cloneH(src gin.H) gin.H {
	dst := make(gin.H, len(src)+2)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// RenderError 渲染统一的错误页
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message, "Path": c.Request.URL.Path})
}
