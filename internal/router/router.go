package router

import (
	"net/http"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, database *gorm.DB) {
	// Handlers
	authHandler := handlers.NewAuthHandler(database)
	feedHandler := handlers.NewFeedHandler(database)
	postHandler := handlers.NewPostHandler(database)
	followHandler := handlers.NewFollowHandler(database)

	// 公共路由 (Public Routes)
	r.GET("/", feedHandler.Index)                // 首页 - 全站文章流
	r.GET("/group/:slug", feedHandler.GroupPosts) // 小组文章流
	r.GET("/u/:username", feedHandler.Profile)   // 作者主页
	r.GET("/p/:id", postHandler.Detail)          // 文章详情页

	r.GET("/signup", authHandler.ShowRegister) // 注册页面
	r.POST("/signup", authHandler.Register)    // 提交注册
	r.GET("/login", authHandler.ShowLogin)     // 登录页面
	r.POST("/login", authHandler.Login)        // 提交登录
	r.GET("/logout", authHandler.Logout)       // 退出登录

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/follow", feedHandler.FollowIndex) // 关注流

		authorized.GET("/new", postHandler.ShowCreate) // 发布文章页面
		authorized.POST("/new", postHandler.Create)    // 提交发布文章

		authorized.GET("/p/:id/edit", postHandler.ShowEdit)    // 编辑文章页面
		authorized.POST("/p/:id/edit", postHandler.Update)     // 提交文章更新
		authorized.POST("/p/:id/comment", postHandler.AddComment) // 发表评论

		authorized.GET("/u/:username/follow", followHandler.Follow)     // 关注作者
		authorized.GET("/u/:username/unfollow", followHandler.Unfollow) // 取消关注
	}

	// 404 页面
	r.NoRoute(func(c *gin.Context) {
		handlers.RenderError(c, http.StatusNotFound, "Page not found")
	})
}
