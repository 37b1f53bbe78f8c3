package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	users repository.UserRepository
}

func NewAuthHandler(database *gorm.DB) *AuthHandler {
	return &AuthHandler{users: repository.NewUserRepository(database)}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

// Register 注册表单：姓名、用户名、邮箱、两次密码
func (h *AuthHandler) Register(c *gin.Context) {
	firstName := c.PostForm("first_name")
	lastName := c.PostForm("last_name")
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	password2 := c.PostForm("password2")

	form := gin.H{
		"FirstName": firstName,
		"LastName":  lastName,
		"Username":  username,
		"Email":     email,
	}

	if username == "" || email == "" {
		form["Error"] = "Username and email are required"
		Render(c, http.StatusBadRequest, "auth/register.html", form)
		return
	}
	if len(password) < 6 {
		form["Error"] = "Password must be at least 6 characters"
		Render(c, http.StatusBadRequest, "auth/register.html", form)
		return
	}
	if password != password2 {
		form["Error"] = "Passwords do not match"
		Render(c, http.StatusBadRequest, "auth/register.html", form)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		form["Error"] = "Internal error"
		Render(c, http.StatusInternalServerError, "auth/register.html", form)
		return
	}

	user := models.User{
		Username:  username,
		Email:     email,
		Password:  hash,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		// 用户名或邮箱的唯一索引冲突
		form["Error"] = "Username or email already taken"
		Render(c, http.StatusConflict, "auth/register.html", form)
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Next": c.Query("next")})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	next := c.PostForm("next")

	user, err := h.users.FindByUsername(c.Request.Context(), username)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Error":    "Invalid username or password",
			"Username": username,
			"Next":     next,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	// 只回跳站内地址
	if target, err := url.QueryUnescape(next); err == nil && strings.HasPrefix(target, "/") {
		c.Redirect(http.StatusFound, target)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
