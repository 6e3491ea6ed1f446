package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/auth"
	"github.com/Mahesh20s/job-portal/internal/dtos"
	"github.com/Mahesh20s/job-portal/internal/models"
	"github.com/Mahesh20s/job-portal/internal/services"
)

type AuthHandler struct {
	AccountService *services.AccountService
	Tokens         *auth.TokenManager
}

func NewAuthHandler(a *services.AccountService, tm *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		AccountService: a,
		Tokens:         tm,
	}
}

// RegisterForm is the GET /register endpoint. Already signed-in visitors go
// back to the listing.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	if _, ok := auth.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "email", "password", "password_confirm", "is_employer"},
	})
}

// Register is the POST /register endpoint: account plus profile in one
// transaction, then an immediate session.
func (h *AuthHandler) Register(c *gin.Context) {
	if _, ok := auth.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	var req dtos.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, apperr.BadRequest("Invalid form input: "+err.Error()))
		return
	}
	user, err := h.AccountService.Register(&req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.startSession(c, user); err != nil {
		abortWithError(c, err)
		return
	}
	log.Info().Uint("user_id", user.ID).Bool("is_employer", req.IsEmployer).Msg("account registered")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Welcome " + user.Username + "! Your account has been created.",
		"user":    user,
	})
}

// LoginForm is the GET /login endpoint.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if _, ok := auth.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "password"},
	})
}

// Login is the POST /login endpoint. The failure message never reveals
// whether the username exists.
func (h *AuthHandler) Login(c *gin.Context) {
	if _, ok := auth.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	var req dtos.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, apperr.BadRequest("Invalid form input: "+err.Error()))
		return
	}
	user, err := h.AccountService.Login(&req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.startSession(c, user); err != nil {
		abortWithError(c, err)
		return
	}
	log.Info().Uint("user_id", user.ID).Msg("user logged in")
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome back, " + user.Username + "!",
		"user":    user,
	})
}

// Logout is the GET /logout endpoint: drop the cookie, back to the listing.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) startSession(c *gin.Context, user *models.User) error {
	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		return err
	}
	maxAge := int(h.Tokens.TTL().Seconds())
	c.SetCookie(auth.SessionCookie, token, maxAge, "/", "", false, true)
	return nil
}
