package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mahesh20s/job-portal/internal/models"
)

const userKey = "currentUser"

// Authenticate resolves the session cookie to a user and stashes it on the
// context. Anonymous requests pass through untouched.
func Authenticate(tm *TokenManager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			c.Next()
			return
		}
		userID, err := tm.Parse(cookie)
		if err != nil {
			// Stale or tampered cookie: treat as anonymous.
			c.Next()
			return
		}
		var user models.User
		if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
			c.Next()
			return
		}
		c.Set(userKey, &user)
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the login page, mirroring the
// behaviour of pages that need a signed-in account.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
