package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/repository"
)

// SessionHeader carries the minted session token on user-scoped requests.
const SessionHeader = "X-Session-ID"

const userKey = "currentUser"

// Auth resolves the session token into a user and stores it on the context.
// Expired sessions are rejected on use but never deleted; a session whose
// user has since been removed is also a 401.
func Auth(sessions repository.SessionRepository, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session ID required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		session, err := sessions.FindByToken(ctx, token)
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}

		if time.Now().After(session.ExpiresAt) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		user, err := users.FindByID(ctx, session.UserID)
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			return
		}

		c.Set(userKey, *user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Auth. Only valid on routes behind
// the middleware.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}
