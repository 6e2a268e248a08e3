package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/middleware"
	"storefront/models"
	"storefront/repository"
)

type AuthController struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	identity IdentityProvider
}

func NewAuthController(users repository.UserRepository, sessions repository.SessionRepository, identity IdentityProvider) *AuthController {
	return &AuthController{users: users, sessions: sessions, identity: identity}
}

// CreateSession exchanges an externally-issued session id for a local
// session token. The user record is created on first sight of the email and
// never refreshed afterwards. A provider rejection performs no writes.
func (a *AuthController) CreateSession(c *gin.Context) {
	var body struct {
		SessionID string `json:"session_id"`
	}
	// The upstream client sends the id in the query string; a JSON body
	// takes precedence when present.
	_ = c.ShouldBindJSON(&body)
	sessionID := body.SessionID
	if sessionID == "" {
		sessionID = c.Query("session_id")
	}
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	payload, err := a.identity.SessionData(ctx, sessionID)
	if errors.Is(err, ErrInvalidSession) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach identity provider"})
		return
	}

	user, err := a.users.FindByEmail(ctx, payload.Email)
	if errors.Is(err, repository.ErrNotFound) {
		user = &models.User{
			ID:        primitive.NewObjectID(),
			Email:     payload.Email,
			Name:      payload.Name,
			Picture:   payload.Picture,
			CreatedAt: time.Now(),
		}
		if err := a.users.Insert(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	session := models.Session{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(models.SessionTTL),
		CreatedAt: time.Now(),
	}
	if err := a.sessions.Insert(ctx, &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_token": session.Token, "user": user})
}

// Profile returns the authenticated user.
func (a *AuthController) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, user)
}
