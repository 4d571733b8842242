package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eletropro/app-core/internal/domain/models"
	"github.com/eletropro/app-core/internal/service/auth"
)

// Authenticator is the slice of the auth service the session endpoints use.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (models.UserProfile, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (models.UserProfile, error)
}

// SessionHandler serves login, logout and the current profile.
type SessionHandler struct {
	auth   Authenticator
	logger *zap.Logger
}

// NewSessionHandler constructs the HTTP handler adapter.
func NewSessionHandler(a Authenticator, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{auth: a, logger: logger}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials and returns the profile on success.
func (h *SessionHandler) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	profile, err := h.auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrMissingCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Logout purges the local session.
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Profile returns the locally stored profile snapshot.
func (h *SessionHandler) Profile(c *gin.Context) {
	profile, err := h.auth.Profile(c.Request.Context())
	if err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, profile)
}
