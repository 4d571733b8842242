// Package auth handles the login exchange and local session state. Token
// issuance and verification belong to the backend; this service only stores
// what the backend returned and purges it on logout or rejection.
package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/eletropro/app-core/internal/domain/models"
	"github.com/eletropro/app-core/pkg/clients/eletropro"
)

// ErrMissingCredentials is returned before any remote call when either field
// is blank.
var ErrMissingCredentials = errors.New("email and password are required")

// API is the slice of the backend client this service needs.
type API interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
}

// Service orchestrates login, logout and profile reads.
type Service struct {
	api      API
	sessions *SessionStore
	logger   *zap.Logger
}

// NewService wires an auth service.
func NewService(api API, sessions *SessionStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, sessions: sessions, logger: logger}
}

// Login exchanges credentials and persists the resulting session locally.
func (s *Service) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.UserProfile{}, ErrMissingCredentials
	}

	session, err := s.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return models.UserProfile{}, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return models.UserProfile{}, err
	}
	s.logger.Info("session established", zap.String("user_id", session.User.ID))
	return session.User, nil
}

// Logout purges the local session. It is a no-op when not logged in.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Profile returns the locally stored profile snapshot, usable offline.
func (s *Service) Profile(ctx context.Context) (models.UserProfile, error) {
	profile, err := s.sessions.Profile(ctx)
	if err != nil {
		return models.UserProfile{}, err
	}
	if profile == nil {
		return models.UserProfile{}, eletropro.ErrNotAuthenticated
	}
	return *profile, nil
}

// IsAuthenticated reports whether a non-expired token is stored.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	token, err := s.sessions.Token(ctx)
	return err == nil && token != ""
}
