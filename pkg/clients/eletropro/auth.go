package eletropro

import (
	"context"
	"net/http"

	"github.com/eletropro/app-core/internal/domain/models"
)

// LoginRequest is the credential exchange payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session. It is the one call that does not
// attach a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (models.Session, error) {
	const op = "login"

	apiErr := new(apiError)
	var out models.Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(LoginRequest{Email: email, Password: password}).
		SetError(apiErr).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return models.Session{}, &RemoteError{Op: op, Message: err.Error()}
	}

	// A 401 here means bad credentials, not an expired session; do not purge.
	if resp.StatusCode() == http.StatusUnauthorized {
		return models.Session{}, ErrNotAuthenticated
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.text()
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return models.Session{}, &RemoteError{Op: op, StatusCode: resp.StatusCode(), Message: message}
	}
	return out, nil
}
