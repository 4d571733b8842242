// Package eletropro is the HTTP client for the EletroPro backend. It owns the
// request/response contract only: bearer-token injection, error classification
// and payload decoding. Caching, validation and orchestration live in the
// domain services.
package eletropro

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	// ErrNotAuthenticated is returned when no token is stored locally.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired is returned on a 401; the local session is purged
	// before it surfaces.
	ErrSessionExpired = errors.New("session expired")
	// ErrNotFound is returned on a 404.
	ErrNotFound = errors.New("not found")
)

// RemoteError wraps any other non-2xx response or transport failure. The Op
// prefix identifies the failed operation and Message carries whatever the
// backend said.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
}

// TokenSource supplies the bearer token for every request and purges the
// session when the backend rejects it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Config holds the client options.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the EletroPro backend API.
type Client struct {
	http   *resty.Client
	tokens TokenSource
	logger *zap.Logger
}

// NewClient builds a backend client. No retry policy is installed: a failed
// call fails once and reports to the caller.
func NewClient(cfg Config, tokens TokenSource, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{http: restyClient, tokens: tokens, logger: logger}
}

// apiError is the backend's error payload.
type apiError struct {
	Message string `json:"message"`
	Reason  string `json:"error"`
}

func (e apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Reason
}

// do runs one authenticated JSON request. out may be nil for calls whose
// response body is irrelevant.
func (c *Client) do(ctx context.Context, op, method, path string, query map[string]string, body, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if token == "" {
		return ErrNotAuthenticated
	}

	apiErr := new(apiError)
	req := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(apiErr)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	return c.classify(ctx, op, resp, err, apiErr)
}

func (c *Client) classify(ctx context.Context, op string, resp *resty.Response, err error, apiErr *apiError) error {
	if err != nil {
		return &RemoteError{Op: op, Message: err.Error()}
	}

	code := resp.StatusCode()
	switch {
	case code < http.StatusBadRequest:
		return nil
	case code == http.StatusUnauthorized:
		if clearErr := c.tokens.Clear(ctx); clearErr != nil {
			c.logger.Warn("failed to purge session after 401", zap.Error(clearErr))
		}
		return ErrSessionExpired
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	default:
		message := apiErr.text()
		if message == "" {
			message = strings.TrimSpace(resp.String())
		}
		if message == "" {
			message = http.StatusText(code)
		}
		c.logger.Warn("backend call failed",
			zap.String("op", op),
			zap.Int("status", code))
		return &RemoteError{Op: op, StatusCode: code, Message: message}
	}
}
