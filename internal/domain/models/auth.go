package models

import "time"

// UserProfile is the denormalized snapshot of the authenticated professional,
// persisted locally so the clients can render it while offline.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Session is the result of a successful login exchange.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserProfile `json:"user"`
}
