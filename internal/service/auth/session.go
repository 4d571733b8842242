package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eletropro/app-core/internal/cache"
	"github.com/eletropro/app-core/internal/domain/models"
)

// Session keys live under the shared namespace but outside any resource
// prefix, so write-through invalidation sweeps never touch them.
const (
	tokenKey   = cache.Namespace + ":auth:token"
	expiryKey  = cache.Namespace + ":auth:token_expires_at"
	profileKey = cache.Namespace + ":auth:profile"
)

// SessionStore persists the bearer token, its expiration instant and the
// denormalized profile snapshot in the local key-value store. It implements
// the API client's TokenSource.
type SessionStore struct {
	store cache.Store
	now   func() time.Time
}

// NewSessionStore wraps the given store.
func NewSessionStore(store cache.Store) *SessionStore {
	return &SessionStore{store: store, now: time.Now}
}

// Token returns the stored bearer token, or "" when none is stored or the
// stored one has already expired. An expired token is purged on read.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	entry, err := s.store.Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	if entry == nil {
		return "", nil
	}
	var token string
	if err := json.Unmarshal(entry.Data, &token); err != nil || token == "" {
		return "", nil
	}

	if expiry, ok := s.expiresAt(ctx); ok && !expiry.After(s.now()) {
		if err := s.Clear(ctx); err != nil {
			return "", err
		}
		return "", nil
	}
	return token, nil
}

// Save persists a fresh session. A write failure midway leaves no partial
// session behind: a stored token without its expiry would never be treated
// as expired.
func (s *SessionStore) Save(ctx context.Context, session models.Session) error {
	if err := s.store.Set(ctx, tokenKey, session.Token); err != nil {
		return err
	}
	if err := s.store.Set(ctx, expiryKey, session.ExpiresAt); err != nil {
		_ = s.Clear(ctx)
		return err
	}
	if err := s.store.Set(ctx, profileKey, session.User); err != nil {
		_ = s.Clear(ctx)
		return err
	}
	return nil
}

// Clear purges the whole session: token, expiry and profile snapshot.
func (s *SessionStore) Clear(ctx context.Context) error {
	for _, key := range []string{tokenKey, expiryKey, profileKey} {
		if err := s.store.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// Profile returns the stored profile snapshot, or nil when none is stored.
// The snapshot survives token expiry so it stays renderable offline.
func (s *SessionStore) Profile(ctx context.Context) (*models.UserProfile, error) {
	entry, err := s.store.Get(ctx, profileKey)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	var profile models.UserProfile
	if err := json.Unmarshal(entry.Data, &profile); err != nil {
		return nil, nil
	}
	return &profile, nil
}

func (s *SessionStore) expiresAt(ctx context.Context) (time.Time, bool) {
	entry, err := s.store.Get(ctx, expiryKey)
	if err != nil || entry == nil {
		return time.Time{}, false
	}
	var expiry time.Time
	if err := json.Unmarshal(entry.Data, &expiry); err != nil || expiry.IsZero() {
		return time.Time{}, false
	}
	return expiry, true
}
