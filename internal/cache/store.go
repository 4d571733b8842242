// Package cache implements the TTL key-value layer the domain services read
// through. Entries are opaque JSON payloads stamped at write time; an entry
// older than the validity window is stale but deliberately kept around, since
// a stale payload still beats an unreachable backend.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// ValidityWindow is the fixed period during which a cached entry may be served
// without consulting the backend.
const ValidityWindow = 3 * time.Minute

// Entry is one cached payload with its creation instant.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Valid reports whether the entry is still within the validity window at now.
func (e Entry) Valid(now time.Time) bool {
	return now.Sub(e.Timestamp) < ValidityWindow
}

// Store is a narrow persistent key-value contract. Implementations must treat
// an undecodable entry as absent: Get returns (nil, nil) for both a missing
// key and a corrupt payload, never an error for corruption. Remove of a
// missing key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, data any) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// Invalidate removes every key matched by the predicate. Removal of already
// absent keys is harmless, so concurrent invalidations do not conflict.
func Invalidate(ctx context.Context, s Store, match func(key string) bool) error {
	keys, err := s.Keys(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if !match(k) {
			continue
		}
		if err := s.Remove(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
