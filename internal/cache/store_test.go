package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/eletropro/app-core/internal/domain/models"
)

func TestEntryValid(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("one minute old is valid", func(t *testing.T) {
		e := Entry{Timestamp: now.Add(-time.Minute)}
		if !e.Valid(now) {
			t.Fatalf("expected valid")
		}
	})

	t.Run("four minutes old is stale", func(t *testing.T) {
		e := Entry{Timestamp: now.Add(-4 * time.Minute)}
		if e.Valid(now) {
			t.Fatalf("expected stale")
		}
	})

	t.Run("exactly at the window is stale", func(t *testing.T) {
		e := Entry{Timestamp: now.Add(-ValidityWindow)}
		if e.Valid(now) {
			t.Fatalf("expected stale at the boundary")
		}
	})
}

func TestKeys(t *testing.T) {
	f := models.ListFilters{ClientID: "c-1", Status: models.StatusPending, Search: "wiring"}
	k1 := ListKey("budgets", f)
	k2 := ListKey("budgets", f)
	if k1 != k2 {
		t.Fatalf("equal filters must derive equal keys: %q vs %q", k1, k2)
	}
	if k1 == ListKey("budgets", models.ListFilters{ClientID: "c-2"}) {
		t.Fatalf("distinct filters must not collide")
	}
	if !strings.HasPrefix(k1, ResourcePrefix("budgets")) {
		t.Fatalf("list key %q outside resource prefix", k1)
	}
	if !strings.Contains(DetailKey("budgets", "b-9"), "b-9") {
		t.Fatalf("detail key must mention the id")
	}
}

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "cache.json"))
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			before := time.Now().UTC()
			if err := s.Set(ctx, "k1", map[string]string{"name": "Rewiring"}); err != nil {
				t.Fatalf("set: %v", err)
			}
			after := time.Now().UTC()

			e, err := s.Get(ctx, "k1")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if e == nil {
				t.Fatalf("expected entry")
			}
			var payload map[string]string
			if err := json.Unmarshal(e.Data, &payload); err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			if payload["name"] != "Rewiring" {
				t.Fatalf("unexpected payload %v", payload)
			}
			if e.Timestamp.Before(before.Add(-time.Second)) || e.Timestamp.After(after.Add(time.Second)) {
				t.Fatalf("timestamp %v outside execution window (%v..%v)", e.Timestamp, before, after)
			}
			if !e.Valid(time.Now().UTC()) {
				t.Fatalf("fresh entry must be valid")
			}
		})
	}
}

func TestStoreMissAndOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			e, err := s.Get(ctx, "missing")
			if err != nil || e != nil {
				t.Fatalf("expected miss, got %v %v", e, err)
			}

			if err := s.Set(ctx, "k", "first"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, "k", "second"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			e, err = s.Get(ctx, "k")
			if err != nil || e == nil {
				t.Fatalf("get after overwrite: %v %v", e, err)
			}
			var v string
			if err := json.Unmarshal(e.Data, &v); err != nil || v != "second" {
				t.Fatalf("expected overwritten payload, got %q (%v)", v, err)
			}
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(ctx, "k", 1); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Remove(ctx, "k"); err != nil {
				t.Fatalf("first remove: %v", err)
			}
			if err := s.Remove(ctx, "k"); err != nil {
				t.Fatalf("second remove must be a no-op, got %v", err)
			}
			if e, _ := s.Get(ctx, "k"); e != nil {
				t.Fatalf("expected entry gone")
			}
		})
	}
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"eletropro:budgets:list:a", "eletropro:budgets:detail:b-1", "eletropro:clients:list:a"} {
				if err := s.Set(ctx, k, "x"); err != nil {
					t.Fatalf("set %s: %v", k, err)
				}
			}
			err := Invalidate(ctx, s, func(k string) bool {
				return strings.HasPrefix(k, ResourcePrefix("budgets"))
			})
			if err != nil {
				t.Fatalf("invalidate: %v", err)
			}

			keys, err := s.Keys(ctx)
			if err != nil {
				t.Fatalf("keys: %v", err)
			}
			sort.Strings(keys)
			if len(keys) != 1 || keys[0] != "eletropro:clients:list:a" {
				t.Fatalf("unexpected surviving keys %v", keys)
			}

			// Running the same invalidation again must be a quiet no-op.
			err = Invalidate(ctx, s, func(k string) bool {
				return strings.HasPrefix(k, ResourcePrefix("budgets"))
			})
			if err != nil {
				t.Fatalf("repeat invalidate: %v", err)
			}
		})
	}
}

func TestFileStoreCorruption(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")

	t.Run("corrupt file starts empty", func(t *testing.T) {
		if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
			t.Fatalf("seed: %v", err)
		}
		s, err := NewFileStore(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		keys, err := s.Keys(ctx)
		if err != nil || len(keys) != 0 {
			t.Fatalf("expected empty store, got %v %v", keys, err)
		}
	})

	t.Run("corrupt entry reads as absent", func(t *testing.T) {
		seed := map[string]json.RawMessage{
			"good": json.RawMessage(`{"data":"1","timestamp":"2026-03-01T12:00:00Z"}`),
			"bad":  json.RawMessage(`{"data":1,"timestamp":"not-a-time"}`),
		}
		raw, _ := json.Marshal(seed)
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			t.Fatalf("seed: %v", err)
		}
		s, err := NewFileStore(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if e, err := s.Get(ctx, "bad"); err != nil || e != nil {
			t.Fatalf("corrupt entry must read as absent, got %v %v", e, err)
		}
		if e, err := s.Get(ctx, "good"); err != nil || e == nil {
			t.Fatalf("good entry must survive, got %v %v", e, err)
		}
	})
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	e, err := reopened.Get(ctx, "k")
	if err != nil || e == nil {
		t.Fatalf("expected persisted entry, got %v %v", e, err)
	}
}
