package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore persists entries as a single JSON document on disk, the moral
// equivalent of the device key-value store the mobile clients use. Entries are
// kept raw in the map so one corrupt entry never poisons its neighbours.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]json.RawMessage
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens (or creates) the store at path. An unreadable or corrupt
// file starts the store empty rather than failing: cached data is always
// reconstructible from the backend.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, entries: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open cache file %s: %w", path, err)
		}
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.entries); err != nil {
		s.entries = make(map[string]json.RawMessage)
	}
	return s, nil
}

// Get returns the entry under key. A missing key or an entry that no longer
// decodes yields (nil, nil); the corrupt blob is purged on the way out.
func (s *FileStore) Get(_ context.Context, key string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		delete(s.entries, key)
		_ = s.persistLocked()
		return nil, nil
	}
	return &e, nil
}

// Set overwrites the entry under key and flushes the file.
func (s *FileStore) Set(_ context.Context, key string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal cache payload for %s: %w", key, err)
	}
	raw, err := json.Marshal(Entry{Data: payload, Timestamp: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal cache entry for %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = raw
	return s.persistLocked()
}

// Remove deletes the entry under key; removing a missing key is a no-op.
func (s *FileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.persistLocked()
}

// Keys lists every stored key.
func (s *FileStore) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *FileStore) persistLocked() error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("marshal cache file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
