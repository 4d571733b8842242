// Package clientbook manages the professional's client registry.
package clientbook

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eletropro/app-core/internal/cache"
	"github.com/eletropro/app-core/internal/domain/models"
	"github.com/eletropro/app-core/internal/domain/validation"
	"github.com/eletropro/app-core/pkg/clients/eletropro"
)

const resource = "clients"

// API is the slice of the backend client this service needs.
type API interface {
	ListClients(ctx context.Context, f models.ListFilters) ([]models.Client, error)
	GetClient(ctx context.Context, id string) (models.Client, error)
	CreateClient(ctx context.Context, in eletropro.ClientInput) (models.Client, error)
	UpdateClient(ctx context.Context, id string, in eletropro.ClientInput) (models.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// Service exposes the client registry.
type Service struct {
	api    API
	cache  cache.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a client registry service.
func NewService(api API, store cache.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, cache: store, logger: logger, now: time.Now}
}

// List returns clients matching the filters, read-through with stale fallback.
func (s *Service) List(ctx context.Context, f models.ListFilters) ([]models.Client, error) {
	key := cache.ListKey(resource, f)

	var cached []models.Client
	if s.readCache(ctx, key, true, &cached) {
		return cached, nil
	}

	clients, err := s.api.ListClients(ctx, f)
	if err != nil {
		if remoteFailure(err) && s.readCache(ctx, key, false, &cached) {
			s.logger.Warn("serving stale clients after remote failure", zap.Error(err))
			return cached, nil
		}
		return nil, err
	}
	s.writeCache(ctx, key, clients)
	return clients, nil
}

// Get returns one client record, read-through like List.
func (s *Service) Get(ctx context.Context, id string) (models.Client, error) {
	key := cache.DetailKey(resource, id)

	var cached models.Client
	if s.readCache(ctx, key, true, &cached) {
		return cached, nil
	}

	c, err := s.api.GetClient(ctx, id)
	if err != nil {
		if remoteFailure(err) && s.readCache(ctx, key, false, &cached) {
			s.logger.Warn("serving stale client after remote failure", zap.String("client_id", id), zap.Error(err))
			return cached, nil
		}
		return models.Client{}, err
	}

	s.writeCache(ctx, key, c)
	return c, nil
}

// Create validates and creates a client record.
func (s *Service) Create(ctx context.Context, in eletropro.ClientInput) (models.Client, error) {
	if err := validation.Client(models.Client{Name: in.Name}).Err(); err != nil {
		return models.Client{}, err
	}
	created, err := s.api.CreateClient(ctx, in)
	if err != nil {
		return models.Client{}, err
	}
	s.invalidate(ctx, "")
	return created, nil
}

// Update validates and updates a client record.
func (s *Service) Update(ctx context.Context, id string, in eletropro.ClientInput) (models.Client, error) {
	if err := validation.Client(models.Client{Name: in.Name}).Err(); err != nil {
		return models.Client{}, err
	}
	updated, err := s.api.UpdateClient(ctx, id, in)
	if err != nil {
		return models.Client{}, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// Delete removes a client record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, id string) {
	prefix := cache.ResourcePrefix(resource)
	err := cache.Invalidate(ctx, s.cache, func(key string) bool {
		if !strings.HasPrefix(key, prefix) {
			return false
		}
		if strings.Contains(key, ":list:") {
			return true
		}
		return id != "" && strings.Contains(key, id)
	})
	if err != nil {
		s.logger.Warn("client cache invalidation failed", zap.Error(err))
	}
}

func (s *Service) readCache(ctx context.Context, key string, requireValid bool, out any) bool {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if entry == nil {
		return false
	}
	if requireValid && !entry.Valid(s.now()) {
		return false
	}
	if err := json.Unmarshal(entry.Data, out); err != nil {
		_ = s.cache.Remove(ctx, key)
		return false
	}
	return true
}

func (s *Service) writeCache(ctx context.Context, key string, data any) {
	if err := s.cache.Set(ctx, key, data); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func remoteFailure(err error) bool {
	var re *eletropro.RemoteError
	return errors.As(err, &re)
}
