// Package catalog manages the professional's materials and services catalogs,
// with cached list reads and write-through invalidation.
package catalog

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

const (
	materialsResource = "materials"
	servicesResource  = "services"
)

// API is the slice of the backend client this service needs.
type API interface {
	ListMaterials(ctx context.Context, f models.ListFilters) ([]models.Material, error)
	CreateMaterial(ctx context.Context, in eletropro.CatalogInput) (models.Material, error)
	UpdateMaterial(ctx context.Context, id string, in eletropro.CatalogInput) (models.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
	ListServices(ctx context.Context, f models.ListFilters) ([]models.Service, error)
	CreateService(ctx context.Context, in eletropro.CatalogInput) (models.Service, error)
	UpdateService(ctx context.Context, id string, in eletropro.CatalogInput) (models.Service, error)
	DeleteService(ctx context.Context, id string) error
}

// Service exposes the two catalogs.
type Service struct {
	api    API
	cache  cache.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a catalog service.
func NewService(api API, store cache.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, cache: store, logger: logger, now: time.Now}
}

// Materials lists catalog materials, read-through with stale fallback.
func (s *Service) Materials(ctx context.Context, f models.ListFilters) ([]models.Material, error) {
	key := cache.ListKey(materialsResource, f)

	var cached []models.Material
	if s.readCache(ctx, key, true, &cached) {
		return cached, nil
	}

	materials, err := s.api.ListMaterials(ctx, f)
	if err != nil {
		if remoteFailure(err) && s.readCache(ctx, key, false, &cached) {
			s.logger.Warn("serving stale materials after remote failure", zap.Error(err))
			return cached, nil
		}
		return nil, err
	}
	s.writeCache(ctx, key, materials)
	return materials, nil
}

// CreateMaterial validates and creates a catalog material.
func (s *Service) CreateMaterial(ctx context.Context, in eletropro.CatalogInput) (models.Material, error) {
	if err := validation.Material(materialFromInput(in)).Err(); err != nil {
		return models.Material{}, err
	}
	created, err := s.api.CreateMaterial(ctx, in)
	if err != nil {
		return models.Material{}, err
	}
	s.invalidate(ctx, materialsResource, "")
	return created, nil
}

// UpdateMaterial validates and updates a catalog material.
func (s *Service) UpdateMaterial(ctx context.Context, id string, in eletropro.CatalogInput) (models.Material, error) {
	if err := validation.Material(materialFromInput(in)).Err(); err != nil {
		return models.Material{}, err
	}
	updated, err := s.api.UpdateMaterial(ctx, id, in)
	if err != nil {
		return models.Material{}, err
	}
	s.invalidate(ctx, materialsResource, id)
	return updated, nil
}

// DeleteMaterial removes a material from the catalog.
func (s *Service) DeleteMaterial(ctx context.Context, id string) error {
	if err := s.api.DeleteMaterial(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, materialsResource, id)
	return nil
}

// Services lists catalog services, read-through with stale fallback.
func (s *Service) Services(ctx context.Context, f models.ListFilters) ([]models.Service, error) {
	key := cache.ListKey(servicesResource, f)

	var cached []models.Service
	if s.readCache(ctx, key, true, &cached) {
		return cached, nil
	}

	services, err := s.api.ListServices(ctx, f)
	if err != nil {
		if remoteFailure(err) && s.readCache(ctx, key, false, &cached) {
			s.logger.Warn("serving stale services after remote failure", zap.Error(err))
			return cached, nil
		}
		return nil, err
	}
	s.writeCache(ctx, key, services)
	return services, nil
}

// CreateService validates and creates a catalog service.
func (s *Service) CreateService(ctx context.Context, in eletropro.CatalogInput) (models.Service, error) {
	if err := validation.Service(serviceFromInput(in)).Err(); err != nil {
		return models.Service{}, err
	}
	created, err := s.api.CreateService(ctx, in)
	if err != nil {
		return models.Service{}, err
	}
	s.invalidate(ctx, servicesResource, "")
	return created, nil
}

// UpdateService validates and updates a catalog service.
func (s *Service) UpdateService(ctx context.Context, id string, in eletropro.CatalogInput) (models.Service, error) {
	if err := validation.Service(serviceFromInput(in)).Err(); err != nil {
		return models.Service{}, err
	}
	updated, err := s.api.UpdateService(ctx, id, in)
	if err != nil {
		return models.Service{}, err
	}
	s.invalidate(ctx, servicesResource, id)
	return updated, nil
}

// DeleteService removes a service from the catalog.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	if err := s.api.DeleteService(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, servicesResource, id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, resource, id string) {
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
		s.logger.Warn("catalog cache invalidation failed", zap.String("resource", resource), zap.Error(err))
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

func materialFromInput(in eletropro.CatalogInput) models.Material {
	return models.Material{Name: in.Name, Category: in.Category, Price: in.Price, Unit: in.Unit}
}

func serviceFromInput(in eletropro.CatalogInput) models.Service {
	return models.Service{Name: in.Name, Category: in.Category, Price: in.Price, Unit: in.Unit}
}

func remoteFailure(err error) bool {
	var re *eletropro.RemoteError
	return errors.As(err, &re)
}
