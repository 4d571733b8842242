package eletropro

import (
	"context"
	"net/http"

	"github.com/eletropro/app-core/internal/domain/models"
)

const (
	materialsPath = "/materials"
	servicesPath  = "/services"
)

// CatalogInput is the shared payload for catalog materials and services.
type CatalogInput struct {
	Name     string      `json:"name"`
	Category string      `json:"category,omitempty"`
	Price    float64     `json:"price"`
	Unit     models.Unit `json:"unit"`
}

// ListMaterials fetches catalog materials matching the filters.
func (c *Client) ListMaterials(ctx context.Context, f models.ListFilters) ([]models.Material, error) {
	var out []models.Material
	if err := c.do(ctx, "load materials", http.MethodGet, materialsPath, listQuery(f), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMaterial adds a material to the catalog.
func (c *Client) CreateMaterial(ctx context.Context, in CatalogInput) (models.Material, error) {
	var out models.Material
	if err := c.do(ctx, "create material", http.MethodPost, materialsPath, nil, in, &out); err != nil {
		return models.Material{}, err
	}
	return out, nil
}

// UpdateMaterial updates a catalog material.
func (c *Client) UpdateMaterial(ctx context.Context, id string, in CatalogInput) (models.Material, error) {
	var out models.Material
	if err := c.do(ctx, "update material", http.MethodPut, materialsPath+"/"+id, nil, in, &out); err != nil {
		return models.Material{}, err
	}
	return out, nil
}

// DeleteMaterial removes a material from the catalog.
func (c *Client) DeleteMaterial(ctx context.Context, id string) error {
	return c.do(ctx, "delete material", http.MethodDelete, materialsPath+"/"+id, nil, nil, nil)
}

// ListServices fetches catalog services matching the filters.
func (c *Client) ListServices(ctx context.Context, f models.ListFilters) ([]models.Service, error) {
	var out []models.Service
	if err := c.do(ctx, "load services", http.MethodGet, servicesPath, listQuery(f), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateService adds a service to the catalog.
func (c *Client) CreateService(ctx context.Context, in CatalogInput) (models.Service, error) {
	var out models.Service
	if err := c.do(ctx, "create service", http.MethodPost, servicesPath, nil, in, &out); err != nil {
		return models.Service{}, err
	}
	return out, nil
}

// UpdateService updates a catalog service.
func (c *Client) UpdateService(ctx context.Context, id string, in CatalogInput) (models.Service, error) {
	var out models.Service
	if err := c.do(ctx, "update service", http.MethodPut, servicesPath+"/"+id, nil, in, &out); err != nil {
		return models.Service{}, err
	}
	return out, nil
}

// DeleteService removes a service from the catalog.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, "delete service", http.MethodDelete, servicesPath+"/"+id, nil, nil, nil)
}
