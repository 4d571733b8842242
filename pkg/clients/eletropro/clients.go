package eletropro

import (
	"context"
	"net/http"

	"github.com/eletropro/app-core/internal/domain/models"
)

const clientsPath = "/clients"

// ClientInput is the payload for creating or updating a client record.
type ClientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ListClients fetches client records matching the filters.
func (c *Client) ListClients(ctx context.Context, f models.ListFilters) ([]models.Client, error) {
	var out []models.Client
	if err := c.do(ctx, "load clients", http.MethodGet, clientsPath, listQuery(f), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetClient fetches one client record.
func (c *Client) GetClient(ctx context.Context, id string) (models.Client, error) {
	var out models.Client
	if err := c.do(ctx, "load client", http.MethodGet, clientsPath+"/"+id, nil, nil, &out); err != nil {
		return models.Client{}, err
	}
	return out, nil
}

// CreateClient creates a client record.
func (c *Client) CreateClient(ctx context.Context, in ClientInput) (models.Client, error) {
	var out models.Client
	if err := c.do(ctx, "create client", http.MethodPost, clientsPath, nil, in, &out); err != nil {
		return models.Client{}, err
	}
	return out, nil
}

// UpdateClient updates a client record.
func (c *Client) UpdateClient(ctx context.Context, id string, in ClientInput) (models.Client, error) {
	var out models.Client
	if err := c.do(ctx, "update client", http.MethodPut, clientsPath+"/"+id, nil, in, &out); err != nil {
		return models.Client{}, err
	}
	return out, nil
}

// DeleteClient deletes a client record.
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, "delete client", http.MethodDelete, clientsPath+"/"+id, nil, nil, nil)
}
