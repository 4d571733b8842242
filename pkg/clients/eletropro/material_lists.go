package eletropro

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eletropro/app-core/internal/domain/models"
)

const materialListsPath = "/material-lists"

// MaterialListInput is the creation payload for a material list.
type MaterialListInput struct {
	Name     string                  `json:"name"`
	ClientID string                  `json:"clientId"`
	BudgetID string                  `json:"budgetId,omitempty"`
	Items    []MaterialListItemInput `json:"items,omitempty"`
}

// MaterialListUpdate is the partial update payload.
type MaterialListUpdate struct {
	Name     string `json:"name,omitempty"`
	ClientID string `json:"clientId,omitempty"`
	BudgetID string `json:"budgetId,omitempty"`
}

// MaterialListItemInput is the item payload for add/update calls.
type MaterialListItemInput struct {
	MaterialID string      `json:"materialId"`
	Name       string      `json:"name"`
	Quantity   float64     `json:"quantity"`
	UnitPrice  float64     `json:"unitPrice"`
	Unit       models.Unit `json:"unit,omitempty"`
}

// ListMaterialLists fetches material lists matching the filters.
func (c *Client) ListMaterialLists(ctx context.Context, f models.ListFilters) ([]models.MaterialList, error) {
	var out []models.MaterialList
	if err := c.do(ctx, "load material lists", http.MethodGet, materialListsPath, listQuery(f), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMaterialList fetches one material list with its items populated.
func (c *Client) GetMaterialList(ctx context.Context, id string) (models.MaterialList, error) {
	var out models.MaterialList
	if err := c.do(ctx, "load material list", http.MethodGet, materialListsPath+"/"+id, nil, nil, &out); err != nil {
		return models.MaterialList{}, err
	}
	return out, nil
}

// CreateMaterialList creates a material list.
func (c *Client) CreateMaterialList(ctx context.Context, in MaterialListInput) (models.MaterialList, error) {
	var out models.MaterialList
	if err := c.do(ctx, "create material list", http.MethodPost, materialListsPath, nil, in, &out); err != nil {
		return models.MaterialList{}, err
	}
	return out, nil
}

// UpdateMaterialList applies a partial update.
func (c *Client) UpdateMaterialList(ctx context.Context, id string, in MaterialListUpdate) (models.MaterialList, error) {
	var out models.MaterialList
	if err := c.do(ctx, "update material list", http.MethodPut, materialListsPath+"/"+id, nil, in, &out); err != nil {
		return models.MaterialList{}, err
	}
	return out, nil
}

// DeleteMaterialList deletes a material list and all its items.
func (c *Client) DeleteMaterialList(ctx context.Context, id string) error {
	return c.do(ctx, "delete material list", http.MethodDelete, materialListsPath+"/"+id, nil, nil, nil)
}

// UpdateMaterialListStatus transitions the material list status.
func (c *Client) UpdateMaterialListStatus(ctx context.Context, id string, status models.Status) (models.MaterialList, error) {
	var out models.MaterialList
	body := map[string]models.Status{"status": status}
	if err := c.do(ctx, "update material list status", http.MethodPatch, materialListsPath+"/"+id+"/status", nil, body, &out); err != nil {
		return models.MaterialList{}, err
	}
	return out, nil
}

// AddMaterialListItem appends an item; the backend returns the recomputed list.
func (c *Client) AddMaterialListItem(ctx context.Context, id string, in MaterialListItemInput) (models.MaterialList, error) {
	var out models.MaterialList
	if err := c.do(ctx, "add material list item", http.MethodPost, materialListsPath+"/"+id+"/items", nil, in, &out); err != nil {
		return models.MaterialList{}, err
	}
	return out, nil
}

// UpdateMaterialListItem replaces an item; the backend returns the recomputed list.
func (c *Client) UpdateMaterialListItem(ctx context.Context, id, itemID string, in MaterialListItemInput) (models.MaterialList, error) {
	var out models.MaterialList
	path := fmt.Sprintf("%s/%s/items/%s", materialListsPath, id, itemID)
	if err := c.do(ctx, "update material list item", http.MethodPut, path, nil, in, &out); err != nil {
		return models.MaterialList{}, err
	}
	return out, nil
}

// RemoveMaterialListItem deletes an item; the backend returns the recomputed list.
func (c *Client) RemoveMaterialListItem(ctx context.Context, id, itemID string) (models.MaterialList, error) {
	var out models.MaterialList
	path := fmt.Sprintf("%s/%s/items/%s", materialListsPath, id, itemID)
	if err := c.do(ctx, "remove material list item", http.MethodDelete, path, nil, nil, &out); err != nil {
		return models.MaterialList{}, err
	}
	return out, nil
}
