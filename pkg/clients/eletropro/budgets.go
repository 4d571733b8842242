package eletropro

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eletropro/app-core/internal/domain/models"
)

const budgetsPath = "/budgets"

// BudgetInput is the creation payload: entity fields without id, timestamps
// or server-computed totals.
type BudgetInput struct {
	Name           string              `json:"name"`
	ClientID       string              `json:"clientId"`
	Discount       float64             `json:"discount,omitempty"`
	DiscountType   models.DiscountType `json:"discountType,omitempty"`
	DiscountReason string              `json:"discountReason,omitempty"`
	ValidUntil     *time.Time          `json:"validUntil,omitempty"`
	Items          []BudgetItemInput   `json:"items,omitempty"`
}

// BudgetUpdate is the partial update payload; zero fields are omitted.
type BudgetUpdate struct {
	Name       string     `json:"name,omitempty"`
	ClientID   string     `json:"clientId,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
}

// BudgetItemInput is the item payload for add/update calls. The backend
// recomputes the budget totals on every item mutation.
type BudgetItemInput struct {
	ServiceID  string      `json:"serviceId,omitempty"`
	MaterialID string      `json:"materialId,omitempty"`
	Name       string      `json:"name"`
	Quantity   float64     `json:"quantity"`
	UnitPrice  float64     `json:"unitPrice"`
	Unit       models.Unit `json:"unit,omitempty"`
}

// DiscountInput is the discount PATCH payload.
type DiscountInput struct {
	Discount       float64             `json:"discount"`
	DiscountType   models.DiscountType `json:"discountType"`
	DiscountReason string              `json:"discountReason,omitempty"`
}

func listQuery(f models.ListFilters) map[string]string {
	q := make(map[string]string)
	if f.ClientID != "" {
		q["clientId"] = f.ClientID
	}
	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	if f.Search != "" {
		q["search"] = f.Search
	}
	if f.DateFrom != "" {
		q["dateFrom"] = f.DateFrom
	}
	if f.DateTo != "" {
		q["dateTo"] = f.DateTo
	}
	if f.BudgetID != "" {
		q["budgetId"] = f.BudgetID
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	return q
}

// ListBudgets fetches budgets matching the filters.
func (c *Client) ListBudgets(ctx context.Context, f models.ListFilters) ([]models.Budget, error) {
	var out []models.Budget
	if err := c.do(ctx, "load budgets", http.MethodGet, budgetsPath, listQuery(f), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBudget fetches one budget with its items populated.
func (c *Client) GetBudget(ctx context.Context, id string) (models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, "load budget", http.MethodGet, budgetsPath+"/"+id, nil, nil, &out); err != nil {
		return models.Budget{}, err
	}
	return out, nil
}

// CreateBudget creates a budget.
func (c *Client) CreateBudget(ctx context.Context, in BudgetInput) (models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, "create budget", http.MethodPost, budgetsPath, nil, in, &out); err != nil {
		return models.Budget{}, err
	}
	return out, nil
}

// UpdateBudget applies a partial update.
func (c *Client) UpdateBudget(ctx context.Context, id string, in BudgetUpdate) (models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, "update budget", http.MethodPut, budgetsPath+"/"+id, nil, in, &out); err != nil {
		return models.Budget{}, err
	}
	return out, nil
}

// DeleteBudget deletes a budget and all its items.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.do(ctx, "delete budget", http.MethodDelete, budgetsPath+"/"+id, nil, nil, nil)
}

// UpdateBudgetStatus transitions the budget status.
func (c *Client) UpdateBudgetStatus(ctx context.Context, id string, status models.Status) (models.Budget, error) {
	var out models.Budget
	body := map[string]models.Status{"status": status}
	if err := c.do(ctx, "update budget status", http.MethodPatch, budgetsPath+"/"+id+"/status", nil, body, &out); err != nil {
		return models.Budget{}, err
	}
	return out, nil
}

// ApplyBudgetDiscount sets or replaces the budget discount.
func (c *Client) ApplyBudgetDiscount(ctx context.Context, id string, in DiscountInput) (models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, "apply discount", http.MethodPatch, budgetsPath+"/"+id+"/discount", nil, in, &out); err != nil {
		return models.Budget{}, err
	}
	return out, nil
}

// RemoveBudgetDiscount clears the budget discount.
func (c *Client) RemoveBudgetDiscount(ctx context.Context, id string) (models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, "remove discount", http.MethodDelete, budgetsPath+"/"+id+"/discount", nil, nil, &out); err != nil {
		return models.Budget{}, err
	}
	return out, nil
}

// AddBudgetItem appends an item; the backend returns the recomputed budget.
func (c *Client) AddBudgetItem(ctx context.Context, id string, in BudgetItemInput) (models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, "add budget item", http.MethodPost, budgetsPath+"/"+id+"/items", nil, in, &out); err != nil {
		return models.Budget{}, err
	}
	return out, nil
}

// UpdateBudgetItem replaces an item; the backend returns the recomputed budget.
func (c *Client) UpdateBudgetItem(ctx context.Context, id, itemID string, in BudgetItemInput) (models.Budget, error) {
	var out models.Budget
	path := fmt.Sprintf("%s/%s/items/%s", budgetsPath, id, itemID)
	if err := c.do(ctx, "update budget item", http.MethodPut, path, nil, in, &out); err != nil {
		return models.Budget{}, err
	}
	return out, nil
}

// RemoveBudgetItem deletes an item; the backend returns the recomputed budget.
func (c *Client) RemoveBudgetItem(ctx context.Context, id, itemID string) (models.Budget, error) {
	var out models.Budget
	path := fmt.Sprintf("%s/%s/items/%s", budgetsPath, id, itemID)
	if err := c.do(ctx, "remove budget item", http.MethodDelete, path, nil, nil, &out); err != nil {
		return models.Budget{}, err
	}
	return out, nil
}
