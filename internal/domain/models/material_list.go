package models

import "time"

// MaterialList is a parts quote, optionally derived from a budget.
type MaterialList struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	ClientID   string             `json:"clientId"`
	BudgetID   string             `json:"budgetId,omitempty"`
	Status     Status             `json:"status"`
	Items      []MaterialListItem `json:"items"`
	TotalValue float64            `json:"totalValue"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// MaterialListItem is a line of a material list.
type MaterialListItem struct {
	ID         string  `json:"id"`
	MaterialID string  `json:"materialId"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Unit       Unit    `json:"unit,omitempty"`
	TotalPrice float64 `json:"totalPrice"`
}
