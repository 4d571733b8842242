package models

import "time"

// Status is the shared lifecycle enum for budgets and material lists.
//
// PENDING is the only state the clients ever create; APPROVED and REJECTED
// come from explicit user decisions, EXPIRED is derived client-side when the
// validity window of a pending budget has passed.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusExpired  Status = "EXPIRED"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// Decided reports whether the status reflects an explicit user decision.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

// DiscountType selects how Budget.Discount is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// Budget is a priced quote for electrician services, scoped to a client and
// owned by a professional. Subtotal and TotalValue are computed by the backend;
// the pricing package mirrors the same arithmetic for local display.
type Budget struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	ClientID       string       `json:"clientId"`
	Status         Status       `json:"status"`
	Items          []BudgetItem `json:"items"`
	Subtotal       float64      `json:"subtotal"`
	Discount       float64      `json:"discount"`
	DiscountType   DiscountType `json:"discountType,omitempty"`
	DiscountReason string       `json:"discountReason,omitempty"`
	TotalValue     float64      `json:"totalValue"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
	ValidUntil     *time.Time   `json:"validUntil,omitempty"`
}

// BudgetItem is a line of a budget. It references a catalog service or
// material (at least one) and keeps a denormalized name for display.
type BudgetItem struct {
	ID         string  `json:"id"`
	ServiceID  string  `json:"serviceId,omitempty"`
	MaterialID string  `json:"materialId,omitempty"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Unit       Unit    `json:"unit,omitempty"`
	TotalPrice float64 `json:"totalPrice"`
}

// EffectiveStatus renders the status the user should see at a given instant.
// A pending budget past its validity date shows as EXPIRED without any remote
// transition having happened.
func (b Budget) EffectiveStatus(now time.Time) Status {
	if b.Status == StatusPending && b.ValidUntil != nil && b.ValidUntil.Before(now) {
		return StatusExpired
	}
	return b.Status
}

// Summary aggregates already-loaded item data for display. It never fetches.
type Summary struct {
	TotalItems       int     `json:"totalItems"`
	TotalValue       float64 `json:"totalValue"`
	ServiceItems     int     `json:"serviceItems"`
	MaterialItems    int     `json:"materialItems"`
	AverageItemValue float64 `json:"averageItemValue"`
}
