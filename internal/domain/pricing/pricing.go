// Package pricing implements the arithmetic shared by budgets and material
// lists: line totals, subtotals and discount application. Everything here is
// pure; the backend remains authoritative for persisted totals and these
// functions only mirror its computation for local display and verification.
package pricing

import (
	"github.com/eletropro/app-core/internal/domain/models"
)

// Line is the minimal priced quantity a total can be derived from.
type Line struct {
	Quantity  float64
	UnitPrice float64
}

// ItemTotal computes the total of a single line.
//
// Operand sanity (finiteness, positivity) is the validation package's job;
// pricing assumes inputs already passed it.
func ItemTotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// Subtotal sums the line totals. The result does not depend on line order.
func Subtotal(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += ItemTotal(l.Quantity, l.UnitPrice)
	}
	return total
}

// DiscountValue resolves the absolute amount a discount takes off a subtotal.
// A zero discount or an unset type yields zero. FIXED discounts are taken
// verbatim, not scaled by the subtotal.
func DiscountValue(subtotal, discount float64, discountType models.DiscountType) float64 {
	if discount == 0 || discountType == "" {
		return 0
	}
	switch discountType {
	case models.DiscountPercentage:
		return subtotal * discount / 100
	case models.DiscountFixed:
		return discount
	}
	return 0
}

// FinalTotal applies a resolved discount to a subtotal. The result is clamped
// at zero: a discount larger than the subtotal (including percentages above
// 100) is silently absorbed, never reported as negative.
func FinalTotal(subtotal, discountValue float64) float64 {
	total := subtotal - discountValue
	if total < 0 {
		return 0
	}
	return total
}

// BudgetLines adapts budget items for Subtotal.
func BudgetLines(items []models.BudgetItem) []Line {
	lines := make([]Line, len(items))
	for i, it := range items {
		lines[i] = Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return lines
}

// MaterialLines adapts material list items for Subtotal.
func MaterialLines(items []models.MaterialListItem) []Line {
	lines := make([]Line, len(items))
	for i, it := range items {
		lines[i] = Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return lines
}
