// Package validation rejects malformed domain objects before they reach
// pricing or the network. Checks collect every violation in order instead of
// stopping at the first, and a Result is data, not a panic or an error: call
// sites decide whether to bridge it into the error chain via Err.
package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/eletropro/app-core/internal/domain/models"
)

// Result carries the outcome of validating one object.
type Result struct {
	IsValid bool
	Errors  []string
}

func (r *Result) add(msg string) {
	r.IsValid = false
	r.Errors = append(r.Errors, msg)
}

// Merge folds another result into r, prefixing its messages so item-level
// violations stay attributable inside a composite validation.
func (r *Result) Merge(prefix string, other Result) {
	for _, msg := range other.Errors {
		if prefix != "" {
			msg = prefix + ": " + msg
		}
		r.add(msg)
	}
}

// Err returns the result as a *Error, or nil when the object is valid.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return &Error{Messages: r.Errors}
}

// Error is the error-chain form of a failed validation. It never reaches the
// network; services return it before issuing any remote call.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func newResult() Result {
	return Result{IsValid: true}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Budget validates the budget header fields. now anchors the validUntil check.
func Budget(b models.Budget, now time.Time) Result {
	r := newResult()
	if strings.TrimSpace(b.Name) == "" {
		r.add("name is required")
	}
	if strings.TrimSpace(b.ClientID) == "" {
		r.add("client is required")
	}
	if b.Status != "" && !b.Status.Valid() {
		r.add(fmt.Sprintf("status %q is invalid", b.Status))
	}
	if b.DiscountType != "" && !b.DiscountType.Valid() {
		r.add(fmt.Sprintf("discount type %q is invalid", b.DiscountType))
	}
	if !finite(b.Discount) || b.Discount < 0 {
		r.add("discount must be zero or a positive number")
	}
	if b.ValidUntil != nil && b.ValidUntil.Before(now) {
		r.add("valid-until date cannot be in the past")
	}
	return r
}

// BudgetItem validates one budget line. Items must be linked to a catalog
// service or material; a bare free-text line is rejected.
func BudgetItem(it models.BudgetItem) Result {
	r := newResult()
	if strings.TrimSpace(it.Name) == "" {
		r.add("name is required")
	}
	if !finite(it.Quantity) || it.Quantity <= 0 {
		r.add("quantity must be greater than zero")
	}
	if !finite(it.UnitPrice) || it.UnitPrice <= 0 {
		r.add("unit price must be greater than zero")
	}
	if strings.TrimSpace(it.ServiceID) == "" && strings.TrimSpace(it.MaterialID) == "" {
		r.add("item must be linked to a service or material")
	}
	if it.Unit != "" && !it.Unit.Valid() {
		r.add(fmt.Sprintf("unit %q is invalid", it.Unit))
	}
	return r
}

// MaterialList validates the material list header fields.
func MaterialList(l models.MaterialList) Result {
	r := newResult()
	if strings.TrimSpace(l.Name) == "" {
		r.add("name is required")
	}
	if strings.TrimSpace(l.ClientID) == "" {
		r.add("client is required")
	}
	if l.Status != "" && !l.Status.Valid() {
		r.add(fmt.Sprintf("status %q is invalid", l.Status))
	}
	return r
}

// MaterialListItem validates one material list line.
func MaterialListItem(it models.MaterialListItem) Result {
	r := newResult()
	if strings.TrimSpace(it.Name) == "" {
		r.add("name is required")
	}
	if !finite(it.Quantity) || it.Quantity <= 0 {
		r.add("quantity must be greater than zero")
	}
	if !finite(it.UnitPrice) || it.UnitPrice <= 0 {
		r.add("unit price must be greater than zero")
	}
	if strings.TrimSpace(it.MaterialID) == "" {
		r.add("item must be linked to a service or material")
	}
	if it.Unit != "" && !it.Unit.Valid() {
		r.add(fmt.Sprintf("unit %q is invalid", it.Unit))
	}
	return r
}

// Discount validates a discount payload before it is applied to a budget.
// The percentage bound of 100 is a UI convention, not enforced here: the
// pricing engine clamps anything larger to a zero total.
func Discount(discount float64, t models.DiscountType) Result {
	r := newResult()
	if !t.Valid() {
		r.add(fmt.Sprintf("discount type %q is invalid", t))
	}
	if !finite(discount) || discount < 0 {
		r.add("discount must be zero or a positive number")
	}
	return r
}

// Material validates a catalog material.
func Material(m models.Material) Result {
	return catalogEntry(m.Name, m.Price, m.Unit)
}

// Service validates a catalog service.
func Service(s models.Service) Result {
	return catalogEntry(s.Name, s.Price, s.Unit)
}

func catalogEntry(name string, price float64, unit models.Unit) Result {
	r := newResult()
	if strings.TrimSpace(name) == "" {
		r.add("name is required")
	}
	if !finite(price) || price <= 0 {
		r.add("price must be greater than zero")
	}
	if unit != "" && !unit.Valid() {
		r.add(fmt.Sprintf("unit %q is invalid", unit))
	}
	return r
}

// Client validates a client record.
func Client(c models.Client) Result {
	r := newResult()
	if strings.TrimSpace(c.Name) == "" {
		r.add("name is required")
	}
	return r
}
