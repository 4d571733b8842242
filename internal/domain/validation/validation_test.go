package validation

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/eletropro/app-core/internal/domain/models"
)

func containsMessage(errs []string, want string) bool {
	for _, e := range errs {
		if strings.Contains(e, want) {
			return true
		}
	}
	return false
}

func TestBudget(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		future := now.Add(30 * 24 * time.Hour)
		r := Budget(models.Budget{Name: "Rewiring", ClientID: "c-1", Status: models.StatusPending, ValidUntil: &future}, now)
		if !r.IsValid || len(r.Errors) != 0 {
			t.Fatalf("expected valid, got %+v", r)
		}
		if r.Err() != nil {
			t.Fatalf("expected nil Err for valid result")
		}
	})

	t.Run("collects all violations in one pass", func(t *testing.T) {
		past := now.Add(-time.Hour)
		r := Budget(models.Budget{Name: "   ", ClientID: "", Status: "MAYBE", ValidUntil: &past}, now)
		if r.IsValid {
			t.Fatalf("expected invalid")
		}
		if len(r.Errors) != 4 {
			t.Fatalf("expected 4 errors, got %d: %v", len(r.Errors), r.Errors)
		}
		for _, want := range []string{"name is required", "client is required", "status", "valid-until"} {
			if !containsMessage(r.Errors, want) {
				t.Fatalf("missing %q in %v", want, r.Errors)
			}
		}
	})

	t.Run("negative discount", func(t *testing.T) {
		r := Budget(models.Budget{Name: "x", ClientID: "c-1", Discount: -5}, now)
		if r.IsValid || !containsMessage(r.Errors, "discount") {
			t.Fatalf("expected discount violation, got %+v", r)
		}
	})

	t.Run("err carries messages", func(t *testing.T) {
		err := Budget(models.Budget{}, now).Err()
		var verr *Error
		if err == nil {
			t.Fatalf("expected error")
		}
		var ok bool
		verr, ok = err.(*Error)
		if !ok || len(verr.Messages) == 0 {
			t.Fatalf("expected *Error with messages, got %T %v", err, err)
		}
	})
}

func TestBudgetItem(t *testing.T) {
	t.Run("valid service item", func(t *testing.T) {
		r := BudgetItem(models.BudgetItem{Name: "Outlet install", ServiceID: "s-1", Quantity: 2, UnitPrice: 40, Unit: models.UnitPiece})
		if !r.IsValid {
			t.Fatalf("expected valid, got %v", r.Errors)
		}
	})

	t.Run("collects name and quantity violations together", func(t *testing.T) {
		r := BudgetItem(models.BudgetItem{Name: "", MaterialID: "m-1", Quantity: 0, UnitPrice: 3})
		if r.IsValid {
			t.Fatalf("expected invalid")
		}
		if !containsMessage(r.Errors, "name is required") {
			t.Fatalf("missing name violation: %v", r.Errors)
		}
		if !containsMessage(r.Errors, "quantity must be greater than zero") {
			t.Fatalf("missing quantity violation: %v", r.Errors)
		}
	})

	t.Run("missing catalog link", func(t *testing.T) {
		r := BudgetItem(models.BudgetItem{Name: "Loose line", Quantity: 1, UnitPrice: 10})
		if r.IsValid || !containsMessage(r.Errors, "item must be linked to a service or material") {
			t.Fatalf("expected link violation, got %+v", r)
		}
	})

	t.Run("non-finite operands are rejected before pricing", func(t *testing.T) {
		r := BudgetItem(models.BudgetItem{Name: "x", ServiceID: "s-1", Quantity: math.NaN(), UnitPrice: math.Inf(1)})
		if r.IsValid || len(r.Errors) != 2 {
			t.Fatalf("expected 2 violations, got %+v", r)
		}
	})
}

func TestMaterialListItem(t *testing.T) {
	r := MaterialListItem(models.MaterialListItem{Name: "Cable 2.5mm", MaterialID: "m-2", Quantity: 30, UnitPrice: 1.2, Unit: models.UnitMeter})
	if !r.IsValid {
		t.Fatalf("expected valid, got %v", r.Errors)
	}

	r = MaterialListItem(models.MaterialListItem{Name: "Cable", Quantity: 1, UnitPrice: 1})
	if r.IsValid || !containsMessage(r.Errors, "linked to a service or material") {
		t.Fatalf("expected link violation, got %+v", r)
	}
}

func TestCatalogEntries(t *testing.T) {
	if r := Material(models.Material{Name: "Breaker", Price: 12.5, Unit: models.UnitPiece}); !r.IsValid {
		t.Fatalf("expected valid material, got %v", r.Errors)
	}
	if r := Material(models.Material{Name: "", Price: 0, Unit: "BOX"}); r.IsValid || len(r.Errors) != 3 {
		t.Fatalf("expected 3 violations, got %+v", r)
	}
	if r := Service(models.Service{Name: "Panel upgrade", Price: 300, Unit: models.UnitPiece}); !r.IsValid {
		t.Fatalf("expected valid service, got %v", r.Errors)
	}
}

func TestClient(t *testing.T) {
	if r := Client(models.Client{Name: "Acme"}); !r.IsValid {
		t.Fatalf("expected valid, got %v", r.Errors)
	}
	if r := Client(models.Client{Name: "  "}); r.IsValid {
		t.Fatalf("expected invalid")
	}
}
