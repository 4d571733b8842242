package pricing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/eletropro/app-core/internal/domain/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestItemTotal(t *testing.T) {
	if got := ItemTotal(2, 10); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := ItemTotal(0.5, 3); !almostEqual(got, 1.5) {
		t.Fatalf("expected 1.5, got %v", got)
	}
}

func TestSubtotal_OrderIndependent(t *testing.T) {
	lines := []Line{
		{Quantity: 2, UnitPrice: 10},
		{Quantity: 1, UnitPrice: 5},
		{Quantity: 3, UnitPrice: 7.25},
		{Quantity: 0.5, UnitPrice: 99.9},
	}
	want := Subtotal(lines)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]Line, len(lines))
		copy(shuffled, lines)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := Subtotal(shuffled); !almostEqual(got, want) {
			t.Fatalf("subtotal changed under permutation: want %v, got %v", want, got)
		}
	}
}

func TestSubtotal_Empty(t *testing.T) {
	if got := Subtotal(nil); got != 0 {
		t.Fatalf("expected 0 for empty lines, got %v", got)
	}
}

func TestDiscountValue(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		if got := DiscountValue(25, 10, models.DiscountPercentage); !almostEqual(got, 2.5) {
			t.Fatalf("expected 2.5, got %v", got)
		}
	})

	t.Run("fixed is verbatim", func(t *testing.T) {
		if got := DiscountValue(25, 100, models.DiscountFixed); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})

	t.Run("zero discount", func(t *testing.T) {
		if got := DiscountValue(25, 0, models.DiscountPercentage); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("absent type", func(t *testing.T) {
		if got := DiscountValue(25, 10, ""); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestFinalTotal(t *testing.T) {
	t.Run("plain subtraction", func(t *testing.T) {
		if got := FinalTotal(25, 2.5); !almostEqual(got, 22.5) {
			t.Fatalf("expected 22.5, got %v", got)
		}
	})

	t.Run("fixed discount above subtotal clamps to zero", func(t *testing.T) {
		sub := Subtotal([]Line{{Quantity: 2, UnitPrice: 10}, {Quantity: 1, UnitPrice: 5}})
		if sub != 25 {
			t.Fatalf("expected subtotal 25, got %v", sub)
		}
		if got := FinalTotal(sub, DiscountValue(sub, 100, models.DiscountFixed)); got != 0 {
			t.Fatalf("expected clamped 0, got %v", got)
		}
	})

	t.Run("zero percent is the identity", func(t *testing.T) {
		if got := FinalTotal(25, DiscountValue(25, 0, models.DiscountPercentage)); got != 25 {
			t.Fatalf("expected 25, got %v", got)
		}
	})

	t.Run("percentage above 100 clamps to zero", func(t *testing.T) {
		if got := FinalTotal(80, DiscountValue(80, 150, models.DiscountPercentage)); got != 0 {
			t.Fatalf("expected clamped 0, got %v", got)
		}
	})
}

func TestScenario_TenPercentOnTwentyFive(t *testing.T) {
	items := []models.BudgetItem{
		{Quantity: 2, UnitPrice: 10},
		{Quantity: 1, UnitPrice: 5},
	}
	sub := Subtotal(BudgetLines(items))
	if sub != 25 {
		t.Fatalf("expected subtotal 25, got %v", sub)
	}
	dv := DiscountValue(sub, 10, models.DiscountPercentage)
	if !almostEqual(dv, 2.5) {
		t.Fatalf("expected discount 2.5, got %v", dv)
	}
	if got := FinalTotal(sub, dv); !almostEqual(got, 22.5) {
		t.Fatalf("expected final 22.5, got %v", got)
	}
}
