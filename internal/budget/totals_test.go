package budget

import (
	"math"
	"testing"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

const eps = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func twoIngredientDish() []models.Dish {
	return []models.Dish{
		{
			ID:   "d1",
			Name: "Causa",
			Ingredients: []models.Ingredient{
				{
					ID: "i1", Name: "Papa", Quantity: 2, PriceUnit: 5.00, PriceTotal: 10.00,
					MarketPrices: []models.MarketPrice{
						{MarketName: "Metro", Price: 4.00},
						{MarketName: "Wong", Price: 6.00},
					},
				},
				{
					ID: "i2", Name: "Panceta", Quantity: 1, PriceUnit: 25.00, PriceTotal: 25.00,
					MarketPrices: []models.MarketPrice{
						{MarketName: "Makro", Price: 20.00},
						{MarketName: "Vivanda", Price: 27.00},
					},
				},
			},
		},
	}
}

func TestComputeTotals_Optimized(t *testing.T) {
	dishes := twoIngredientDish()

	got := ComputeTotals(dishes, true)

	// Best lines: 2*4 = 8 and 1*20 = 20.
	if !almostEqual(got.OriginalCost, 35.00) {
		t.Errorf("OriginalCost = %v, want 35.00", got.OriginalCost)
	}
	if !almostEqual(got.TotalCost, 28.00) {
		t.Errorf("TotalCost = %v, want 28.00", got.TotalCost)
	}
	if !almostEqual(got.Savings, 7.00) {
		t.Errorf("Savings = %v, want 7.00", got.Savings)
	}
	if !almostEqual(got.MarketBreakdown["Metro"], 8.00) {
		t.Errorf("MarketBreakdown[Metro] = %v, want 8.00", got.MarketBreakdown["Metro"])
	}
	if !almostEqual(got.MarketBreakdown["Makro"], 20.00) {
		t.Errorf("MarketBreakdown[Makro] = %v, want 20.00", got.MarketBreakdown["Makro"])
	}
}

func TestComputeTotals_StandardStillPreviewsSavings(t *testing.T) {
	dishes := twoIngredientDish()

	got := ComputeTotals(dishes, false)

	if !almostEqual(got.TotalCost, got.OriginalCost) {
		t.Errorf("standard TotalCost = %v, want OriginalCost %v", got.TotalCost, got.OriginalCost)
	}
	if !almostEqual(got.Savings, 7.00) {
		t.Errorf("preview Savings = %v, want 7.00", got.Savings)
	}
}

func TestComputeTotals_NoMarketPricesFallsBack(t *testing.T) {
	dishes := []models.Dish{
		{
			ID: "d1",
			Ingredients: []models.Ingredient{
				{ID: "i1", Quantity: 0.5, PriceUnit: 0, PriceTotal: 0, MarketPrices: []models.MarketPrice{}},
				{ID: "i2", Quantity: 1, PriceUnit: 12, PriceTotal: 12, MarketPrices: []models.MarketPrice{}},
			},
		},
	}

	got := ComputeTotals(dishes, true)

	if !almostEqual(got.TotalCost, 12.00) {
		t.Errorf("TotalCost = %v, want fallback 12.00", got.TotalCost)
	}
	if !almostEqual(got.Savings, 0) {
		t.Errorf("Savings = %v, want 0", got.Savings)
	}
	if len(got.MarketBreakdown) != 0 {
		t.Errorf("MarketBreakdown = %v, want empty", got.MarketBreakdown)
	}
}

// The optimized line is quantity * best price and deliberately ignores any
// ingredient-level discount; discounts only shape the standard cost.
func TestComputeTotals_OptimizedIgnoresDiscount(t *testing.T) {
	dishes := []models.Dish{
		{
			ID: "d1",
			Ingredients: []models.Ingredient{
				{
					ID: "i1", Quantity: 4, PriceUnit: 43.80, Discount: 20,
					PriceTotal: 140.16, // 43.80 * 4 * 0.8
					MarketPrices: []models.MarketPrice{
						{MarketName: "Makro", Price: 40.00},
					},
				},
			},
		},
	}

	got := ComputeTotals(dishes, true)

	// 4 * 40 = 160, even though the discounted standard cost is 140.16.
	if !almostEqual(got.TotalCost, 160.00) {
		t.Errorf("TotalCost = %v, want 160.00 (discount not applied to optimized line)", got.TotalCost)
	}
	// Optimization did not lower this cost, so nothing is attributed.
	if len(got.MarketBreakdown) != 0 {
		t.Errorf("MarketBreakdown = %v, want empty for non-saving line", got.MarketBreakdown)
	}
	if !almostEqual(got.Savings, 140.16-160.00) {
		t.Errorf("Savings = %v, want %v", got.Savings, 140.16-160.00)
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	dishes := twoIngredientDish()

	first := ComputeTotals(dishes, true)
	second := ComputeTotals(dishes, true)

	if !almostEqual(first.TotalCost, second.TotalCost) ||
		!almostEqual(first.OriginalCost, second.OriginalCost) ||
		!almostEqual(first.Savings, second.Savings) {
		t.Errorf("repeated calls disagree: %+v vs %+v", first, second)
	}

	// Inputs must be untouched.
	if !almostEqual(dishes[0].Ingredients[0].PriceTotal, 10.00) {
		t.Errorf("input mutated: %+v", dishes[0].Ingredients[0])
	}
}

func TestComputeDishTotals(t *testing.T) {
	dish := twoIngredientDish()[0]

	got := ComputeDishTotals(dish)

	if !almostEqual(got.Standard, 35.00) {
		t.Errorf("Standard = %v, want 35.00", got.Standard)
	}
	if !almostEqual(got.Optimized, 28.00) {
		t.Errorf("Optimized = %v, want 28.00", got.Optimized)
	}
	if !got.HasSavings {
		t.Error("HasSavings = false, want true")
	}
}

func TestComputeDishTotals_EpsilonTolerance(t *testing.T) {
	dish := models.Dish{
		Ingredients: []models.Ingredient{
			{
				Quantity: 1, PriceUnit: 10.00, PriceTotal: 10.005,
				MarketPrices: []models.MarketPrice{{MarketName: "Metro", Price: 10.00}},
			},
		},
	}

	if got := ComputeDishTotals(dish); got.HasSavings {
		t.Errorf("HasSavings = true for %v difference, want false", got.Standard-got.Optimized)
	}
}
