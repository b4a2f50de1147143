// Package budget holds the pure cost computations of the dashboard:
// aggregation of ingredient costs into totals, the participant split,
// the AI price-overlay merge and the savings opportunity report.
package budget

import (
	"github.com/pepocho/presupuesto-mix/internal/models"
)

// savingsEpsilon avoids flagging floating-point noise as real savings.
const savingsEpsilon = 0.01

// Totals is the aggregate view of the full dish list.
// OriginalCost is always the as-stored cost; Savings is always computed
// against the best market prices so the dashboard can preview it before
// the optimized view is switched on.
type Totals struct {
	TotalCost       float64            `json:"totalCost"`
	OriginalCost    float64            `json:"originalCost"`
	Savings         float64            `json:"savings"`
	MarketBreakdown map[string]float64 `json:"marketBreakdown"`
}

// DishTotals is the per-dish subtotal used for the dish rows.
type DishTotals struct {
	Standard   float64 `json:"standard"`
	Optimized  float64 `json:"optimized"`
	HasSavings bool    `json:"hasSavings"`
}

// ComputeTotals rolls ingredient costs up across all dishes.
//
// The optimized cost of an ingredient with market quotes is
// quantity * best price. Note that this deliberately ignores any
// ingredient-level discount: discounts apply to the standard cost only.
// Ingredients without quotes fall back to their stored total.
func ComputeTotals(dishes []models.Dish, optimized bool) Totals {
	var original, best float64
	breakdown := make(map[string]float64)

	for _, dish := range dishes {
		for _, ing := range dish.Ingredients {
			original += ing.PriceTotal

			line, market := optimizedLine(ing)
			best += line
			if market != "" && line < ing.PriceTotal {
				breakdown[market] += line
			}
		}
	}

	total := original
	if optimized {
		total = best
	}

	return Totals{
		TotalCost:       total,
		OriginalCost:    original,
		Savings:         original - best,
		MarketBreakdown: breakdown,
	}
}

// ComputeDishTotals applies the same rule scoped to a single dish.
func ComputeDishTotals(dish models.Dish) DishTotals {
	var standard, optimized float64
	for _, ing := range dish.Ingredients {
		standard += ing.PriceTotal
		line, _ := optimizedLine(ing)
		optimized += line
	}
	return DishTotals{
		Standard:   standard,
		Optimized:  optimized,
		HasSavings: standard-optimized > savingsEpsilon,
	}
}

// optimizedLine returns the best-market cost for the ingredient and the
// market owning it. Without quotes it falls back to the stored total and
// reports no market.
func optimizedLine(ing models.Ingredient) (float64, string) {
	if len(ing.MarketPrices) == 0 {
		return ing.PriceTotal, ""
	}
	best := ing.MarketPrices[0]
	for _, mp := range ing.MarketPrices[1:] {
		if mp.Price < best.Price {
			best = mp
		}
	}
	return ing.Quantity * best.Price, best.MarketName
}
