package budget

import (
	"strings"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

// IngredientQuotes is a set of market quotes the AI returned for one
// ingredient, keyed by the name the AI echoed back.
type IngredientQuotes struct {
	IngredientName string               `json:"ingredientName"`
	MarketPrices   []models.MarketPrice `json:"marketPrices"`
}

// MergeQuotes attaches AI-returned market prices onto matching ingredients
// and returns a new dish list; the input is not mutated.
//
// Matching is a case-insensitive substring match in either direction
// between the returned name and the stored name, first match wins. The AI
// is asked to echo names verbatim but tends to trim or reorder qualifiers,
// which exact equality would reject. Ingredients with no match keep their
// existing quotes.
func MergeQuotes(dishes []models.Dish, quotes []IngredientQuotes) []models.Dish {
	out := models.CloneDishes(dishes)
	for i := range out {
		for j := range out[i].Ingredients {
			ing := &out[i].Ingredients[j]
			if q, ok := matchQuote(ing.Name, quotes); ok {
				prices := make([]models.MarketPrice, len(q.MarketPrices))
				copy(prices, q.MarketPrices)
				ing.MarketPrices = prices
			}
		}
	}
	return out
}

func matchQuote(name string, quotes []IngredientQuotes) (IngredientQuotes, bool) {
	stored := strings.ToLower(name)
	for _, q := range quotes {
		returned := strings.ToLower(q.IngredientName)
		if returned == "" {
			continue
		}
		if strings.Contains(stored, returned) || strings.Contains(returned, stored) {
			return q, true
		}
	}
	return IngredientQuotes{}, false
}
