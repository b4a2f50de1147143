package models

// MarketPrice is a single externally supplied price quote for an ingredient.
// Quotes are never mutated in place; the whole set is replaced when a new
// optimization fetch completes.
type MarketPrice struct {
	MarketName string  `json:"marketName"`
	Price      float64 `json:"price"`
}

// Ingredient is one line of a dish's shopping list.
// PriceTotal is kept consistent with PriceUnit * Quantity * (1 - Discount/100)
// by the pricing package after every single-field edit.
type Ingredient struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Quantity     float64       `json:"quantity"`
	Unit         string        `json:"unit"`
	PriceUnit    float64       `json:"priceUnit"`
	PriceTotal   float64       `json:"priceTotal"`
	Discount     float64       `json:"discount,omitempty"` // percent, 0-100 expected
	Observations string        `json:"observations,omitempty"`
	MarketPrices []MarketPrice `json:"marketPrices"`
}

// Dish groups the ingredients needed for one preparation.
// A dish owns its ingredients exclusively; no ingredient is shared.
type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// CloneDishes returns a deep copy of the dish list so callers can hand out
// snapshots without exposing the session's backing slices.
func CloneDishes(dishes []Dish) []Dish {
	out := make([]Dish, len(dishes))
	for i, d := range dishes {
		ingredients := make([]Ingredient, len(d.Ingredients))
		for j, ing := range d.Ingredients {
			prices := make([]MarketPrice, len(ing.MarketPrices))
			copy(prices, ing.MarketPrices)
			ing.MarketPrices = prices
			ingredients[j] = ing
		}
		d.Ingredients = ingredients
		out[i] = d
	}
	return out
}
