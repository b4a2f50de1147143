package budget

import (
	"sort"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

// Opportunity compares one ingredient's unit price against the best market
// quote found for it, annotated with last-event reference data when known.
type Opportunity struct {
	Name           string                   `json:"name"`
	PriceUnit      float64                  `json:"priceUnit"`
	PriceTotal     float64                  `json:"priceTotal"`
	BestPrice      float64                  `json:"bestPrice"`
	BestMarket     string                   `json:"bestMarket"`
	UnitSaving     float64                  `json:"unitSaving"`
	LastPrice      float64                  `json:"lastPrice,omitempty"`
	Seasonality    models.SeasonalityStatus `json:"seasonality,omitempty"`
	SeasonalityMsg string                   `json:"seasonalityMsg,omitempty"`
}

// TopOpportunities lists the limit highest-impact ingredients (by stored
// total cost) with their best market option, for the comparison chart.
// Ingredients without quotes keep their own unit price and report no market.
func TopOpportunities(dishes []models.Dish, historic map[string]models.HistoricPrice, limit int) []Opportunity {
	var all []models.Ingredient
	for _, d := range dishes {
		all = append(all, d.Ingredients...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PriceTotal > all[j].PriceTotal
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	out := make([]Opportunity, 0, len(all))
	for _, ing := range all {
		op := Opportunity{
			Name:       ing.Name,
			PriceUnit:  ing.PriceUnit,
			PriceTotal: ing.PriceTotal,
			BestPrice:  ing.PriceUnit,
			BestMarket: "N/A",
		}
		if len(ing.MarketPrices) > 0 {
			best := ing.MarketPrices[0]
			for _, mp := range ing.MarketPrices[1:] {
				if mp.Price < best.Price {
					best = mp
				}
			}
			op.BestPrice = best.Price
			op.BestMarket = best.MarketName
		}
		op.UnitSaving = ing.PriceUnit - op.BestPrice

		if h, ok := historic[ing.Name]; ok {
			op.LastPrice = h.LastPrice
			op.Seasonality = h.Seasonality
			op.SeasonalityMsg = h.SeasonalityMsg
		}

		out = append(out, op)
	}
	return out
}
