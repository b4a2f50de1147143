package ai

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pepocho/presupuesto-mix/internal/budget"
	"github.com/pepocho/presupuesto-mix/internal/models"
)

var (
	ErrInvalidOutput = errors.New("invalid llm json output")
	ErrEmptyMenu     = errors.New("llm returned an empty menu")
)

// stripCodeFences removes a ```json ... ``` (or bare ```) wrapper that the
// model sometimes adds despite being told not to.
func stripCodeFences(text string) string {
	if i := strings.Index(text, "```json"); i >= 0 {
		text = text[i+len("```json"):]
		if j := strings.Index(text, "```"); j >= 0 {
			text = text[:j]
		}
	} else if i := strings.Index(text, "```"); i >= 0 {
		text = text[i+len("```"):]
		if j := strings.Index(text, "```"); j >= 0 {
			text = text[:j]
		}
	}
	return strings.TrimSpace(text)
}

func parseOptimizations(raw string) ([]budget.IngredientQuotes, error) {
	var parsed struct {
		Optimizations []budget.IngredientQuotes `json:"optimizations"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, ErrInvalidOutput
	}
	if len(parsed.Optimizations) == 0 {
		return nil, ErrInvalidOutput
	}
	return parsed.Optimizations, nil
}

func parseMenu(raw string) ([]models.Dish, error) {
	var parsed struct {
		Dishes []struct {
			Name        string `json:"name"`
			Ingredients []struct {
				Name      string  `json:"name"`
				Quantity  float64 `json:"quantity"`
				Unit      string  `json:"unit"`
				PriceUnit float64 `json:"priceUnit"`
			} `json:"ingredients"`
		} `json:"dishes"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, ErrInvalidOutput
	}
	if len(parsed.Dishes) == 0 {
		return nil, ErrEmptyMenu
	}

	dishes := make([]models.Dish, 0, len(parsed.Dishes))
	for _, d := range parsed.Dishes {
		dish := models.Dish{
			ID:   uuid.New().String(),
			Name: d.Name,
		}
		for _, ing := range d.Ingredients {
			dish.Ingredients = append(dish.Ingredients, models.Ingredient{
				ID:           uuid.New().String(),
				Name:         ing.Name,
				Quantity:     ing.Quantity,
				Unit:         ing.Unit,
				PriceUnit:    ing.PriceUnit,
				PriceTotal:   ing.PriceUnit * ing.Quantity,
				MarketPrices: []models.MarketPrice{},
			})
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func parseVoiceOrder(raw string) (VoiceOrder, error) {
	var order VoiceOrder
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return VoiceOrder{}, ErrInvalidOutput
	}

	for i := range order.Items {
		if order.Items[i].Quantity <= 0 {
			order.Items[i].Quantity = 1
		}
		if strings.TrimSpace(order.Items[i].Requester) == "" {
			order.Items[i].Requester = "Voz"
		}
	}
	return order, nil
}
