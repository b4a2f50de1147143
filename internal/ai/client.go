// Package ai talks to the Gemini generateContent API for the three
// generative features of the dashboard: market price quotes, full menu
// generation and voice order parsing. All prompts demand strict JSON and
// every response is validated before it reaches the session layer.
package ai

import (
	"context"

	"github.com/pepocho/presupuesto-mix/internal/budget"
	"github.com/pepocho/presupuesto-mix/internal/models"
)

// MenuRequest describes the menu the user wants generated.
type MenuRequest struct {
	Budget      float64 `json:"budget"`
	PeopleCount int     `json:"peopleCount"`
	Style       string  `json:"style"`
}

// VoiceItem is one item extracted from a spoken request.
type VoiceItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Requester string  `json:"requester"`
}

// VoiceOrder is the parsed result of a voice transcript.
type VoiceOrder struct {
	Items []VoiceItem `json:"items"`
}

// Client is the generative backend the services depend on. Tests swap in
// fakes; production wires the Gemini implementation.
type Client interface {
	// OptimizePrices returns market quotes for the given dish list.
	// The caller keeps its original data on any error.
	OptimizePrices(ctx context.Context, dishes []models.Dish) ([]budget.IngredientQuotes, error)

	// GenerateMenu returns a full replacement dish list whose summed
	// cost approximates but should not exceed the requested budget.
	GenerateMenu(ctx context.Context, req MenuRequest) ([]models.Dish, error)

	// ParseVoiceOrder extracts requested items from a free-text
	// transcript. Quantities spelled out in words come back as numbers.
	ParseVoiceOrder(ctx context.Context, transcript string) (VoiceOrder, error)
}
