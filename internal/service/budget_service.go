package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/pepocho/presupuesto-mix/internal/ai"
	"github.com/pepocho/presupuesto-mix/internal/budget"
	"github.com/pepocho/presupuesto-mix/internal/models"
	"github.com/pepocho/presupuesto-mix/internal/pricing"
)

var (
	ErrDishNotFound       = errors.New("dish not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

// BudgetView is a consistent snapshot of the session for the dashboard.
type BudgetView struct {
	Dishes     []models.Dish                `json:"dishes"`
	DishTotals map[string]budget.DishTotals `json:"dishTotals"`
	Totals     budget.Totals                `json:"totals"`
	Optimized  bool                         `json:"optimized"`
	FetchedAI  bool                         `json:"fetchedAI"`
	Fetching   bool                         `json:"fetching"`
}

// BudgetService owns the session's dish list and the optimization state.
//
// The optimization flow is a small state machine: standard -> fetching ->
// optimized -> (toggle) -> standard. Market overlays are fetched at most
// once per dataset; toggling back and forth afterwards is a pure flag
// flip. Replacing the dataset (menu regeneration) resets the latch.
type BudgetService struct {
	mu       sync.Mutex
	dishes   []models.Dish
	historic map[string]models.HistoricPrice

	optimized bool
	fetchedAI bool
	fetching  bool

	aiClient ai.Client
	logger   *slog.Logger
}

// NewBudgetService creates a session over the given seed dishes.
func NewBudgetService(dishes []models.Dish, historic map[string]models.HistoricPrice, aiClient ai.Client, logger *slog.Logger) *BudgetService {
	return &BudgetService{
		dishes:   dishes,
		historic: historic,
		aiClient: aiClient,
		logger:   logger,
	}
}

// View returns the current snapshot with all derived totals.
func (s *BudgetService) View() BudgetView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *BudgetService) viewLocked() BudgetView {
	dishes := models.CloneDishes(s.dishes)
	dishTotals := make(map[string]budget.DishTotals, len(dishes))
	for _, d := range dishes {
		dishTotals[d.ID] = budget.ComputeDishTotals(d)
	}
	return BudgetView{
		Dishes:     dishes,
		DishTotals: dishTotals,
		Totals:     budget.ComputeTotals(dishes, s.optimized),
		Optimized:  s.optimized,
		FetchedAI:  s.fetchedAI,
		Fetching:   s.fetching,
	}
}

// TotalCost returns the current total under the active mode, for the
// participant split.
func (s *BudgetService) TotalCost() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return budget.ComputeTotals(s.dishes, s.optimized).TotalCost
}

// UpdateIngredient applies a single-field edit to one ingredient and
// re-derives its dependent price fields.
func (s *BudgetService) UpdateIngredient(dishID, ingredientID string, field pricing.Field, value float64) (BudgetView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, dish := range s.dishes {
		if dish.ID != dishID {
			continue
		}
		for j, ing := range dish.Ingredients {
			if ing.ID != ingredientID {
				continue
			}
			updated, err := pricing.Apply(ing, field, value)
			if err != nil {
				return BudgetView{}, err
			}
			s.dishes[i].Ingredients[j] = updated
			return s.viewLocked(), nil
		}
		return BudgetView{}, ErrIngredientNotFound
	}
	return BudgetView{}, ErrDishNotFound
}

// ToggleOptimization flips between the standard and optimized views.
//
// The first switch to optimized fetches market quotes and merges them into
// the dataset; any failure leaves the session in standard mode with the
// dataset untouched. A toggle that arrives while a fetch is in flight is
// a no-op, which makes double-clicks safe. The caller learns what happened
// from the returned view's flags.
func (s *BudgetService) ToggleOptimization(ctx context.Context) BudgetView {
	s.mu.Lock()

	if s.fetching {
		defer s.mu.Unlock()
		return s.viewLocked()
	}

	if s.optimized {
		s.optimized = false
		defer s.mu.Unlock()
		return s.viewLocked()
	}

	if s.fetchedAI {
		s.optimized = true
		defer s.mu.Unlock()
		return s.viewLocked()
	}

	// First activation: fetch outside the lock so reads stay responsive.
	s.fetching = true
	dishes := models.CloneDishes(s.dishes)
	s.mu.Unlock()

	quotes, err := s.aiClient.OptimizePrices(ctx, dishes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetching = false

	if err != nil {
		// Fail safe: stay standard, keep the pre-fetch dataset.
		s.logger.Error("price optimization fetch failed", "error", err)
		return s.viewLocked()
	}

	s.dishes = budget.MergeQuotes(s.dishes, quotes)
	s.fetchedAI = true
	s.optimized = true
	return s.viewLocked()
}

// Regenerate replaces the whole dataset with an AI-generated menu.
// Unlike the optimization fetch there is no original data to fall back to
// for this destructive action, so errors propagate to the caller.
func (s *BudgetService) Regenerate(ctx context.Context, req ai.MenuRequest) (BudgetView, error) {
	dishes, err := s.aiClient.GenerateMenu(ctx, req)
	if err != nil {
		return BudgetView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// New ingredient set has no overlays yet: reset the whole state machine.
	s.dishes = dishes
	s.optimized = false
	s.fetchedAI = false
	s.fetching = false

	s.logger.Info("menu regenerated", "dishes", len(dishes), "budget", req.Budget, "people", req.PeopleCount)
	return s.viewLocked(), nil
}

// Opportunities returns the top savings opportunities report.
func (s *BudgetService) Opportunities(limit int) []budget.Opportunity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return budget.TopOpportunities(s.dishes, s.historic, limit)
}
