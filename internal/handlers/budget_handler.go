package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pepocho/presupuesto-mix/internal/ai"
	"github.com/pepocho/presupuesto-mix/internal/pricing"
	"github.com/pepocho/presupuesto-mix/internal/service"
)

// BudgetHandler handles dish list, ingredient edits and optimization.
type BudgetHandler struct {
	budget       *service.BudgetService
	participants *service.ParticipantService
	logger       *slog.Logger
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budget *service.BudgetService, participants *service.ParticipantService, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{
		budget:       budget,
		participants: participants,
		logger:       logger,
	}
}

type budgetResponse struct {
	service.BudgetView
	Split interface{} `json:"split"`
}

func (h *BudgetHandler) respond(w http.ResponseWriter, view service.BudgetView) {
	writeJSON(w, http.StatusOK, budgetResponse{
		BudgetView: view,
		Split:      h.participants.Split(view.Totals.TotalCost),
	})
}

// GetBudget handles GET /api/budget
func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.budget.View())
}

// UpdateIngredientRequest is the single-field edit payload.
type UpdateIngredientRequest struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

// UpdateIngredient handles PUT /api/budget/dish/{dishId}/ingredient/{ingredientId}
func (h *BudgetHandler) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")
	ingredientID := chi.URLParam(r, "ingredientId")

	var req UpdateIngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.budget.UpdateIngredient(dishID, ingredientID, pricing.Field(req.Field), req.Value)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownField):
			writeError(w, http.StatusBadRequest, "Unknown field: "+req.Field)
		case errors.Is(err, service.ErrDishNotFound), errors.Is(err, service.ErrIngredientNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.Error("failed to update ingredient", "dish", dishID, "ingredient", ingredientID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.respond(w, view)
}

// ToggleOptimization handles POST /api/budget/optimize.
// The response flags tell the client whether the optimized view is active;
// a failed fetch simply comes back with optimized=false and intact data.
func (h *BudgetHandler) ToggleOptimization(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.budget.ToggleOptimization(r.Context()))
}

// RegenerateRequest asks for a fresh AI-generated menu.
type RegenerateRequest struct {
	Budget      float64 `json:"budget"`
	PeopleCount int     `json:"peopleCount"`
	Style       string  `json:"style"`
}

// Regenerate handles POST /api/budget/regenerate
func (h *BudgetHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	var req RegenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Budget <= 0 || req.PeopleCount <= 0 {
		writeError(w, http.StatusBadRequest, "budget and peopleCount must be positive")
		return
	}

	view, err := h.budget.Regenerate(r.Context(), ai.MenuRequest{
		Budget:      req.Budget,
		PeopleCount: req.PeopleCount,
		Style:       req.Style,
	})
	if err != nil {
		h.logger.Error("menu regeneration failed", "error", err)
		writeError(w, http.StatusBadGateway, "Menu generation failed")
		return
	}

	h.respond(w, view)
}

// Opportunities handles GET /api/budget/opportunities?limit=n
func (h *BudgetHandler) Opportunities(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	writeJSON(w, http.StatusOK, h.budget.Opportunities(limit))
}
