package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pepocho/presupuesto-mix/internal/models"
	"github.com/pepocho/presupuesto-mix/internal/service"
)

// ParticipantHandler handles the guest list and the cost split.
type ParticipantHandler struct {
	participants *service.ParticipantService
	budget       *service.BudgetService
	logger       *slog.Logger
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(participants *service.ParticipantService, budget *service.BudgetService, logger *slog.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		participants: participants,
		budget:       budget,
		logger:       logger,
	}
}

// List handles GET /api/participants
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.participants.List())
}

// Split handles GET /api/participants/split
func (h *ParticipantHandler) Split(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.participants.Split(h.budget.TotalCost()))
}

type setFlagRequest struct {
	Value bool `json:"value"`
}

type participantUpdateResponse struct {
	Participant models.Participant `json:"participant"`
	Split       interface{}        `json:"split"`
}

// SetActive handles PUT /api/participants/{id}/active
func (h *ParticipantHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	h.handleUpdate(w, r, h.participants.SetActive)
}

// SetPaid handles PUT /api/participants/{id}/paid
func (h *ParticipantHandler) SetPaid(w http.ResponseWriter, r *http.Request) {
	h.handleUpdate(w, r, h.participants.SetPaid)
}

func (h *ParticipantHandler) handleUpdate(w http.ResponseWriter, r *http.Request, fn func(id string, value bool) (models.Participant, error)) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	var req setFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	participant, err := fn(id, req.Value)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			writeError(w, http.StatusNotFound, "Participant not found")
			return
		}
		h.logger.Error("failed to update participant", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, participantUpdateResponse{
		Participant: participant,
		Split:       h.participants.Split(h.budget.TotalCost()),
	})
}
