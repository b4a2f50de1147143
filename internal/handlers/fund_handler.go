package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pepocho/presupuesto-mix/internal/repository"
	"github.com/pepocho/presupuesto-mix/internal/service"
)

// FundHandler handles the cow funds.
type FundHandler struct {
	funds  *service.FundService
	logger *slog.Logger
}

// NewFundHandler creates a new fund handler
func NewFundHandler(funds *service.FundService, logger *slog.Logger) *FundHandler {
	return &FundHandler{
		funds:  funds,
		logger: logger,
	}
}

// List handles GET /api/funds
func (h *FundHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.funds.List())
}

// ContributeRequest is one payment into a fund.
type ContributeRequest struct {
	ParticipantID string  `json:"participantId"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
}

// Contribute handles POST /api/funds/{fundId}/contribute
func (h *FundHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	var req ContributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fund, err := h.funds.Contribute(fundID, req.ParticipantID, req.Name, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFundNotFound):
			writeError(w, http.StatusNotFound, "Fund not found")
		case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrMissingFundName), errors.Is(err, service.ErrFundCompleted):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrWriteFailed):
			// Contribution applied in memory but not persisted.
			h.logger.Warn("fund not persisted", "fund", fundID, "error", err)
			writeJSON(w, http.StatusOK, fund)
		default:
			h.logger.Error("contribution failed", "fund", fundID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, fund)
}
