package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pepocho/presupuesto-mix/internal/repository"
	"github.com/pepocho/presupuesto-mix/internal/service"
)

// MissingItemHandler handles the missing-items list and voice orders.
type MissingItemHandler struct {
	items  *service.MissingItemService
	logger *slog.Logger
}

// NewMissingItemHandler creates a new missing item handler
func NewMissingItemHandler(items *service.MissingItemService, logger *slog.Logger) *MissingItemHandler {
	return &MissingItemHandler{
		items:  items,
		logger: logger,
	}
}

// List handles GET /api/missing-items
func (h *MissingItemHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.items.List())
}

// AddItemRequest is the new-item payload. Quantity and price are free text.
type AddItemRequest struct {
	Requester string `json:"requester"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Price     string `json:"price"`
}

// Add handles POST /api/missing-items
func (h *MissingItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.items.Add(req.Requester, req.Name, req.Quantity, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingName), errors.Is(err, service.ErrMissingRequester):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrWriteFailed):
			// The item was not persisted; non-fatal for the session.
			h.logger.Warn("missing item not persisted", "error", err)
			writeError(w, http.StatusInsufficientStorage, "Item could not be saved")
		default:
			h.logger.Error("failed to add missing item", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Clear handles DELETE /api/missing-items
func (h *MissingItemHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.items.Clear(); err != nil {
		h.logger.Warn("failed to clear missing items", "error", err)
		writeError(w, http.StatusInsufficientStorage, "List could not be cleared")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

// WhatsAppLink handles GET /api/missing-items/whatsapp
func (h *MissingItemHandler) WhatsAppLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.items.WhatsAppLink()
	if err != nil {
		writeError(w, http.StatusBadRequest, "No missing items to send")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": link})
}

// VoiceOrderRequest carries the raw transcript to parse.
type VoiceOrderRequest struct {
	Transcript string `json:"transcript"`
}

// VoiceOrder handles POST /api/voice-order
func (h *MissingItemHandler) VoiceOrder(w http.ResponseWriter, r *http.Request) {
	var req VoiceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Transcript == "" {
		writeError(w, http.StatusBadRequest, "Transcript is required")
		return
	}

	added, err := h.items.AddFromVoice(r.Context(), req.Transcript)
	if err != nil {
		if errors.Is(err, service.ErrVoiceNotParsed) {
			writeError(w, http.StatusUnprocessableEntity, "No entendí el pedido, intenta de nuevo")
			return
		}
		h.logger.Error("voice order failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, added)
}
