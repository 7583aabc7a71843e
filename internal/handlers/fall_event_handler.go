package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/careguard/careguard-backend/internal/models"
	"github.com/careguard/careguard-backend/internal/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FallEventHandler struct {
	events repositories.FallEventRepository
	logger *zap.Logger
}

func NewFallEventHandler(events repositories.FallEventRepository, logger *zap.Logger) *FallEventHandler {
	return &FallEventHandler{events: events, logger: logger}
}

func (h *FallEventHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	events, err := h.events.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("failed to list fall events", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, events)
}

// Create handles the manual SOS trigger from the app.
func (h *FallEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	event, err := h.events.Create(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("failed to create fall event", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusCreated, event)
}

type updateFallEventRequest struct {
	Status string `json:"status"` // "resolved" -> "I am OK", "notify_sent" -> "Send Help"
}

func (h *FallEventHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req updateFallEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.ValidFallStatusTransition(req.Status) {
		respondMessage(w, http.StatusBadRequest, "Invalid status")
		return
	}

	event, err := h.events.UpdateStatus(r.Context(), id, identity.UserID, req.Status)
	if err == repositories.ErrNotFound {
		respondMessage(w, http.StatusNotFound, "Not authorized or Not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update fall event", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, event)
}
