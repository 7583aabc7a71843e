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

type CaregiverHandler struct {
	caregivers repositories.CaregiverRepository
	logger     *zap.Logger
}

func NewCaregiverHandler(caregivers repositories.CaregiverRepository, logger *zap.Logger) *CaregiverHandler {
	return &CaregiverHandler{caregivers: caregivers, logger: logger}
}

func (h *CaregiverHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	caregivers, err := h.caregivers.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("failed to list caregivers", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, caregivers)
}

type createCaregiverRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *CaregiverHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	var req createCaregiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Phone == "" {
		respondMessage(w, http.StatusBadRequest, "Name and phone are required")
		return
	}

	caregiver := &models.Caregiver{
		UserID: identity.UserID,
		Name:   req.Name,
		Phone:  req.Phone,
	}
	if err := h.caregivers.Create(r.Context(), caregiver); err != nil {
		h.logger.Error("failed to create caregiver", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusCreated, caregiver)
}

func (h *CaregiverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid caregiver id")
		return
	}

	err = h.caregivers.Delete(r.Context(), id, identity.UserID)
	if err == repositories.ErrNotFound {
		respondMessage(w, http.StatusNotFound, "Not authorized or Not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete caregiver", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondMessage(w, http.StatusOK, "Caregiver removed")
}
