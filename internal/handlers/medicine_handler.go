package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/careguard/careguard-backend/internal/models"
	"github.com/careguard/careguard-backend/internal/repositories"
	"github.com/careguard/careguard-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MedicineHandler struct {
	medicines repositories.MedicineRepository
	explain   *services.ExplainService
	logger    *zap.Logger
}

func NewMedicineHandler(medicines repositories.MedicineRepository, explain *services.ExplainService, logger *zap.Logger) *MedicineHandler {
	return &MedicineHandler{medicines: medicines, explain: explain, logger: logger}
}

// List returns an empty list for guests: their schedules live on the
// device, not in the cloud.
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		respondJSON(w, http.StatusOK, []*models.Medicine{})
		return
	}

	medicines, err := h.medicines.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("failed to list medicines", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusOK, medicines)
}

type createMedicineRequest struct {
	Name      string `json:"name"`
	Time      string `json:"time"`
	Frequency string `json:"frequency"`
}

func (h *MedicineHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		respondMessage(w, http.StatusUnauthorized, "Guest users cannot save medicine online.")
		return
	}

	var req createMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondMessage(w, http.StatusBadRequest, "Medicine name is required")
		return
	}

	medicine := &models.Medicine{
		UserID:    identity.UserID,
		Name:      req.Name,
		Time:      req.Time,
		Frequency: req.Frequency,
		Taken:     false,
	}
	if err := h.medicines.Create(r.Context(), medicine); err != nil {
		h.logger.Error("failed to create medicine", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusCreated, medicine)
}

type updateMedicineRequest struct {
	Taken bool `json:"taken"`
}

func (h *MedicineHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid medicine id")
		return
	}

	var req updateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	medicine, err := h.medicines.SetTaken(r.Context(), id, identity.UserID, req.Taken)
	if err == repositories.ErrNotFound {
		respondMessage(w, http.StatusNotFound, "Not authorized or Not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update medicine", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusOK, medicine)
}

func (h *MedicineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid medicine id")
		return
	}

	err = h.medicines.Delete(r.Context(), id, identity.UserID)
	if err == repositories.ErrNotFound {
		respondMessage(w, http.StatusNotFound, "Not authorized or Not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete medicine", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondMessage(w, http.StatusOK, "Medicine Removed")
}

type explainRequest struct {
	MedicineName string `json:"medicineName"`
}

func (h *MedicineHandler) Explain(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MedicineName == "" {
		respondMessage(w, http.StatusBadRequest, "Medicine name is required.")
		return
	}

	explanation, err := h.explain.Explain(r.Context(), req.MedicineName)
	if err != nil {
		h.logger.Error("failed to explain medicine", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Error explaining medicine details.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"explanation": explanation})
}
