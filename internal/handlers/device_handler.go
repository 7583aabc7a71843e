package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/careguard/careguard-backend/internal/services"
	"go.uber.org/zap"
)

type DeviceHandler struct {
	coordinator *services.Coordinator
	logger      *zap.Logger
}

func NewDeviceHandler(coordinator *services.Coordinator, logger *zap.Logger) *DeviceHandler {
	return &DeviceHandler{coordinator: coordinator, logger: logger}
}

type heartbeatRequest struct {
	Status string `json:"status"`
}

type alertRequest struct {
	FallDetected bool   `json:"fallDetected"`
	Status       string `json:"status"`
}

// Heartbeat is the sensor's ping, posted every few seconds. Silence for
// the liveness window is the only offline signal.
func (h *DeviceHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	var req heartbeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("malformed heartbeat", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, map[string]bool{"success": false})
		return
	}

	h.coordinator.RecordHeartbeat(req.Status)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Heartbeat received",
	})
}

// Alert is hit only when the sensor thinks a fall happened. The response
// never waits on notification delivery.
func (h *DeviceHandler) Alert(w http.ResponseWriter, r *http.Request) {
	var req alertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("malformed alert", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, map[string]bool{"success": false})
		return
	}

	if req.FallDetected {
		h.coordinator.RecordFallSignal(req.Status)
	} else {
		h.coordinator.RecordHeartbeat("")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Alert Triggered",
	})
}

func (h *DeviceHandler) DeviceStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{
		"deviceOnline": h.coordinator.DeviceOnline(),
	})
}

func (h *DeviceHandler) FallStatus(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	report, err := h.coordinator.ReconcileAndReport(r.Context(), identity)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Error fetching device fall status")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"fallDetected": report.FallDetected,
		"statusString": report.Reading,
	})
}
