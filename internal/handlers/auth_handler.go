package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/careguard/careguard-backend/internal/models"
	"github.com/careguard/careguard-backend/internal/services"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth   *services.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err == services.ErrEmailExists {
		respondMessage(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err == services.ErrWeakPassword {
		respondMessage(w, http.StatusBadRequest, "Password is too short")
		return
	}
	if err != nil {
		h.logger.Error("registration failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{Token: result.Token, User: result.User})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err == services.ErrInvalidCredentials {
		respondMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("login failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{Token: result.Token, User: result.User})
}
