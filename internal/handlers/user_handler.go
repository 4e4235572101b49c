package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adikhanov/bondify-backend/internal/models"
	"github.com/adikhanov/bondify-backend/internal/services"
	"github.com/adikhanov/bondify-backend/pkg/logger"
)

// UserHandler handles HTTP requests related to the user directory.
type UserHandler struct {
	Service *services.UserService
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// UpsertUserHandler saves or replaces a profile keyed by email and returns
// the raw store mutation result.
func (h *UserHandler) UpsertUserHandler(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode profile payload")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	result, err := h.Service.UpsertUser(r.Context(), &user)
	if err != nil {
		if errors.Is(err, services.ErrMissingEmail) {
			respondError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		logger.Log.WithError(err).Error("Failed to upsert user")
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.Log.WithField("email", user.Email).Info("Profile saved")
	respondJSON(w, http.StatusOK, result)
}

// GetUsersHandler returns all user records.
func (h *UserHandler) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsers(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch users")
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, users)
}
