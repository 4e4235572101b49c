package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adikhanov/bondify-backend/internal/config"
	jwtutil "github.com/adikhanov/bondify-backend/pkg/jwt"
	"github.com/adikhanov/bondify-backend/pkg/logger"
	"github.com/adikhanov/bondify-backend/pkg/middleware"
)

// AuthHandler manages token issuance and session teardown.
type AuthHandler struct {
	Config *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{Config: cfg}
}

// GenerateTokenHandler signs a bearer token for the caller-supplied identity.
func (h *AuthHandler) GenerateTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Photo string `json:"photo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode token request")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	token, err := jwtutil.GenerateToken(payload.Email, payload.Name, payload.Photo, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to generate token")
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	logger.Log.WithField("email", payload.Email).Info("Token issued")
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// MeHandler echoes the verified claims of the calling token.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "forbidden access")
		return
	}
	respondJSON(w, http.StatusOK, claims)
}

// LogoutHandler clears the auth cookie. Cookie security flags depend on the
// environment mode.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	production := h.Config.Env == "production"

	sameSite := http.SameSiteStrictMode
	if production {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   production,
		SameSite: sameSite,
	})

	logger.Log.Info("User logged out")
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HealthHandler is the liveness probe.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Bondify is running"))
}
