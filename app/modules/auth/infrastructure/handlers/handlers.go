package authhandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	authservice "github.com/tomato-game/tomato-api/app/modules/auth/application"
)

// AuthHandlers implements the HTTP surface of the auth module.
type AuthHandlers struct {
	service authservice.Service
	logger  *slog.Logger
}

// NewAuthHandlers creates a new AuthHandlers instance.
func NewAuthHandlers(service authservice.Service, logger *slog.Logger) *AuthHandlers {
	return &AuthHandlers{
		service: service,
		logger:  logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
