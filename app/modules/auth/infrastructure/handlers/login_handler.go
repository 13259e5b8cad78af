package authhandlers

import (
	"errors"
	"net/http"

	authservice "github.com/tomato-game/tomato-api/app/modules/auth/application"
)

// HandleLogin authenticates a user and returns an access token.
// The request body is the OAuth2 password form: "username" carries the email.
func (h *AuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid form body")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		writeDetail(w, http.StatusBadRequest, "username and password are required")
		return
	}

	resp, err := h.service.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			writeDetail(w, http.StatusForbidden, "invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "Login failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
