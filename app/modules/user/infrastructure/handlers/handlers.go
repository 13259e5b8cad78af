package userhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	authhandlers "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/handlers"
	userservice "github.com/tomato-game/tomato-api/app/modules/user/application"
	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

const defaultListLimit = 100

// UserHandlers implements the HTTP surface of the user module.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service userservice.Service, logger *slog.Logger) *UserHandlers {
	return &UserHandlers{
		service: service,
		logger:  logger,
	}
}

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the profile update payload.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserOut is the user representation returned to clients. It never carries
// the password hash.
type UserOut struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserOut(u *userdb.User) UserOut {
	return UserOut{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// CreateUser registers a new user.
func (h *UserHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		writeDetail(w, http.StatusBadRequest, "email, username and password are required")
		return
	}

	user, err := h.service.Register(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userdb.ErrDuplicateEmail) {
			writeDetail(w, http.StatusConflict, "email already registered")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to register user", "error", err)
		writeDetail(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, toUserOut(user))
}

// GetCurrentUser returns the authenticated user.
func (h *UserHandlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := authhandlers.UserFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	writeJSON(w, http.StatusOK, toUserOut(user))
}

// GetUser retrieves a user by id.
func (h *UserHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.service.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to get user", "error", err, "user_id", id)
		writeDetail(w, http.StatusInternalServerError, "failed to get user")
		return
	}

	writeJSON(w, http.StatusOK, toUserOut(user))
}

// ListUsers retrieves a page of users via skip/limit query parameters.
func (h *UserHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultListLimit
	}

	users, err := h.service.ListUsers(ctx, skip, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list users", "error", err)
		writeDetail(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	if len(users) == 0 {
		writeDetail(w, http.StatusNotFound, "no users found")
		return
	}

	out := make([]UserOut, 0, len(users))
	for i := range users {
		out = append(out, toUserOut(&users[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// UpdateUser updates a user's profile; a supplied password is re-hashed.
func (h *UserHandlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.UpdateUser(ctx, id, req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, userdb.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "user not found")
		case errors.Is(err, userdb.ErrDuplicateEmail):
			writeDetail(w, http.StatusConflict, "email already registered")
		default:
			h.logger.ErrorContext(ctx, "Failed to update user", "error", err, "user_id", id)
			writeDetail(w, http.StatusInternalServerError, "failed to update user")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserOut(user))
}

// DeleteUser deletes a user; their scores cascade away with them.
func (h *UserHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.service.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to delete user", "error", err, "user_id", id)
		writeDetail(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	writeJSON(w, http.StatusOK, toUserOut(user))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
