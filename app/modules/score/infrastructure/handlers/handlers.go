package scorehandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	authhandlers "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/handlers"
	scoreservice "github.com/tomato-game/tomato-api/app/modules/score/application"
	scoredb "github.com/tomato-game/tomato-api/app/modules/score/infrastructure/repositories"
)

// ScoreHandlers implements the HTTP surface of the score module.
type ScoreHandlers struct {
	service scoreservice.Service
	logger  *slog.Logger
}

// NewScoreHandlers creates a new ScoreHandlers instance.
func NewScoreHandlers(service scoreservice.Service, logger *slog.Logger) *ScoreHandlers {
	return &ScoreHandlers{
		service: service,
		logger:  logger,
	}
}

// CreateScoreRequest is the score submission payload.
type CreateScoreRequest struct {
	Score int64 `json:"score"`
}

// CreateScore records a score for the authenticated user.
func (h *ScoreHandlers) CreateScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := authhandlers.UserFromContext(ctx)
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var req CreateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	score, err := h.service.SubmitScore(ctx, user.ID, req.Score)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to submit score", "error", err, "owner_id", user.ID)
		writeDetail(w, http.StatusInternalServerError, "failed to create score")
		return
	}

	writeJSON(w, http.StatusCreated, score)
}

// ListScores returns all recorded scores with their owners.
func (h *ScoreHandlers) ListScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scores, err := h.service.ListScores(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list scores", "error", err)
		writeDetail(w, http.StatusInternalServerError, "failed to list scores")
		return
	}

	if len(scores) == 0 {
		writeDetail(w, http.StatusNotFound, "no scores found")
		return
	}

	writeJSON(w, http.StatusOK, scores)
}

// GetScore returns a single score by id.
func (h *ScoreHandlers) GetScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "scoreID"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid score id")
		return
	}

	score, err := h.service.GetScore(ctx, id)
	if err != nil {
		if errors.Is(err, scoredb.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("score with id: %d was not found", id))
			return
		}
		h.logger.ErrorContext(ctx, "Failed to get score", "error", err, "score_id", id)
		writeDetail(w, http.StatusInternalServerError, "failed to get score")
		return
	}

	writeJSON(w, http.StatusOK, score)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
