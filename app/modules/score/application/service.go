package scoreservice

import (
	"context"
	"log/slog"

	scoredb "github.com/tomato-game/tomato-api/app/modules/score/infrastructure/repositories"
)

// service implements the Service interface.
type service struct {
	repo   scoredb.Repository
	logger *slog.Logger
}

// NewService creates a new score service.
func NewService(repo scoredb.Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// SubmitScore records a score event. The owner is always the acting user;
// callers cannot submit on someone else's behalf.
func (s *service) SubmitScore(ctx context.Context, ownerID, value int64) (*scoredb.Score, error) {
	score := &scoredb.Score{
		Score:   value,
		OwnerID: ownerID,
	}

	if err := s.repo.InsertScore(ctx, score); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Score submitted", "score_id", score.ID, "owner_id", ownerID, "value", value)

	// Return the stored row so the response carries the owner and the
	// server-assigned timestamp.
	return s.repo.GetScore(ctx, score.ID)
}

// GetScore retrieves a score by id.
func (s *service) GetScore(ctx context.Context, id int64) (*scoredb.Score, error) {
	return s.repo.GetScore(ctx, id)
}

// ListScores retrieves all recorded scores.
func (s *service) ListScores(ctx context.Context) ([]scoredb.Score, error) {
	return s.repo.ListScores(ctx)
}
