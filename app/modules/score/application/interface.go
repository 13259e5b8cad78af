package scoreservice

import (
	"context"

	scoredb "github.com/tomato-game/tomato-api/app/modules/score/infrastructure/repositories"
)

// Service defines the score service interface.
type Service interface {
	// SubmitScore records a score owned by the acting user.
	SubmitScore(ctx context.Context, ownerID, value int64) (*scoredb.Score, error)

	// GetScore retrieves a score by id.
	GetScore(ctx context.Context, id int64) (*scoredb.Score, error)

	// ListScores retrieves all recorded scores.
	ListScores(ctx context.Context) ([]scoredb.Score, error)
}
