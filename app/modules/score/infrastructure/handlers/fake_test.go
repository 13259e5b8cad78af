package scorehandlers

import (
	"context"

	scoredb "github.com/tomato-game/tomato-api/app/modules/score/infrastructure/repositories"
)

// FakeScoreService is a func-field fake for the score service.
type FakeScoreService struct {
	SubmitScoreFunc func(ctx context.Context, ownerID, value int64) (*scoredb.Score, error)
	GetScoreFunc    func(ctx context.Context, id int64) (*scoredb.Score, error)
	ListScoresFunc  func(ctx context.Context) ([]scoredb.Score, error)
}

func (f *FakeScoreService) SubmitScore(ctx context.Context, ownerID, value int64) (*scoredb.Score, error) {
	if f.SubmitScoreFunc != nil {
		return f.SubmitScoreFunc(ctx, ownerID, value)
	}
	return &scoredb.Score{ID: 1, Score: value, OwnerID: ownerID}, nil
}

func (f *FakeScoreService) GetScore(ctx context.Context, id int64) (*scoredb.Score, error) {
	if f.GetScoreFunc != nil {
		return f.GetScoreFunc(ctx, id)
	}
	return nil, scoredb.ErrNotFound
}

func (f *FakeScoreService) ListScores(ctx context.Context) ([]scoredb.Score, error) {
	if f.ListScoresFunc != nil {
		return f.ListScoresFunc(ctx)
	}
	return nil, nil
}
