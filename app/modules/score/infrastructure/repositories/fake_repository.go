package scoredb

import "context"

// FakeRepository is a func-field fake for tests in dependent modules.
type FakeRepository struct {
	InsertScoreFunc func(ctx context.Context, score *Score) error
	GetScoreFunc    func(ctx context.Context, id int64) (*Score, error)
	ListScoresFunc  func(ctx context.Context) ([]Score, error)
}

func (f *FakeRepository) InsertScore(ctx context.Context, score *Score) error {
	if f.InsertScoreFunc != nil {
		return f.InsertScoreFunc(ctx, score)
	}
	return nil
}

func (f *FakeRepository) GetScore(ctx context.Context, id int64) (*Score, error) {
	if f.GetScoreFunc != nil {
		return f.GetScoreFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) ListScores(ctx context.Context) ([]Score, error) {
	if f.ListScoresFunc != nil {
		return f.ListScoresFunc(ctx)
	}
	return nil, nil
}
