package scoredb

import "context"

// Repository defines the methods for interacting with the score database.
type Repository interface {
	InsertScore(ctx context.Context, score *Score) error
	GetScore(ctx context.Context, id int64) (*Score, error)
	ListScores(ctx context.Context) ([]Score, error)
}
