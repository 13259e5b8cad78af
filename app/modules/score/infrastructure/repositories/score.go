package scoredb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ScoreDBImpl is a repository for score data operations.
type ScoreDBImpl struct {
	DB *bun.DB
}

// InsertScore records a new score event.
func (db *ScoreDBImpl) InsertScore(ctx context.Context, score *Score) error {
	_, err := db.DB.NewInsert().Model(score).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}
	return nil
}

// GetScore retrieves a score by id, with its owner loaded.
func (db *ScoreDBImpl) GetScore(ctx context.Context, id int64) (*Score, error) {
	score := &Score{}
	err := db.DB.NewSelect().
		Model(score).
		Relation("Owner").
		Where("s.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	return score, nil
}

// ListScores retrieves all scores with their owners, newest first.
func (db *ScoreDBImpl) ListScores(ctx context.Context) ([]Score, error) {
	var scores []Score
	err := db.DB.NewSelect().
		Model(&scores).
		Relation("Owner").
		Order("s.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	return scores, nil
}
