package scoremigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating scores table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS scores (
				id BIGSERIAL PRIMARY KEY,
				score BIGINT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				owner_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE
			)
		`)
		if err != nil {
			return err
		}

		_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_scores_owner_id ON scores (owner_id)`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scores table...")

		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS scores`)
		return err
	})
}
