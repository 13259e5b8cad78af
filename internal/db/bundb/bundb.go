// Package bundb wires the bun ORM to Postgres for the whole application.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	scoredb "github.com/tomato-game/tomato-api/app/modules/score/infrastructure/repositories"
	scoremigrations "github.com/tomato-game/tomato-api/app/modules/score/infrastructure/repositories/migrations"
	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
	usermigrations "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories/migrations"
)

// DBService bundles the shared bun connection and the per-module repositories.
type DBService struct {
	User  userdb.Repository
	Score scoredb.Repository
	db    *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// Close closes the underlying connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}

// NewDBService connects to Postgres and constructs the repositories.
func NewDBService(ctx context.Context, dsn string) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel((*userdb.User)(nil))
	db.RegisterModel((*scoredb.Score)(nil))

	return &DBService{
		User:  &userdb.UserDBImpl{DB: db},
		Score: &scoredb.ScoreDBImpl{DB: db},
		db:    db,
	}, nil
}

// Migrators returns the per-module migrators, keyed by module name.
// Score migrations depend on the users table, so callers iterating the map
// for "migrate up" should apply user first; RunMigrations does.
func Migrators(db *bun.DB) map[string]*migrate.Migrator {
	return map[string]*migrate.Migrator{
		"user":  migrate.NewMigrator(db, usermigrations.Migrations),
		"score": migrate.NewMigrator(db, scoremigrations.Migrations),
	}
}

// RunMigrations initializes migration bookkeeping and applies all pending
// migrations in dependency order.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	ordered := []struct {
		name     string
		migrator *migrate.Migrator
	}{
		{"user", migrate.NewMigrator(db, usermigrations.Migrations)},
		{"score", migrate.NewMigrator(db, scoremigrations.Migrations)},
	}

	for _, m := range ordered {
		if err := m.migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init %s migrations: %w", m.name, err)
		}
		if _, err := m.migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to apply %s migrations: %w", m.name, err)
		}
	}

	return nil
}
