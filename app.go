package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/tomato-game/tomato-api/app/modules/auth"
	authhandlers "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/handlers"
	"github.com/tomato-game/tomato-api/app/modules/score"
	"github.com/tomato-game/tomato-api/app/modules/user"
	"github.com/tomato-game/tomato-api/config"
	"github.com/tomato-game/tomato-api/internal/db/bundb"
	"github.com/tomato-game/tomato-api/internal/observability/metrics"
)

// App holds the wired application: config, database, modules, and the router.
type App struct {
	Cfg    *config.Config
	Router chi.Router

	db          *bundb.DBService
	authModule  *auth.Module
	userModule  *user.Module
	scoreModule *score.Module
	logger      *slog.Logger
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	dbService, err := bundb.NewDBService(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	if err := bundb.RunMigrations(ctx, dbService.GetDB()); err != nil {
		dbService.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	httpMetrics := metrics.New()

	router := chi.NewRouter()
	router.Use(httpMetrics.Middleware)
	router.Use(authhandlers.CORSMiddleware(cfg.HTTP.AllowedOrigins))

	// Module wiring. Auth first: user and score consume its middleware.
	authModule := auth.NewModule(cfg, dbService.User, router, logger)
	userModule := user.NewModule(dbService.User, authModule.Hasher(), authModule.Handlers(), router, logger)
	scoreModule := score.NewModule(dbService.Score, authModule.Handlers(), router, logger)

	registerRootRoutes(router, httpMetrics, dbService)

	return &App{
		Cfg:         cfg,
		Router:      router,
		db:          dbService,
		authModule:  authModule,
		userModule:  userModule,
		scoreModule: scoreModule,
		logger:      logger,
	}, nil
}

// DB returns the database service.
func (a *App) DB() *bundb.DBService {
	return a.db
}

// Close releases the application's resources.
func (a *App) Close() error {
	return a.db.Close()
}
