package score

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	authhandlers "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/handlers"
	scoreservice "github.com/tomato-game/tomato-api/app/modules/score/application"
	scorehandlers "github.com/tomato-game/tomato-api/app/modules/score/infrastructure/handlers"
	scoredb "github.com/tomato-game/tomato-api/app/modules/score/infrastructure/repositories"
)

// Module represents the score module.
type Module struct {
	service  scoreservice.Service
	handlers *scorehandlers.ScoreHandlers
	logger   *slog.Logger
}

// NewModule creates a new score module and registers its HTTP routes.
// The whole score surface requires authentication.
func NewModule(
	repo scoredb.Repository,
	auth *authhandlers.AuthHandlers,
	httpRouter chi.Router,
	logger *slog.Logger,
) *Module {
	service := scoreservice.NewService(repo, logger)
	handlers := scorehandlers.NewScoreHandlers(service, logger)

	if httpRouter != nil {
		httpRouter.Route("/score", func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Post("/", handlers.CreateScore)
			r.Get("/", handlers.ListScores)
			r.Get("/{scoreID}", handlers.GetScore)
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
		logger:   logger,
	}
}

// Service returns the score service.
func (m *Module) Service() scoreservice.Service {
	return m.service
}
