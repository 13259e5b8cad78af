package user

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	authhandlers "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/handlers"
	"github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/hasher"
	userservice "github.com/tomato-game/tomato-api/app/modules/user/application"
	userhandlers "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/handlers"
	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

// Module represents the user module.
type Module struct {
	service  userservice.Service
	handlers *userhandlers.UserHandlers
	logger   *slog.Logger
}

// NewModule creates a new user module and registers its HTTP routes.
// Registration is public; everything else about users requires authentication
// is decided per-route below, matching the original API surface.
func NewModule(
	repo userdb.Repository,
	passwordHasher hasher.PasswordHasher,
	auth *authhandlers.AuthHandlers,
	httpRouter chi.Router,
	logger *slog.Logger,
) *Module {
	service := userservice.NewService(repo, passwordHasher, logger)
	handlers := userhandlers.NewUserHandlers(service, logger)

	if httpRouter != nil {
		httpRouter.Route("/users", func(r chi.Router) {
			r.Post("/", handlers.CreateUser)
			r.Get("/", handlers.ListUsers)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth)
				r.Get("/me", handlers.GetCurrentUser)
			})

			r.Get("/{userID}", handlers.GetUser)
			r.Put("/{userID}", handlers.UpdateUser)
			r.Delete("/{userID}", handlers.DeleteUser)
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
		logger:   logger,
	}
}

// Service returns the user service.
func (m *Module) Service() userservice.Service {
	return m.service
}
