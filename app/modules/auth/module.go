package auth

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	authservice "github.com/tomato-game/tomato-api/app/modules/auth/application"
	authhandlers "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/handlers"
	"github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/hasher"
	authjwt "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/jwt"
	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
	"github.com/tomato-game/tomato-api/config"
)

// Module represents the auth module.
type Module struct {
	service  authservice.Service
	handlers *authhandlers.AuthHandlers
	hasher   hasher.PasswordHasher
	logger   *slog.Logger
}

// NewModule creates a new auth module and registers its HTTP routes.
func NewModule(
	cfg *config.Config,
	userRepo userdb.Repository,
	httpRouter chi.Router,
	logger *slog.Logger,
) *Module {
	jwtProvider := authjwt.NewProvider(cfg.JWT.Secret)
	passwordHasher := hasher.NewBcryptHasher()

	serviceConfig := authservice.Config{
		AccessTTL: cfg.JWT.AccessTTL,
	}

	service := authservice.NewService(
		jwtProvider,
		passwordHasher,
		userRepo,
		serviceConfig,
		logger,
	)

	handlers := authhandlers.NewAuthHandlers(service, logger)

	if httpRouter != nil {
		limiter := authhandlers.NewIPRateLimiter(5, 10)
		httpRouter.Group(func(r chi.Router) {
			r.Use(authhandlers.RateLimitMiddleware(limiter))
			r.Post("/login", handlers.HandleLogin)
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
		hasher:   passwordHasher,
		logger:   logger,
	}
}

// Service returns the auth service for use by other modules.
func (m *Module) Service() authservice.Service {
	return m.service
}

// Handlers returns the HTTP handlers, including the RequireAuth middleware.
func (m *Module) Handlers() *authhandlers.AuthHandlers {
	return m.handlers
}

// Hasher returns the password hasher shared with the user module.
func (m *Module) Hasher() hasher.PasswordHasher {
	return m.hasher
}
