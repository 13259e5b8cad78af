package authservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/hasher"
	authjwt "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/jwt"
	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

// TokenTypeBearer is the fixed token-type label returned on login.
const TokenTypeBearer = "bearer"

// Config holds the configuration for the auth service.
type Config struct {
	AccessTTL time.Duration
}

const defaultAccessTTL = 60 * time.Minute

// service implements the Service interface.
type service struct {
	repo        userdb.Repository
	jwtProvider authjwt.Provider
	hasher      hasher.PasswordHasher
	config      Config
	logger      *slog.Logger
}

// NewService creates a new auth service.
func NewService(
	jwtProvider authjwt.Provider,
	passwordHasher hasher.PasswordHasher,
	repo userdb.Repository,
	config Config,
	logger *slog.Logger,
) Service {
	return &service{
		repo:        repo,
		jwtProvider: jwtProvider,
		hasher:      passwordHasher,
		config:      config,
		logger:      logger,
	}
}

// Login verifies the email/password pair and issues an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			s.logger.WarnContext(ctx, "Login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.ErrorContext(ctx, "Failed to look up user for login", "error", err)
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.WarnContext(ctx, "Login attempt with wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	ttl := s.config.AccessTTL
	if ttl == 0 {
		ttl = defaultAccessTTL
	}

	token, err := s.jwtProvider.GenerateToken(user.ID, ttl)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to generate token", "error", err, "user_id", user.ID)
		return nil, err
	}

	s.logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return &LoginResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
	}, nil
}

// ResolveIdentity validates the bearer token and loads the acting user.
// A valid token for a deleted or deactivated user is rejected here rather
// than letting an absent identity leak into downstream handlers. Internal
// causes (expired vs malformed vs inactive) stay in the logs.
func (s *service) ResolveIdentity(ctx context.Context, tokenString string) (*userdb.User, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.jwtProvider.ValidateToken(tokenString)
	if err != nil {
		s.logger.WarnContext(ctx, "Token validation failed", "error", err)
		return nil, ErrUnauthorized
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			s.logger.WarnContext(ctx, "Token for nonexistent user", "user_id", claims.UserID)
			return nil, ErrUnauthorized
		}
		s.logger.ErrorContext(ctx, "Failed to load user for token", "error", err, "user_id", claims.UserID)
		return nil, ErrUnauthorized
	}

	if !user.IsActive {
		s.logger.WarnContext(ctx, "Token for deactivated user", "user_id", user.ID)
		return nil, ErrUnauthorized
	}

	return user, nil
}
