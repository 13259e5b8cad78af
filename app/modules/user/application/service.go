package userservice

import (
	"context"
	"log/slog"

	"github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/hasher"
	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

// service implements the Service interface.
type service struct {
	repo   userdb.Repository
	hasher hasher.PasswordHasher
	logger *slog.Logger
}

// NewService creates a new user service.
func NewService(repo userdb.Repository, passwordHasher hasher.PasswordHasher, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		hasher: passwordHasher,
		logger: logger,
	}
}

// Register creates a new user. The plaintext password never reaches the
// repository; only its hash is stored.
func (s *service) Register(ctx context.Context, email, username, password string) (*userdb.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &userdb.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "User registered", "user_id", user.ID)

	return user, nil
}

// GetUser retrieves a user by id.
func (s *service) GetUser(ctx context.Context, id int64) (*userdb.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// ListUsers retrieves a page of users.
func (s *service) ListUsers(ctx context.Context, skip, limit int) ([]userdb.User, error) {
	return s.repo.ListUsers(ctx, skip, limit)
}

// UpdateUser updates a user's email, username, and optionally password.
func (s *service) UpdateUser(ctx context.Context, id int64, email, username, password string) (*userdb.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email != "" {
		user.Email = email
	}
	if username != "" {
		user.Username = username
	}
	if password != "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "User updated", "user_id", user.ID)

	return user, nil
}

// DeleteUser deletes a user and returns the record as it was before deletion.
func (s *service) DeleteUser(ctx context.Context, id int64) (*userdb.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "User deleted", "user_id", id)

	return user, nil
}
