package userservice

import (
	"context"

	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

// Service defines the user service interface.
type Service interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, email, username, password string) (*userdb.User, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id int64) (*userdb.User, error)

	// ListUsers retrieves a page of users.
	ListUsers(ctx context.Context, skip, limit int) ([]userdb.User, error)

	// UpdateUser updates profile fields; a non-empty password is re-hashed.
	UpdateUser(ctx context.Context, id int64, email, username, password string) (*userdb.User, error)

	// DeleteUser deletes a user and, via cascade, their scores.
	DeleteUser(ctx context.Context, id int64) (*userdb.User, error)
}
