package authservice

import (
	"context"

	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

// Service defines the authentication service interface.
type Service interface {
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, email, password string) (*LoginResponse, error)

	// ResolveIdentity resolves a bearer token to the acting user.
	ResolveIdentity(ctx context.Context, tokenString string) (*userdb.User, error)
}

// LoginResponse carries the issued token and its fixed type label.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
