package authhandlers

import (
	"context"

	authservice "github.com/tomato-game/tomato-api/app/modules/auth/application"
	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

// FakeAuthService is a func-field fake for the auth service.
type FakeAuthService struct {
	LoginFunc           func(ctx context.Context, email, password string) (*authservice.LoginResponse, error)
	ResolveIdentityFunc func(ctx context.Context, tokenString string) (*userdb.User, error)
}

func (f *FakeAuthService) Login(ctx context.Context, email, password string) (*authservice.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, email, password)
	}
	return &authservice.LoginResponse{AccessToken: "fake-token", TokenType: authservice.TokenTypeBearer}, nil
}

func (f *FakeAuthService) ResolveIdentity(ctx context.Context, tokenString string) (*userdb.User, error) {
	if f.ResolveIdentityFunc != nil {
		return f.ResolveIdentityFunc(ctx, tokenString)
	}
	return nil, authservice.ErrUnauthorized
}
