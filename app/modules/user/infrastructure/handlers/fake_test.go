package userhandlers

import (
	"context"

	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

// FakeUserService is a func-field fake for the user service.
type FakeUserService struct {
	RegisterFunc   func(ctx context.Context, email, username, password string) (*userdb.User, error)
	GetUserFunc    func(ctx context.Context, id int64) (*userdb.User, error)
	ListUsersFunc  func(ctx context.Context, skip, limit int) ([]userdb.User, error)
	UpdateUserFunc func(ctx context.Context, id int64, email, username, password string) (*userdb.User, error)
	DeleteUserFunc func(ctx context.Context, id int64) (*userdb.User, error)
}

func (f *FakeUserService) Register(ctx context.Context, email, username, password string) (*userdb.User, error) {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, email, username, password)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserService) GetUser(ctx context.Context, id int64) (*userdb.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserService) ListUsers(ctx context.Context, skip, limit int) ([]userdb.User, error) {
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx, skip, limit)
	}
	return nil, nil
}

func (f *FakeUserService) UpdateUser(ctx context.Context, id int64, email, username, password string) (*userdb.User, error) {
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, id, email, username, password)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserService) DeleteUser(ctx context.Context, id int64) (*userdb.User, error) {
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, id)
	}
	return nil, userdb.ErrNotFound
}
