package userdb

import "context"

// FakeRepository is a func-field fake for tests in dependent modules.
type FakeRepository struct {
	CreateUserFunc     func(ctx context.Context, user *User) error
	GetUserByIDFunc    func(ctx context.Context, id int64) (*User, error)
	GetUserByEmailFunc func(ctx context.Context, email string) (*User, error)
	ListUsersFunc      func(ctx context.Context, offset, limit int) ([]User, error)
	UpdateUserFunc     func(ctx context.Context, user *User) error
	DeleteUserFunc     func(ctx context.Context, id int64) error
}

func (f *FakeRepository) CreateUser(ctx context.Context, user *User) error {
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, user)
	}
	return nil
}

func (f *FakeRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	if f.GetUserByIDFunc != nil {
		return f.GetUserByIDFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if f.GetUserByEmailFunc != nil {
		return f.GetUserByEmailFunc(ctx, email)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) ListUsers(ctx context.Context, offset, limit int) ([]User, error) {
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (f *FakeRepository) UpdateUser(ctx context.Context, user *User) error {
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, user)
	}
	return nil
}

func (f *FakeRepository) DeleteUser(ctx context.Context, id int64) error {
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, id)
	}
	return nil
}
