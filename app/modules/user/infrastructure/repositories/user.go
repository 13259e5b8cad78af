package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// UserDBImpl is a repository for user data operations.
type UserDBImpl struct {
	DB *bun.DB
}

// CreateUser creates a new user.
func (db *UserDBImpl) CreateUser(ctx context.Context, user *User) error {
	_, err := db.DB.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their numeric id.
func (db *UserDBImpl) GetUserByID(ctx context.Context, id int64) (*User, error) {
	user := &User{}
	err := db.DB.NewSelect().Model(user).Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email (the login handle).
func (db *UserDBImpl) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := db.DB.NewSelect().Model(user).Where("u.email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// ListUsers retrieves a page of users ordered by id.
func (db *UserDBImpl) ListUsers(ctx context.Context, offset, limit int) ([]User, error) {
	var users []User
	err := db.DB.NewSelect().
		Model(&users).
		Order("u.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser updates an existing user's profile and credentials.
func (db *UserDBImpl) UpdateUser(ctx context.Context, user *User) error {
	result, err := db.DB.NewUpdate().
		Model(user).
		Column("username", "email", "password", "is_active").
		WherePK().
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after update: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteUser deletes a user. Owned scores go with it via the FK cascade.
func (db *UserDBImpl) DeleteUser(ctx context.Context, id int64) error {
	result, err := db.DB.NewDelete().
		Model((*User)(nil)).
		Where("u.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after delete: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == pgerrcode.UniqueViolation
	}
	return false
}
