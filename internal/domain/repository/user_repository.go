// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stayscape/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user and assigns its ID.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its ID.
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)

	// FindUserByUsername retrieves a user by its unique username.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)
}
