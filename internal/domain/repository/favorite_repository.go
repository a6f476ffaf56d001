package repository

import (
	"context"

	"stayscape/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrFavoriteNotFound is returned when no favorite exists for a (user, property) pair.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// CreateFavorite persists a favorite, or returns the existing one for the same pair.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error)

	// FindFavorite retrieves the favorite for a (user, property) pair.
	FindFavorite(ctx context.Context, userID, propertyID int64) (*entity.Favorite, error)

	// FindFavoritesByUser retrieves all favorites of a user ordered by ID.
	FindFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error)

	// DeleteFavorite removes the favorite for a (user, property) pair.
	DeleteFavorite(ctx context.Context, userID, propertyID int64) error
}
