package usecase

import (
	"context"

	"stayscape/internal/domain/entity"
)

// FavoriteUsecase defines the interface for saved listings.
type FavoriteUsecase interface {
	// AddFavorite is idempotent and returns the existing pair when already saved.
	AddFavorite(ctx context.Context, userID, propertyID int64) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, propertyID int64) error
	IsFavorite(ctx context.Context, userID, propertyID int64) (bool, error)

	// ListFavorites skips favorites whose property has since been deleted.
	ListFavorites(ctx context.Context, userID int64) ([]*entity.FavoriteProperty, error)
}
