package impl

import (
	"context"
	"log/slog"

	deliverycontext "stayscape/internal/delivery/context"
	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	"stayscape/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	PropertyRepo repository.PropertyRepository
	Logger       *slog.Logger
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		propertyRepo: params.PropertyRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite saves a property to the user's favorites. Saving twice keeps a single entry.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, propertyID int64) (*entity.Favorite, error) {
	if _, err := srv.propertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	favorite, err := srv.favoriteRepo.CreateFavorite(ctx, &entity.Favorite{UserID: userID, PropertyID: propertyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create favorite")
	}

	srv.log(ctx).Debug("Favorite saved", slog.Int64("userID", userID), slog.Int64("propertyID", propertyID))

	return favorite, nil
}

// RemoveFavorite drops a property from the user's favorites.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, propertyID int64) error {
	err := srv.favoriteRepo.DeleteFavorite(ctx, userID, propertyID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return domainerrors.ErrFavoriteNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

// IsFavorite reports whether the user saved the property.
func (srv *favoriteService) IsFavorite(ctx context.Context, userID, propertyID int64) (bool, error) {
	_, err := srv.favoriteRepo.FindFavorite(ctx, userID, propertyID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find favorite")
	}

	return true, nil
}

// ListFavorites returns the user's favorites with their properties. Deleted properties are skipped.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID int64) ([]*entity.FavoriteProperty, error) {
	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	result := make([]*entity.FavoriteProperty, 0, len(favorites))
	for _, fav := range favorites {
		property, err := srv.propertyRepo.FindPropertyByID(ctx, fav.PropertyID)
		if errors.Is(err, repository.ErrPropertyNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find favorite property")
		}

		result = append(result, &entity.FavoriteProperty{Favorite: fav, Property: property})
	}

	return result, nil
}
