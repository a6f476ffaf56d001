package postgres

import (
	"context"

	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	"stayscape/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// CreateFavorite inserts the pair, or returns the row that already holds it.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error) {
	favoriteM := &model.FavoriteModel{
		UserID:     favorite.UserID,
		PropertyID: favorite.PropertyID,
		CreatedAt:  favorite.CreatedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
			DoNothing: true,
		}).
		Create(favoriteM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create favorite")
	}

	if result.RowsAffected == 0 {
		return repo.FindFavorite(ctx, favorite.UserID, favorite.PropertyID)
	}

	return toFavoriteDomain(favoriteM), nil
}

// FindFavorite retrieves the favorite for a (user, property) pair.
func (repo *favoriteRepository) FindFavorite(ctx context.Context, userID, propertyID int64) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindFavoritesByUser retrieves all favorites of a user ordered by ID.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, f := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(f))
	}

	return favorites, nil
}

// DeleteFavorite removes the favorite for a (user, property) pair.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID, propertyID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	return &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		PropertyID: data.PropertyID,
		CreatedAt:  data.CreatedAt,
	}
}
