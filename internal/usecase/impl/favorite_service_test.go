package impl

import (
	"context"
	"testing"

	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	mockRepo "stayscape/internal/mocks/repository"
	"stayscape/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
	propertyRepo *mockRepo.MockPropertyRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)

	return favoriteServiceFixtures{
		service: NewFavoriteService(FavoriteServiceParams{
			FavoriteRepo: favoriteRepo,
			PropertyRepo: propertyRepo,
			Logger:       newDiscardLogger(),
		}),
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
	}
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	t.Run("saves pair", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		ctx := context.Background()

		fx.propertyRepo.EXPECT().FindPropertyByID(ctx, int64(1)).Return(&entity.Property{ID: 1}, nil)
		fx.favoriteRepo.EXPECT().
			CreateFavorite(ctx, mock.MatchedBy(func(f *entity.Favorite) bool { return f.UserID == 7 && f.PropertyID == 1 })).
			Return(&entity.Favorite{ID: 5, UserID: 7, PropertyID: 1}, nil)

		fav, err := fx.service.AddFavorite(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5), fav.ID)
	})

	t.Run("unknown property", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		ctx := context.Background()

		fx.propertyRepo.EXPECT().FindPropertyByID(ctx, int64(9)).Return(nil, repository.ErrPropertyNotFound)

		_, err := fx.service.AddFavorite(ctx, 7, 9)
		assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
	})
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().DeleteFavorite(ctx, int64(7), int64(1)).Return(nil).Once()
	fx.favoriteRepo.EXPECT().DeleteFavorite(ctx, int64(7), int64(1)).Return(repository.ErrFavoriteNotFound).Once()

	require.NoError(t, fx.service.RemoveFavorite(ctx, 7, 1))
	assert.ErrorIs(t, fx.service.RemoveFavorite(ctx, 7, 1), domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().FindFavorite(ctx, int64(7), int64(1)).Return(&entity.Favorite{ID: 1}, nil)
	fx.favoriteRepo.EXPECT().FindFavorite(ctx, int64(7), int64(2)).Return(nil, repository.ErrFavoriteNotFound)

	yes, err := fx.service.IsFavorite(ctx, 7, 1)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := fx.service.IsFavorite(ctx, 7, 2)
	require.NoError(t, err)
	assert.False(t, no)
}

func TestFavoriteService_ListFavorites_SkipsDeletedProperties(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().FindFavoritesByUser(ctx, int64(7)).Return([]*entity.Favorite{
		{ID: 1, UserID: 7, PropertyID: 1},
		{ID: 2, UserID: 7, PropertyID: 2},
	}, nil)
	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, int64(1)).Return(nil, repository.ErrPropertyNotFound)
	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, int64(2)).Return(&entity.Property{ID: 2}, nil)

	got, err := fx.service.ListFavorites(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].Property.ID)
	assert.Equal(t, int64(2), got[0].Favorite.ID)
}
