package memory

import (
	"context"

	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/repository"
)

type favoriteRepository struct {
	store *Store
	uow   *unitOfWork
}

// NewFavoriteRepository creates a favorite repository outside any unit of work.
func NewFavoriteRepository(store *Store) repository.FavoriteRepository {
	return &favoriteRepository{store: store}
}

func (r *favoriteRepository) CreateFavorite(_ context.Context, favorite *entity.Favorite) (*entity.Favorite, error) {
	r.store.stamp(&favorite.CreatedAt)

	stored, created := r.store.favorites.CreateUnique(favorite, func(existing *entity.Favorite) bool {
		return existing.UserID == favorite.UserID && existing.PropertyID == favorite.PropertyID
	})
	if created {
		r.uow.onRollback(func() { r.store.favorites.Delete(stored.ID) })
	}

	return stored, nil
}

func (r *favoriteRepository) FindFavorite(_ context.Context, userID, propertyID int64) (*entity.Favorite, error) {
	favorite, ok := r.store.favorites.First(func(f *entity.Favorite) bool {
		return f.UserID == userID && f.PropertyID == propertyID
	})
	if !ok {
		return nil, repository.ErrFavoriteNotFound
	}

	return favorite, nil
}

func (r *favoriteRepository) FindFavoritesByUser(_ context.Context, userID int64) ([]*entity.Favorite, error) {
	return r.store.favorites.Where(func(f *entity.Favorite) bool {
		return f.UserID == userID
	}), nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, userID, propertyID int64) error {
	favorite, err := r.FindFavorite(ctx, userID, propertyID)
	if err != nil {
		return err
	}

	removed, ok := r.store.favorites.Delete(favorite.ID)
	if !ok {
		return repository.ErrFavoriteNotFound
	}
	r.uow.onRollback(func() { r.store.favorites.Restore(removed) })

	return nil
}
