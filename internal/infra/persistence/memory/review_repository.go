package memory

import (
	"context"

	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/repository"
)

type reviewRepository struct {
	store *Store
	uow   *unitOfWork
}

// NewReviewRepository creates a review repository outside any unit of work.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) CreateReview(_ context.Context, review *entity.Review) error {
	r.store.stamp(&review.CreatedAt)

	created := r.store.reviews.Create(review)
	r.uow.onRollback(func() { r.store.reviews.Delete(created.ID) })

	return nil
}

func (r *reviewRepository) FindReviewsByProperty(_ context.Context, propertyID int64) ([]*entity.Review, error) {
	return r.store.reviews.Where(func(rv *entity.Review) bool {
		return rv.PropertyID == propertyID
	}), nil
}
