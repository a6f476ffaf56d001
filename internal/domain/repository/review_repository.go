package repository

import (
	"context"

	"stayscape/internal/domain/entity"
)

// ReviewRepository defines the interface for review-related database operations.
// Reviews are immutable, so there is no update or delete.
type ReviewRepository interface {
	// CreateReview persists a new review and assigns its ID.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewsByProperty retrieves all reviews of a property ordered by ID.
	FindReviewsByProperty(ctx context.Context, propertyID int64) ([]*entity.Review, error)
}
