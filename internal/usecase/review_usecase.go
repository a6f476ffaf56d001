package usecase

import (
	"context"

	"stayscape/internal/domain/entity"
)

// RecordReviewInput defines a guest review of a property.
type RecordReviewInput struct {
	PropertyID int64
	UserID     int64
	Rating     int
	Comment    string
}

// ReviewUsecase defines the interface for reviews and the rating aggregate they drive.
type ReviewUsecase interface {
	// RecordReview stores the review and refreshes the property's rating and review count.
	RecordReview(ctx context.Context, input *RecordReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, propertyID int64) ([]*entity.Review, error)
}
