package postgres

import (
	"context"

	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	"stayscape/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview persists a new review.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		PropertyID: review.PropertyID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindReviewsByProperty retrieves every review of a property ordered by ID.
func (repo *reviewRepository) FindReviewsByProperty(ctx context.Context, propertyID int64) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("id ASC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by property")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, r := range reviewModels {
		reviews = append(reviews, &entity.Review{
			ID:         r.ID,
			PropertyID: r.PropertyID,
			UserID:     r.UserID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
		})
	}

	return reviews, nil
}
