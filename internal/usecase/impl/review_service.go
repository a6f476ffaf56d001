package impl

import (
	"context"
	"fmt"
	"log/slog"

	"stayscape/config"
	deliverycontext "stayscape/internal/delivery/context"
	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	"stayscape/internal/domain/service"
	"stayscape/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinRating = 1
	defaultMaxRating = 10
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	cache      service.PropertyCache
	publisher  service.EventPublisher
	minRating  int
	maxRating  int
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Cache      service.PropertyCache
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	srv := &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		cache:      params.Cache,
		publisher:  params.Publisher,
		minRating:  defaultMinRating,
		maxRating:  defaultMaxRating,
		logger:     params.Logger,
	}

	if params.Config != nil && params.Config.Review != nil {
		srv.minRating = params.Config.Review.MinRating
		srv.maxRating = params.Config.Review.MaxRating
	}

	return srv
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordReview stores a review and recomputes the property's rating from all of its reviews.
// Both writes happen in one unit of work while the property is locked.
func (srv *reviewService) RecordReview(ctx context.Context, input *usecase.RecordReviewInput) (*entity.Review, error) {
	var (
		created *entity.Review
		summary entity.RatingSummary
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.PropertyRepository()

		property, err := propertyRepo.LockPropertyByID(ctx, input.PropertyID)
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock property")
		}

		if input.Rating < srv.minRating || input.Rating > srv.maxRating {
			return domainerrors.ErrInvalidRating.WithDetails(
				fmt.Sprintf("rating must be between %d and %d", srv.minRating, srv.maxRating))
		}

		reviewRepo := repoFactory.ReviewRepository()
		review := &entity.Review{
			PropertyID: property.ID,
			UserID:     input.UserID,
			Rating:     input.Rating,
			Comment:    input.Comment,
		}
		if err := reviewRepo.CreateReview(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		reviews, err := reviewRepo.FindReviewsByProperty(ctx, property.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find reviews by property")
		}

		summary = entity.SummarizeRatings(reviews)
		if err := propertyRepo.UpdateRatingSummary(ctx, property.ID, summary); err != nil {
			return errors.Wrap(err, "failed to update rating summary")
		}

		created = review

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute record review transaction")
	}

	srv.cache.Invalidate(ctx, created.PropertyID)

	srv.log(ctx).Info("Review recorded",
		slog.Int64("reviewID", created.ID),
		slog.Int64("propertyID", created.PropertyID),
		slog.Int("reviewCount", summary.ReviewCount))

	payload := map[string]any{
		"review_id":    created.ID,
		"rating":       created.Rating,
		"review_count": summary.ReviewCount,
	}
	if summary.Rating != nil {
		payload["property_rating"] = *summary.Rating
	}
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventReviewCreated, created.PropertyID, created.UserID, payload)

	return created, nil
}

// ListReviews returns the reviews of a property in creation order.
func (srv *reviewService) ListReviews(ctx context.Context, propertyID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindReviewsByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by property")
	}

	return reviews, nil
}
