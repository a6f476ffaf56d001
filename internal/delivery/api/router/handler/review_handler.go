package handler

import (
	"log/slog"
	"net/http"

	"stayscape/internal/delivery/api/middleware"
	"stayscape/internal/delivery/api/response"
	"stayscape/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves property reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC, logger: params.Logger}
}

// ReviewRequest represents the request body for reviewing a property.
// The rating range is enforced by the review use case.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment" validate:"required,max=2000"`
}

// ListReviews returns the reviews of a property.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, reviews)
}

// CreateReview records the caller's review of a property.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	review, err := h.reviewUC.RecordReview(c.Request().Context(), &usecase.RecordReviewInput{
		PropertyID: id,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}
