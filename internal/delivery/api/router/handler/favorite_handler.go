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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the caller's saved properties.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: params.FavoriteUC, logger: params.Logger}
}

// AddFavoriteRequest represents the request body for saving a property
type AddFavoriteRequest struct {
	PropertyID int64 `json:"property_id" validate:"required,gt=0"`
}

// FavoriteStatusResponse reports whether a property is saved
type FavoriteStatusResponse struct {
	PropertyID int64 `json:"property_id"`
	IsFavorite bool  `json:"is_favorite"`
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, favorites)
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, req.PropertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := parseIDParam(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, propertyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CheckFavorite reports whether the caller saved a property.
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := parseIDParam(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	saved, err := h.favoriteUC.IsFavorite(c.Request().Context(), userID, propertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FavoriteStatusResponse{PropertyID: propertyID, IsFavorite: saved})
}
