package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"stayscape/internal/delivery/api/middleware"
	"stayscape/internal/delivery/api/response"
	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC  usecase.BookingUsecase
	PropertyUC usecase.PropertyUsecase
	Logger     *slog.Logger
}

// BookingHandler holds dependencies for booking-related handlers.
type BookingHandler struct {
	bookingUC  usecase.BookingUsecase
	propertyUC usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC:  params.BookingUC,
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// CreateBookingRequest represents the request body for placing a booking
type CreateBookingRequest struct {
	PropertyID int64  `json:"property_id" validate:"required,gt=0"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Guests     int    `json:"guests" validate:"required,gte=1"`
	TotalPrice int    `json:"total_price" validate:"gte=0"`
}

// UpdateBookingStatusRequest represents the request body for a status change
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateBooking places a pending booking for the caller.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	ctx := c.Request().Context()

	property, err := h.propertyUC.GetProperty(ctx, req.PropertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if req.Guests > property.Guests {
		return response.HandleAppError(c, domainerrors.ErrGuestLimitExceeded.WithDetails(
			fmt.Sprintf("property accepts at most %d guests", property.Guests)))
	}

	booking, err := h.bookingUC.CreateBooking(ctx, &usecase.CreateBookingInput{
		PropertyID: req.PropertyID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking)
}

// ListMyBookings returns the bookings placed by the caller.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookings, err := h.bookingUC.ListUserBookings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, bookings)
}

// GetBooking returns a booking visible to its guest or the host.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), id, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// UpdateBookingStatus moves a booking to another status.
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	var req UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	booking, err := h.bookingUC.UpdateBookingStatus(c.Request().Context(), &usecase.UpdateBookingStatusInput{
		BookingID: id,
		ActorID:   userID,
		Status:    entity.BookingStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// GetCheckInQR renders the check-in code of a confirmed booking as PNG.
func (h *BookingHandler) GetCheckInQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	png, err := h.bookingUC.BookingCheckInQR(c.Request().Context(), id, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListPropertyBookings returns every booking of a property to its host.
func (h *BookingHandler) ListPropertyBookings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	bookings, err := h.bookingUC.ListPropertyBookings(c.Request().Context(), id, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, bookings)
}
