package handler

import (
	"log/slog"
	"net/http"

	"stayscape/internal/delivery/api/middleware"
	"stayscape/internal/delivery/api/response"
	"stayscape/internal/domain/repository"
	"stayscape/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC     usecase.PropertyUsecase
	AvailabilityUC usecase.AvailabilityUsecase
	BookingUC      usecase.BookingUsecase
	Logger         *slog.Logger
}

// PropertyHandler serves the listing catalogue and its calendar.
type PropertyHandler struct {
	propertyUC     usecase.PropertyUsecase
	availabilityUC usecase.AvailabilityUsecase
	bookingUC      usecase.BookingUsecase
	logger         *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC:     params.PropertyUC,
		availabilityUC: params.AvailabilityUC,
		bookingUC:      params.BookingUC,
		logger:         params.Logger,
	}
}

// PropertyRequest represents the request body for creating a property
type PropertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        int      `json:"price"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Country      string   `json:"country"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Guests       int      `json:"guests"`
	Images       []string `json:"images"`
	Amenities    []string `json:"amenities"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PropertyType string   `json:"property_type"`
}

// UpdatePropertyRequest represents a partial update. Omitted fields are left unchanged.
type UpdatePropertyRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string  `json:"description" validate:"omitempty,min=1"`
	Price        *int     `json:"price" validate:"omitempty,gte=0"`
	Location     *string  `json:"location"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Country      *string  `json:"country"`
	Bedrooms     *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms    *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	Guests       *int     `json:"guests" validate:"omitempty,gte=1"`
	Images       []string `json:"images" validate:"omitempty,dive,url"`
	Amenities    []string `json:"amenities"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,longitude"`
	PropertyType *string  `json:"property_type" validate:"omitempty,min=1"`
}

// ListProperties handles search and filtering of listings.
// A non-empty search replaces the structured filters.
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	input, err := listInputFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	properties, err := h.propertyUC.ListProperties(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, properties)
}

func listInputFromQuery(c echo.Context) (*usecase.ListPropertiesInput, error) {
	input := &usecase.ListPropertiesInput{
		Filter: repository.PropertyFilter{
			Search:       c.QueryParam("search"),
			PropertyType: c.QueryParam("propertyType"),
			Location:     c.QueryParam("location"),
		},
	}

	var err error
	if input.Filter.MinPrice, err = optionalInt(c, "minPrice"); err != nil {
		return nil, err
	}
	if input.Filter.MaxPrice, err = optionalInt(c, "maxPrice"); err != nil {
		return nil, err
	}
	if input.Filter.Bedrooms, err = optionalInt(c, "bedrooms"); err != nil {
		return nil, err
	}
	if input.Filter.Bathrooms, err = optionalInt(c, "bathrooms"); err != nil {
		return nil, err
	}

	if near := c.QueryParam("near"); near != "" {
		lat, lon, err := parseLatLon(near)
		if err != nil {
			return nil, err
		}
		input.Near = &usecase.GeoPoint{Latitude: lat, Longitude: lon}

		if input.RadiusKm, err = optionalFloat(c, "radiusKm"); err != nil {
			return nil, err
		}
	}

	return input, nil
}

// GetProperty returns a single listing.
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	property, err := h.propertyUC.GetProperty(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, property)
}

// CreateProperty lists a new property hosted by the caller.
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid property input")
	}

	input := &usecase.PropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Location:     req.Location,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Guests:       req.Guests,
		Images:       req.Images,
		Amenities:    req.Amenities,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PropertyType: req.PropertyType,
	}
	if err := c.Validate(input); err != nil {
		return response.ValidationError(c, err)
	}

	property, err := h.propertyUC.CreateProperty(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, property)
}

// UpdateProperty applies a partial update on behalf of the host.
func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	var req UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid property input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	property, err := h.propertyUC.UpdateProperty(c.Request().Context(), id, userID, repository.PropertyPatch{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Location:     req.Location,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Guests:       req.Guests,
		Images:       req.Images,
		Amenities:    req.Amenities,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PropertyType: req.PropertyType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, property)
}

// DeleteProperty removes a listing on behalf of the host.
func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	if err := h.propertyUC.DeleteProperty(c.Request().Context(), id, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMyProperties returns the caller's own listings.
func (h *PropertyHandler) ListMyProperties(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	properties, err := h.propertyUC.ListHostProperties(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, properties)
}

// CheckAvailability reports whether the requested dates are free.
func (h *PropertyHandler) CheckAvailability(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	start, end, err := parseDateRange(c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	out, err := h.availabilityUC.CheckAvailability(c.Request().Context(), id, start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// GetCalendar lists the occupied date ranges of a property.
func (h *PropertyHandler) GetCalendar(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	ranges, err := h.availabilityUC.BlockedRanges(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, ranges)
}

// GetQuote prices a stay with the server-side fee rules.
func (h *PropertyHandler) GetQuote(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	start, end, err := parseDateRange(c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	quote, err := h.bookingUC.QuoteBooking(c.Request().Context(), id, start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}
