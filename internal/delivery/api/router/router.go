// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stayscape/internal/delivery/api/middleware"
	"stayscape/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	PropertyHandler *handler.PropertyHandler
	BookingHandler  *handler.BookingHandler
	ReviewHandler   *handler.ReviewHandler
	FavoriteHandler *handler.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	propertyHandler *handler.PropertyHandler
	bookingHandler  *handler.BookingHandler
	reviewHandler   *handler.ReviewHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		propertyHandler: params.PropertyHandler,
		bookingHandler:  params.BookingHandler,
		reviewHandler:   params.ReviewHandler,
		favoriteHandler: params.FavoriteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	auth := r.authMiddleware.Authenticate

	// API v1 routes. Catalogue reads are public, everything else requires a token.
	apiV1 := e.Group("/api/v1")

	meGroup := apiV1.Group("/me", auth)
	{
		meGroup.GET("", r.userHandler.GetProfile)
		meGroup.GET("/properties", r.propertyHandler.ListMyProperties)
	}

	propertiesGroup := apiV1.Group("/properties")
	{
		propertiesGroup.GET("", r.propertyHandler.ListProperties)
		propertiesGroup.GET("/:id", r.propertyHandler.GetProperty)
		propertiesGroup.GET("/:id/availability", r.propertyHandler.CheckAvailability)
		propertiesGroup.GET("/:id/calendar", r.propertyHandler.GetCalendar)
		propertiesGroup.GET("/:id/quote", r.propertyHandler.GetQuote)
		propertiesGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)

		propertiesGroup.POST("", r.propertyHandler.CreateProperty, auth)
		propertiesGroup.PUT("/:id", r.propertyHandler.UpdateProperty, auth)
		propertiesGroup.DELETE("/:id", r.propertyHandler.DeleteProperty, auth)
		propertiesGroup.POST("/:id/reviews", r.reviewHandler.CreateReview, auth)
		propertiesGroup.GET("/:id/bookings", r.bookingHandler.ListPropertyBookings, auth)
	}

	bookingsGroup := apiV1.Group("/bookings", auth)
	{
		bookingsGroup.GET("", r.bookingHandler.ListMyBookings)
		bookingsGroup.POST("", r.bookingHandler.CreateBooking)
		bookingsGroup.GET("/:id", r.bookingHandler.GetBooking)
		bookingsGroup.PATCH("/:id/status", r.bookingHandler.UpdateBookingStatus)
		bookingsGroup.GET("/:id/qr", r.bookingHandler.GetCheckInQR)
	}

	favoritesGroup := apiV1.Group("/favorites", auth)
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.POST("", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:propertyId", r.favoriteHandler.RemoveFavorite)
		favoritesGroup.GET("/check/:propertyId", r.favoriteHandler.CheckFavorite)
	}
}
