package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayscape/config"
	apimiddleware "stayscape/internal/delivery/api/middleware"
	"stayscape/internal/delivery/api/response"
	"stayscape/internal/delivery/api/router"
	"stayscape/internal/delivery/api/router/handler"
	"stayscape/internal/infra/auth"
	"stayscape/internal/infra/cache"
	"stayscape/internal/infra/persistence/memory"
	"stayscape/internal/infra/pubsub"
	"stayscape/internal/infra/qrcode"
	"stayscape/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

// newTestServer wires the full API over a fresh in-memory store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: 4, TokenTTL: time.Hour},
		Booking: &config.BookingConfig{ConflictPolicy: "all", CleaningFee: 50, ServiceFeeRate: 0.12},
		Review:  &config.ReviewConfig{MinRating: 1, MaxRating: 10},
		Cache:   &config.CacheConfig{LocalMaxSize: 100, LocalTTL: time.Minute},
	}
	cfg.SecretKey.Access = "test-secret"
	cfg.HTTP.MaxRequestBodySize = "1MB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	lc := fxtest.NewLifecycle(t)

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	userRepo := memory.NewUserRepository(store)
	propertyRepo := memory.NewPropertyRepository(store)
	bookingRepo := memory.NewBookingRepository(store)
	reviewRepo := memory.NewReviewRepository(store)
	favoriteRepo := memory.NewFavoriteRepository(store)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	propertyCache := cache.NewPropertyCache(cache.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	publisher := pubsub.NewNoopPublisher(logger)

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})
	propertyUC := impl.NewPropertyService(impl.PropertyServiceParams{
		PropertyRepo: propertyRepo,
		Cache:        propertyCache,
		Logger:       logger,
	})
	availabilityUC, err := impl.NewAvailabilityService(impl.AvailabilityServiceParams{
		PropertyRepo: propertyRepo,
		BookingRepo:  bookingRepo,
		Config:       cfg,
		Logger:       logger,
	})
	require.NoError(t, err)
	bookingUC, err := impl.NewBookingService(impl.BookingServiceParams{
		TxManager:    txManager,
		PropertyRepo: propertyRepo,
		BookingRepo:  bookingRepo,
		QRService:    qrcode.NewQRCodeService(cfg),
		Publisher:    publisher,
		Config:       cfg,
		Logger:       logger,
	})
	require.NoError(t, err)
	reviewUC := impl.NewReviewService(impl.ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		Cache:      propertyCache,
		Publisher:  publisher,
		Config:     cfg,
		Logger:     logger,
	})
	favoriteUC := impl.NewFavoriteService(impl.FavoriteServiceParams{
		FavoriteRepo: favoriteRepo,
		PropertyRepo: propertyRepo,
		Logger:       logger,
	})

	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	return newEchoServer(cfg, logger, router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		PropertyHandler: handler.NewPropertyHandler(handler.PropertyHandlerParams{
			PropertyUC:     propertyUC,
			AvailabilityUC: availabilityUC,
			BookingUC:      bookingUC,
			Logger:         logger,
		}),
		BookingHandler: handler.NewBookingHandler(handler.BookingHandlerParams{
			BookingUC:  bookingUC,
			PropertyUC: propertyUC,
			Logger:     logger,
		}),
		ReviewHandler:   handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: reviewUC, Logger: logger}),
		FavoriteHandler: handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: favoriteUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: tokenService,
			Logger:       logger,
		}),
	})
}

func call(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) *envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), rec.Body.String())
	}

	return &env
}

func registerAndLogin(t *testing.T, e *echo.Echo, username string) (int64, string) {
	t.Helper()

	rec := call(t, e, http.MethodPost, "/auth/register", "", map[string]any{
		"username": username,
		"password": "correct-horse",
		"name":     username,
		"email":    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPost, "/auth/login", "", map[string]any{
		"username": username,
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	decode(t, rec, &out)
	require.NotEmpty(t, out.AccessToken)

	return out.User.ID, out.AccessToken
}

func cabin() map[string]any {
	return map[string]any{
		"title":         "Lake cabin",
		"description":   "Quiet cabin by the lake",
		"price":         100,
		"location":      "North shore",
		"city":          "Tahoe City",
		"state":         "CA",
		"country":       "USA",
		"bedrooms":      2,
		"bathrooms":     1,
		"guests":        4,
		"images":        []string{"https://images.example.com/cabin.jpg"},
		"amenities":     []string{"WiFi", "Fireplace"},
		"latitude":      39.17,
		"longitude":     -120.14,
		"property_type": "Cabin",
	}
}

func createCabin(t *testing.T, e *echo.Echo, token string) int64 {
	t.Helper()

	rec := call(t, e, http.MethodPost, "/api/v1/properties", token, cabin())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var property struct {
		ID int64 `json:"id"`
	}
	decode(t, rec, &property)

	return property.ID
}

func TestServer_HealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := call(t, e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_Accounts(t *testing.T) {
	e := newTestServer(t)
	userID, token := registerAndLogin(t, e, "alice")

	t.Run("duplicate username", func(t *testing.T) {
		rec := call(t, e, http.MethodPost, "/auth/register", "", map[string]any{
			"username": "alice", "password": "another-pass", "name": "Alice", "email": "a2@example.com",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec, nil).Error.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := call(t, e, http.MethodPost, "/auth/login", "", map[string]any{"username": "alice", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec, nil).Error.Code)
	})

	t.Run("invalid registration body", func(t *testing.T) {
		rec := call(t, e, http.MethodPost, "/auth/register", "", map[string]any{"username": "bo"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec, nil).Error.Code)
	})

	t.Run("profile requires a token", func(t *testing.T) {
		rec := call(t, e, http.MethodGet, "/api/v1/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = call(t, e, http.MethodGet, "/api/v1/me", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, rec, nil).Error.Code)
	})

	t.Run("profile", func(t *testing.T) {
		rec := call(t, e, http.MethodGet, "/api/v1/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var user map[string]any
		decode(t, rec, &user)
		assert.EqualValues(t, userID, user["id"])
		assert.Equal(t, "alice", user["username"])
		assert.NotContains(t, user, "password_hash")
	})
}

func TestServer_PropertyCatalogue(t *testing.T) {
	e := newTestServer(t)
	_, hostToken := registerAndLogin(t, e, "host")
	_, guestToken := registerAndLogin(t, e, "guest")

	rec := call(t, e, http.MethodPost, "/api/v1/properties", hostToken, map[string]any{"price": 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec, nil).Error.Code)

	id := createCabin(t, e, hostToken)

	rec = call(t, e, http.MethodGet, "/api/v1/properties?search=LAKE", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found []map[string]any
	env := decode(t, rec, &found)
	require.Len(t, found, 1)
	assert.Equal(t, 1, *env.Meta.Count)
	assert.Nil(t, found[0]["rating"])

	rec = call(t, e, http.MethodGet, "/api/v1/properties?minPrice=200", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", string(decode(t, rec, nil).Data))

	rec = call(t, e, http.MethodGet, "/api/v1/properties?near=39.2,-120.1&radiusKm=20", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found = nil
	decode(t, rec, &found)
	assert.Len(t, found, 1)

	rec = call(t, e, http.MethodGet, "/api/v1/properties?minPrice=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, e, http.MethodPut, "/api/v1/properties/1", guestToken, map[string]any{"price": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(t, e, http.MethodPut, "/api/v1/properties/1", hostToken, map[string]any{"price": 120})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	decode(t, rec, &updated)
	assert.EqualValues(t, 120, updated["price"])
	assert.Equal(t, "Lake cabin", updated["title"])

	rec = call(t, e, http.MethodGet, "/api/v1/properties/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	updated = nil
	decode(t, rec, &updated)
	assert.EqualValues(t, id, updated["id"])
	assert.EqualValues(t, 120, updated["price"])

	rec = call(t, e, http.MethodGet, "/api/v1/me/properties", hostToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, *decode(t, rec, nil).Meta.Count)

	rec = call(t, e, http.MethodDelete, "/api/v1/properties/1", hostToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, e, http.MethodGet, "/api/v1/properties/1", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROPERTY_NOT_FOUND", decode(t, rec, nil).Error.Code)
}

func TestServer_BookingLifecycle(t *testing.T) {
	e := newTestServer(t)
	_, hostToken := registerAndLogin(t, e, "host")
	guestID, guestToken := registerAndLogin(t, e, "guest")
	_, strangerToken := registerAndLogin(t, e, "stranger")
	id := createCabin(t, e, hostToken)

	book := func(token, start, end string, guests int) *httptest.ResponseRecorder {
		return call(t, e, http.MethodPost, "/api/v1/bookings", token, map[string]any{
			"property_id": id,
			"start_date":  start,
			"end_date":    end,
			"guests":      guests,
			"total_price": 400,
		})
	}

	rec := book(guestToken, "2025-06-01", "2025-06-05", 2)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var booking map[string]any
	decode(t, rec, &booking)
	assert.Equal(t, "pending", booking["status"])
	assert.EqualValues(t, guestID, booking["user_id"])
	assert.EqualValues(t, 400, booking["total_price"])

	rec = book(guestToken, "2025-06-05", "2025-06-10", 2)
	assert.Equal(t, http.StatusCreated, rec.Code, "checkout day is free for the next stay")

	rec = book(guestToken, "2025-06-04", "2025-06-06", 2)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BOOKING_CONFLICT", decode(t, rec, nil).Error.Code)

	rec = book(guestToken, "2025-07-05", "2025-07-01", 2)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DATE_RANGE", decode(t, rec, nil).Error.Code)

	rec = book(guestToken, "2025-08-01", "2025-08-03", 9)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "GUEST_LIMIT_EXCEEDED", decode(t, rec, nil).Error.Code)

	rec = call(t, e, http.MethodGet, "/api/v1/properties/1/availability?start=2025-06-03&end=2025-06-04", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var availability map[string]any
	decode(t, rec, &availability)
	assert.Equal(t, false, availability["available"])

	rec = call(t, e, http.MethodGet, "/api/v1/properties/1/calendar", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, *decode(t, rec, nil).Meta.Count)

	rec = call(t, e, http.MethodGet, "/api/v1/properties/1/quote?start=2025-09-01&end=2025-09-04", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var quote map[string]any
	decode(t, rec, &quote)
	assert.EqualValues(t, 3, quote["nights"])
	assert.EqualValues(t, 300+50+36, quote["total"])

	rec = call(t, e, http.MethodGet, "/api/v1/bookings", guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, *decode(t, rec, nil).Meta.Count)

	rec = call(t, e, http.MethodGet, "/api/v1/bookings/1", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(t, e, http.MethodGet, "/api/v1/properties/1/bookings", guestToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(t, e, http.MethodGet, "/api/v1/properties/1/bookings", hostToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, *decode(t, rec, nil).Meta.Count)

	rec = call(t, e, http.MethodGet, "/api/v1/bookings/1/qr", guestToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BOOKING_NOT_CONFIRMED", decode(t, rec, nil).Error.Code)

	rec = call(t, e, http.MethodPatch, "/api/v1/bookings/1/status", hostToken, map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_BOOKING_STATUS", decode(t, rec, nil).Error.Code)

	rec = call(t, e, http.MethodPatch, "/api/v1/bookings/1/status", strangerToken, map[string]any{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(t, e, http.MethodPatch, "/api/v1/bookings/1/status", hostToken, map[string]any{"status": "confirmed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	booking = nil
	decode(t, rec, &booking)
	assert.Equal(t, "confirmed", booking["status"])

	rec = call(t, e, http.MethodGet, "/api/v1/bookings/1/qr", guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestServer_ReviewsUpdateRating(t *testing.T) {
	e := newTestServer(t)
	_, hostToken := registerAndLogin(t, e, "host")
	_, guestToken := registerAndLogin(t, e, "guest")
	createCabin(t, e, hostToken)

	// Warm the property cache so the review has to invalidate it.
	rec := call(t, e, http.MethodGet, "/api/v1/properties/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, e, http.MethodPost, "/api/v1/properties/1/reviews", "", map[string]any{"rating": 8, "comment": "Great"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, e, http.MethodPost, "/api/v1/properties/1/reviews", guestToken, map[string]any{"rating": 11, "comment": "Too good"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RATING", decode(t, rec, nil).Error.Code)

	for _, rating := range []int{8, 10} {
		rec = call(t, e, http.MethodPost, "/api/v1/properties/1/reviews", guestToken, map[string]any{"rating": rating, "comment": "Lovely"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec = call(t, e, http.MethodGet, "/api/v1/properties/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var property map[string]any
	decode(t, rec, &property)
	assert.EqualValues(t, 9, property["rating"])
	assert.EqualValues(t, 2, property["review_count"])

	rec = call(t, e, http.MethodGet, "/api/v1/properties/1/reviews", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, *decode(t, rec, nil).Meta.Count)

	rec = call(t, e, http.MethodPost, "/api/v1/properties/42/reviews", guestToken, map[string]any{"rating": 5, "comment": "Who?"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Favorites(t *testing.T) {
	e := newTestServer(t)
	_, hostToken := registerAndLogin(t, e, "host")
	_, guestToken := registerAndLogin(t, e, "guest")
	id := createCabin(t, e, hostToken)

	rec := call(t, e, http.MethodPost, "/api/v1/favorites", guestToken, map[string]any{"property_id": id})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPost, "/api/v1/favorites", guestToken, map[string]any{"property_id": 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, e, http.MethodGet, "/api/v1/favorites/check/1", guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status handler.FavoriteStatusResponse
	decode(t, rec, &status)
	assert.True(t, status.IsFavorite)

	rec = call(t, e, http.MethodGet, "/api/v1/favorites", guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, *decode(t, rec, nil).Meta.Count)

	rec = call(t, e, http.MethodDelete, "/api/v1/favorites/1", guestToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, e, http.MethodDelete, "/api/v1/favorites/1", guestToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FAVORITE_NOT_FOUND", decode(t, rec, nil).Error.Code)

	rec = call(t, e, http.MethodGet, "/api/v1/favorites/check/1", guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status = handler.FavoriteStatusResponse{}
	decode(t, rec, &status)
	assert.False(t, status.IsFavorite)
}
