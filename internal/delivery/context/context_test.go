package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestUserID_RoundTrip(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)
	assert.Zero(t, GetUserIDFromContext(c.Request().Context()))

	SetUserID(c, 42)

	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, int64(42), GetUserIDFromContext(c.Request().Context()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.DiscardHandler)
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "abc", GetRequestIDFromContext(WithRequestID(context.Background(), "abc")))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotEmpty(t, GetRequestID(c))
	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}
