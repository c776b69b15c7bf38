package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedEcho(cfg RateLimitConfig) *echo.Echo {
	e := echo.New()
	e.Use(RateLimit(cfg))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e
}

func requestFrom(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_DeniesAfterMax(t *testing.T) {
	e := newLimitedEcho(RateLimitConfig{Max: 3, Window: time.Hour})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(e, "10.0.0.1").Code, "request %d", i+1)
	}

	rec := requestFrom(e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"Too Many Requests","message":"Too many requests from this IP, please try again later."}`, rec.Body.String())
}

func TestRateLimit_PerClientIP(t *testing.T) {
	e := newLimitedEcho(RateLimitConfig{Max: 1, Window: time.Hour})

	assert.Equal(t, http.StatusOK, requestFrom(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, requestFrom(e, "10.0.0.2").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	e := newLimitedEcho(RateLimitConfig{Max: 0, Window: time.Hour})

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(e, "10.0.0.1").Code)
	}
}
