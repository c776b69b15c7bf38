package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/flight-search/ryanair-api/internal/adapter/http/response"
)

// RateLimitConfig limits each client IP to Max requests per Window.
type RateLimitConfig struct {
	Max    int
	Window time.Duration

	// Skipper excludes requests from limiting
	Skipper middleware.Skipper
}

// RateLimit returns per-IP rate limiting middleware backed by echo's in-memory store.
// The bucket holds Max tokens and refills at Max per Window.
// If Max or Window is not positive, rate limiting is disabled.
func RateLimit(config RateLimitConfig) echo.MiddlewareFunc {
	if config.Max <= 0 || config.Window <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: config.Skipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(float64(config.Max) / config.Window.Seconds()),
				Burst:     config.Max,
				ExpiresIn: config.Window,
			},
		),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.TooManyRequests(c)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.TooManyRequests(c)
		},
	})
}
