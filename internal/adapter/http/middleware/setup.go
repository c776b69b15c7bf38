package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Config holds the settings of the global middleware stack.
type Config struct {
	RateLimitMax    int
	RateLimitWindow time.Duration
	IsProduction    bool
	Recovery        RecoveryConfig

	// QuietPaths are served without request logs
	QuietPaths []string
}

// Setup installs the error handler and registers all middleware on the Echo instance.
// The order is important:
//  1. RequestID - first, so every later log line carries the request ID
//  2. RequestLogger - logs the final status of every request
//  3. Recover - turns handler panics into 500 responses
//  4. SecureHeaders, CORS, Compress - response decoration
//  5. RateLimit - last, so rejected requests are still logged and decorated
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, cfg Config) {
	e.HTTPErrorHandler = ErrorHandler(log, cfg.IsProduction)

	for _, mw := range Chain(log, cfg) {
		e.Use(mw)
	}
}

// Chain returns the global middleware in registration order.
func Chain(log zerolog.Logger, cfg Config) []echo.MiddlewareFunc {
	quiet := SkipPaths(cfg.QuietPaths...)

	return []echo.MiddlewareFunc{
		RequestID(log),
		RequestLoggerWithConfig(log, RequestLoggerConfig{Skipper: quiet}),
		RecoverWithConfig(log, cfg.Recovery),
		SecureHeaders(),
		CORS(),
		Compress(),
		RateLimit(RateLimitConfig{
			Max:    cfg.RateLimitMax,
			Window: cfg.RateLimitWindow,
		}),
	}
}
