// Package middleware provides HTTP middleware for cross-cutting concerns
// and the parameter validation chains used by the API routes.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader carries the correlation ID in both directions.
	RequestIDHeader = echo.HeaderXRequestID

	requestIDKey = "request_id"

	// maxRequestIDLen bounds caller-supplied IDs before they reach logs and headers.
	maxRequestIDLen = 128
)

// RequestID tags every request with a correlation ID.
// A caller-supplied X-Request-ID is kept when it is short printable ASCII;
// anything else is replaced by a fresh UUID. The ID is returned in the
// response header and a child of log carrying it is placed in the request
// context for zerolog.Ctx.
func RequestID(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(RequestIDHeader)
			if !acceptableRequestID(id) {
				id = uuid.NewString()
			}

			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)

			ctxLog := log.With().Str("request_id", id).Logger()
			c.SetRequest(req.WithContext(ctxLog.WithContext(req.Context())))
			return next(c)
		}
	}
}

// GetRequestID returns the ID assigned by RequestID, or "" outside it.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
