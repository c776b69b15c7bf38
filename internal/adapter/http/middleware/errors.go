package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/ryanair-api/internal/adapter/http/response"
	"github.com/flight-search/ryanair-api/internal/domain"
)

// invalidIATAMessage is matched in error text for errors that do not wrap domain.ErrInvalidIATACode.
const invalidIATAMessage = "Invalid IATA code"

// ErrorHandler returns the echo.HTTPErrorHandler that maps errors to JSON responses.
// Unmatched routes become 404 with the list of API roots. Internal error messages are
// replaced with a generic one in production.
func ErrorHandler(log zerolog.Logger, isProduction bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			ve      *domain.ValidationError
			httpErr *echo.HTTPError
			werr    error
		)

		switch {
		case errors.As(err, &ve):
			werr = response.ValidationError(c, ve.Message, ve.Field)

		case domain.IsInvalidIATACode(err) || strings.Contains(err.Error(), invalidIATAMessage):
			werr = response.InvalidIATACode(c)

		case errors.As(err, &httpErr):
			switch httpErr.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				werr = response.NotFound(c, c.Request().RequestURI)
			case http.StatusTooManyRequests:
				werr = response.TooManyRequests(c)
			default:
				if httpErr.Code >= http.StatusInternalServerError {
					logError(log, c, err)
				}
				werr = response.Status(c, httpErr.Code, fmt.Sprint(httpErr.Message))
			}

		default:
			logError(log, c, err)
			message := err.Error()
			if isProduction {
				message = response.MsgInternalErrorProd
			}
			werr = response.InternalServerError(c, message)
		}

		if werr != nil {
			log.Error().Err(werr).Str("request_id", GetRequestID(c)).Msg("Failed to write error response")
		}
	}
}

func logError(log zerolog.Logger, c echo.Context, err error) {
	event := log.Error().
		Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path)

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		event = event.Str("operation", upstream.Operation).Int("upstream_status", upstream.StatusCode)
	}

	event.Msg("Request failed")
}
