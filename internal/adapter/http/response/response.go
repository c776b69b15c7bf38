// Package response provides the HTTP response builders shared by handlers and middleware.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON envelope of every error response.
type ErrorBody struct {
	// Error is the short error category (e.g., "Validation Error")
	Error string `json:"error"`

	// Message is a human-readable description
	Message string `json:"message"`

	// Field names the offending parameter, when there is exactly one
	Field string `json:"field,omitempty"`
}

// Error categories used in API responses.
const (
	ErrValidation        = "Validation Error"
	ErrMissingParameters = "Missing required parameters"
	ErrInvalidIATACodes  = "Invalid IATA codes"
	ErrInvalidIATACode   = "Invalid IATA Code"
	ErrInvalidDateFormat = "Invalid date format"
	ErrInvalidDateRange  = "Invalid date range"
	ErrNotFound          = "Not Found"
	ErrTooManyRequests   = "Too Many Requests"
	ErrInternal          = "Internal Server Error"
)

// Fixed messages used in API responses.
const (
	MsgInvalidIATACode   = "Please provide a valid 3-letter IATA airport code"
	MsgInvalidDateRange  = "Start date must be before or equal to end date"
	MsgTooManyRequests   = "Too many requests from this IP, please try again later."
	MsgInternalErrorProd = "Something went wrong"
)

// JSON writes data with the given status code.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func badRequest(c echo.Context, category, message, field string) error {
	return c.JSON(http.StatusBadRequest, &ErrorBody{
		Error:   category,
		Message: message,
		Field:   field,
	})
}

// ValidationError writes a 400 response for a rejected parameter value.
// field may be empty when the problem spans several parameters.
func ValidationError(c echo.Context, message, field string) error {
	return badRequest(c, ErrValidation, message, field)
}

// MissingParameters writes a 400 response listing required parameters that were not supplied.
func MissingParameters(c echo.Context, names []string) error {
	return badRequest(c, ErrMissingParameters,
		"The following parameters are required: "+strings.Join(names, ", "), "")
}

// InvalidIATACodes writes a 400 response listing parameters that are not airport codes.
func InvalidIATACodes(c echo.Context, names []string) error {
	return badRequest(c, ErrInvalidIATACodes,
		"All IATA codes must be exactly 3 characters: "+strings.Join(names, ", "), "")
}

// InvalidDateFormat writes a 400 response listing parameters that are not YYYY-MM-DD dates.
func InvalidDateFormat(c echo.Context, names []string) error {
	return badRequest(c, ErrInvalidDateFormat,
		"Dates must be in YYYY-MM-DD format: "+strings.Join(names, ", "), "")
}

// InvalidDateRange writes a 400 response for a start date after the end date.
func InvalidDateRange(c echo.Context) error {
	return badRequest(c, ErrInvalidDateRange, MsgInvalidDateRange, "")
}

// InvalidIATACode writes a 400 response for an airport code rejected by the provider client.
func InvalidIATACode(c echo.Context) error {
	return badRequest(c, ErrInvalidIATACode, MsgInvalidIATACode, "")
}

// TooManyRequests writes a 429 response for a client over its rate limit.
func TooManyRequests(c echo.Context) error {
	return c.JSON(http.StatusTooManyRequests, &ErrorBody{
		Error:   ErrTooManyRequests,
		Message: MsgTooManyRequests,
	})
}

// InternalServerError writes a 500 response with the given message.
func InternalServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, &ErrorBody{
		Error:   ErrInternal,
		Message: message,
	})
}

// Status writes an error response for an arbitrary status code.
func Status(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &ErrorBody{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
