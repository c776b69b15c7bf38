package middleware

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/ryanair-api/internal/adapter/http/response"
	"github.com/flight-search/ryanair-api/internal/infrastructure/timeutil"
	"github.com/flight-search/ryanair-api/internal/validation"
)

// ParamSource selects where a required parameter is looked up.
type ParamSource int

const (
	// SourceQuery reads parameters from the query string.
	SourceQuery ParamSource = iota

	// SourcePath reads parameters from the route path.
	SourcePath
)

// Default names of the date range parameters.
const (
	StartDateParam = "startDate"
	EndDateParam   = "endDate"
)

// ValidateRequiredParams rejects the request when any named parameter is absent or empty in source.
func ValidateRequiredParams(source ParamSource, names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var missing []string
			for _, name := range names {
				if lookup(c, source, name) == "" {
					missing = append(missing, name)
				}
			}
			if len(missing) > 0 {
				return response.MissingParameters(c, missing)
			}
			return next(c)
		}
	}
}

// RequireQueryParams is ValidateRequiredParams on the query string.
func RequireQueryParams(names ...string) echo.MiddlewareFunc {
	return ValidateRequiredParams(SourceQuery, names...)
}

// RequirePathParams is ValidateRequiredParams on the route path.
func RequirePathParams(names ...string) echo.MiddlewareFunc {
	return ValidateRequiredParams(SourcePath, names...)
}

// ValidateIATAParams checks each named parameter, path first then query, as an airport code.
// Absent parameters are skipped. On success every present value is uppercased in place
// so handlers see canonical codes.
func ValidateIATAParams(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var invalid []string
			for _, name := range names {
				code := pathParam(c, name)
				if code == "" {
					code = c.QueryParam(name)
				}
				if code != "" && !validation.ValidateIATACode(strings.ToUpper(code)) {
					invalid = append(invalid, name)
				}
			}
			if len(invalid) > 0 {
				return response.InvalidIATACodes(c, invalid)
			}

			uppercaseParams(c, names)
			return next(c)
		}
	}
}

// ValidateDateParams checks each named query parameter as a YYYY-MM-DD date.
// Absent parameters are skipped.
func ValidateDateParams(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var invalid []string
			for _, name := range names {
				if date := c.QueryParam(name); date != "" && !validation.ValidateDate(date) {
					invalid = append(invalid, name)
				}
			}
			if len(invalid) > 0 {
				return response.InvalidDateFormat(c, invalid)
			}
			return next(c)
		}
	}
}

// ValidateDateRange rejects a start date later than the end date.
// It only acts when both dates are present and parse.
func ValidateDateRange(startParam, endParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start, startErr := timeutil.ParseDate(c.QueryParam(startParam))
			end, endErr := timeutil.ParseDate(c.QueryParam(endParam))
			if startErr == nil && endErr == nil && start.After(end) {
				return response.InvalidDateRange(c)
			}
			return next(c)
		}
	}
}

// DateRange is ValidateDateRange on startDate and endDate.
func DateRange() echo.MiddlewareFunc {
	return ValidateDateRange(StartDateParam, EndDateParam)
}

func lookup(c echo.Context, source ParamSource, name string) string {
	if source == SourcePath {
		return pathParam(c, name)
	}
	return c.QueryParam(name)
}

// pathParam returns the percent-decoded path parameter. Echo leaves path
// values escaped; a malformed escape is returned as is.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// uppercaseParams rewrites the named path and query values in upper case.
func uppercaseParams(c echo.Context, names []string) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	paramNames := c.ParamNames()
	values := append([]string(nil), c.ParamValues()...)
	changed := false
	for i, name := range paramNames {
		if i < len(values) && wanted[name] && values[i] != "" {
			if decoded, err := url.PathUnescape(values[i]); err == nil {
				values[i] = decoded
			}
			values[i] = strings.ToUpper(values[i])
			changed = true
		}
	}
	if changed {
		c.SetParamValues(values...)
	}

	query := c.QueryParams()
	for _, name := range names {
		if v := query.Get(name); v != "" {
			query.Set(name, strings.ToUpper(v))
		}
	}
}
