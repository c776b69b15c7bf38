package http

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/ryanair-api/internal/adapter/http/response"
	"github.com/flight-search/ryanair-api/internal/domain"
	"github.com/flight-search/ryanair-api/internal/usecase"
	"github.com/flight-search/ryanair-api/internal/validation"
)

// Limits for the round-trip result size.
const (
	MinRoundTripLimit = 1
	MaxRoundTripLimit = 100
)

// passengerParam describes one passenger category accepted by /api/flights/available.
type passengerParam struct {
	name     string
	label    string
	fallback int
	min      int
}

var passengerParams = []passengerParam{
	{name: "adults", label: "Adults", fallback: 1, min: domain.MinAdults},
	{name: "children", label: "Children", fallback: 0, min: 0},
	{name: "teens", label: "Teens", fallback: 0, min: 0},
	{name: "infants", label: "Infants", fallback: 0, min: 0},
}

// parseCount reads an integer the way lenient form parsers do: optional sign and leading
// digits, trailing characters ignored. An empty value yields fallback; a value without
// leading digits yields NaN so range checks reject it.
func parseCount(raw string, fallback int) float64 {
	if raw == "" {
		return float64(fallback)
	}

	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return math.NaN()
	}

	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// ParsePassengers reads and checks the passenger counts of an availability query.
// Each category is checked in turn before the total.
func ParsePassengers(c echo.Context) (domain.Passengers, error) {
	counts := make([]int, len(passengerParams))
	for i, p := range passengerParams {
		n := parseCount(c.QueryParam(p.name), p.fallback)
		if !validation.ValidatePassengerCount(n, p.min, domain.MaxPassengersPerCategory) {
			return domain.Passengers{}, domain.NewValidationError(p.name,
				fmt.Sprintf("%s must be a number between %d and %d", p.label, p.min, domain.MaxPassengersPerCategory))
		}
		counts[i] = int(n)
	}

	passengers := domain.Passengers{
		Adults:   counts[0],
		Children: counts[1],
		Teens:    counts[2],
		Infants:  counts[3],
	}
	if passengers.Total() > domain.MaxPassengersTotal {
		return domain.Passengers{}, domain.NewValidationError("",
			fmt.Sprintf("Total passengers cannot exceed %d", domain.MaxPassengersTotal))
	}
	return passengers, nil
}

// ParseLimit reads the optional round-trip limit, defaulting to usecase.DefaultRoundTripLimit.
func ParseLimit(c echo.Context) (int, error) {
	n := parseCount(c.QueryParam("limit"), usecase.DefaultRoundTripLimit)
	if math.IsNaN(n) || n < MinRoundTripLimit || n > MaxRoundTripLimit {
		return 0, domain.NewValidationError("limit",
			fmt.Sprintf("Limit must be a number between %d and %d", MinRoundTripLimit, MaxRoundTripLimit))
	}
	return int(n), nil
}

// writeValidationError answers a rejected query parameter with the 400 envelope.
// Errors that are not validation errors are returned for the error handler.
func writeValidationError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return response.ValidationError(c, ve.Message, ve.Field)
	}
	return err
}

// ToAvailabilityRequest assembles the use case request from validated query values.
func ToAvailabilityRequest(c echo.Context, passengers domain.Passengers) usecase.AvailabilityRequest {
	return usecase.AvailabilityRequest{
		Origin:      c.QueryParam("from"),
		Destination: c.QueryParam("to"),
		DateOut:     c.QueryParam("dateOut"),
		DateIn:      c.QueryParam("dateIn"),
		PromoCode:   c.QueryParam("promoCode"),
		Passengers:  passengers,
	}
}
