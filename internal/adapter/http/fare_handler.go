package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/ryanair-api/internal/adapter/http/response"
	"github.com/flight-search/ryanair-api/internal/domain"
	"github.com/flight-search/ryanair-api/internal/usecase"
)

// FareHandler handles HTTP requests for fare endpoints.
type FareHandler struct {
	useCase usecase.FareUseCase
}

// NewFareHandler creates a new FareHandler with the given use case.
func NewFareHandler(uc usecase.FareUseCase) *FareHandler {
	return &FareHandler{useCase: uc}
}

// CheapestPerDay handles GET /api/fares/cheapest-per-day
//
// @Summary Cheapest fare per day
// @Description Cheapest one-way fare of each day in the month containing startDate
// @Tags fares
// @Produce json
// @Param from query string true "Origin IATA code" example(DUB)
// @Param to query string true "Destination IATA code" example(STN)
// @Param startDate query string true "Any day of the month (YYYY-MM-DD)" example(2024-06-15)
// @Param currency query string false "Currency code" default(EUR)
// @Success 200 {object} domain.CheapestFares
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/fares/cheapest-per-day [get]
func (h *FareHandler) CheapestPerDay(c echo.Context) error {
	fares, err := h.useCase.CheapestPerDay(c.Request().Context(),
		c.QueryParam("from"), c.QueryParam("to"), c.QueryParam("startDate"), currencyParam(c))
	if err != nil {
		return err
	}
	return response.OK(c, fares)
}

// DailyRange handles GET /api/fares/daily-range
//
// @Summary Daily fares in a date range
// @Tags fares
// @Produce json
// @Param from query string true "Origin IATA code" example(DUB)
// @Param to query string true "Destination IATA code" example(STN)
// @Param startDate query string true "First day (YYYY-MM-DD)" example(2024-06-01)
// @Param endDate query string true "Last day (YYYY-MM-DD)" example(2024-06-30)
// @Param currency query string false "Currency code" default(EUR)
// @Success 200 {array} domain.Fare
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/fares/daily-range [get]
func (h *FareHandler) DailyRange(c echo.Context) error {
	fares, err := h.useCase.DailyFaresInRange(c.Request().Context(),
		c.QueryParam("from"), c.QueryParam("to"),
		c.QueryParam("startDate"), c.QueryParam("endDate"), currencyParam(c))
	if err != nil {
		return err
	}
	if fares == nil {
		fares = []domain.Fare{}
	}
	return response.OK(c, fares)
}

// CheapestRoundTrip handles GET /api/fares/cheapest-round-trip
//
// @Summary Cheapest round trips
// @Description Outbound and inbound pairs within the range, cheapest total first
// @Tags fares
// @Produce json
// @Param from query string true "Origin IATA code" example(DUB)
// @Param to query string true "Destination IATA code" example(STN)
// @Param startDate query string true "First day (YYYY-MM-DD)" example(2024-06-01)
// @Param endDate query string true "Last day (YYYY-MM-DD)" example(2024-06-30)
// @Param currency query string false "Currency code" default(EUR)
// @Param limit query int false "Maximum pairs (1-100)" default(10)
// @Success 200 {array} domain.RoundTrip
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/fares/cheapest-round-trip [get]
func (h *FareHandler) CheapestRoundTrip(c echo.Context) error {
	limit, err := ParseLimit(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	trips, err := h.useCase.CheapestRoundTrip(c.Request().Context(),
		c.QueryParam("from"), c.QueryParam("to"),
		c.QueryParam("startDate"), c.QueryParam("endDate"), currencyParam(c), limit)
	if err != nil {
		return err
	}
	if trips == nil {
		trips = []domain.RoundTrip{}
	}
	return response.OK(c, trips)
}

func currencyParam(c echo.Context) string {
	if currency := c.QueryParam("currency"); currency != "" {
		return currency
	}
	return domain.DefaultCurrency
}
