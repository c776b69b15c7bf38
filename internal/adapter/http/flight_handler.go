package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/ryanair-api/internal/adapter/http/response"
	"github.com/flight-search/ryanair-api/internal/usecase"
)

// FlightHandler handles HTTP requests for flight endpoints.
type FlightHandler struct {
	useCase usecase.FlightUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightUseCase) *FlightHandler {
	return &FlightHandler{useCase: uc}
}

// Dates handles GET /api/flights/dates
//
// @Summary Days with flights
// @Tags flights
// @Produce json
// @Param from query string true "Origin IATA code" example(DUB)
// @Param to query string true "Destination IATA code" example(STN)
// @Success 200 {array} string
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/flights/dates [get]
func (h *FlightHandler) Dates(c echo.Context) error {
	dates, err := h.useCase.AvailableDates(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return err
	}
	if dates == nil {
		dates = []string{}
	}
	return response.OK(c, dates)
}

// Available handles GET /api/flights/available
//
// @Summary Flight availability
// @Description Returns the provider's availability document unchanged
// @Tags flights
// @Produce json
// @Param from query string true "Origin IATA code" example(DUB)
// @Param to query string true "Destination IATA code" example(STN)
// @Param dateOut query string false "Outbound date (YYYY-MM-DD)"
// @Param dateIn query string false "Return date (YYYY-MM-DD)"
// @Param adults query int false "Adults (1-9)" default(1)
// @Param children query int false "Children (0-9)" default(0)
// @Param teens query int false "Teens (0-9)" default(0)
// @Param infants query int false "Infants (0-9)" default(0)
// @Param promoCode query string false "Promotion code"
// @Success 200 {object} SwaggerAvailability
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/flights/available [get]
func (h *FlightHandler) Available(c echo.Context) error {
	passengers, err := ParsePassengers(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	availability, err := h.useCase.Availability(c.Request().Context(), ToAvailabilityRequest(c, passengers))
	if err != nil {
		return err
	}
	return response.OK(c, availability)
}
