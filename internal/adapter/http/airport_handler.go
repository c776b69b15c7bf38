package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/ryanair-api/internal/adapter/http/response"
	"github.com/flight-search/ryanair-api/internal/usecase"
)

// AirportHandler handles HTTP requests for airport endpoints.
type AirportHandler struct {
	useCase usecase.AirportUseCase
}

// NewAirportHandler creates a new AirportHandler with the given use case.
func NewAirportHandler(uc usecase.AirportUseCase) *AirportHandler {
	return &AirportHandler{useCase: uc}
}

// Active handles GET /api/airports/active
//
// @Summary List active airports
// @Tags airports
// @Produce json
// @Success 200 {array} AirportSummary
// @Failure 500 {object} response.ErrorBody
// @Router /api/airports/active [get]
func (h *AirportHandler) Active(c echo.Context) error {
	airports, err := h.useCase.ActiveAirports(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, ToAirportSummaries(airports))
}

// ActiveV3 handles GET /api/airports/active-v3
//
// @Summary List active airports (v3 listing)
// @Tags airports
// @Produce json
// @Success 200 {array} AirportSummary
// @Failure 500 {object} response.ErrorBody
// @Router /api/airports/active-v3 [get]
func (h *AirportHandler) ActiveV3(c echo.Context) error {
	airports, err := h.useCase.ActiveAirportsV3(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, ToAirportSummaries(airports))
}

// Closest handles GET /api/airports/closest
//
// @Summary Closest airport to the caller
// @Description Uses the provider's IP geolocation
// @Tags airports
// @Produce json
// @Success 200 {object} ClosestAirport
// @Failure 500 {object} response.ErrorBody
// @Router /api/airports/closest [get]
func (h *AirportHandler) Closest(c echo.Context) error {
	airport, err := h.useCase.ClosestAirport(c.Request().Context())
	if err != nil {
		return err
	}
	if airport == nil {
		return response.OK(c, nil)
	}
	return response.OK(c, ToClosestAirport(*airport))
}

// Nearby handles GET /api/airports/nearby
//
// @Summary Airports near the caller
// @Tags airports
// @Produce json
// @Success 200 {array} ClosestAirport
// @Failure 500 {object} response.ErrorBody
// @Router /api/airports/nearby [get]
func (h *AirportHandler) Nearby(c echo.Context) error {
	airports, err := h.useCase.NearbyAirports(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, ToClosestAirports(airports))
}

// Info handles GET /api/airports/:code
//
// @Summary Airport details
// @Tags airports
// @Produce json
// @Param code path string true "IATA airport code" example(DUB)
// @Success 200 {object} AirportDetails
// @Failure 400 {object} response.ErrorBody "Invalid IATA code"
// @Failure 500 {object} response.ErrorBody
// @Router /api/airports/{code} [get]
func (h *AirportHandler) Info(c echo.Context) error {
	airport, err := h.useCase.AirportInfo(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	if airport == nil {
		return response.OK(c, nil)
	}
	return response.OK(c, ToAirportDetails(*airport))
}

// Destinations handles GET /api/airports/:code/destinations
//
// @Summary Destinations served from an airport
// @Tags airports
// @Produce json
// @Param code path string true "IATA airport code" example(DUB)
// @Success 200 {array} AirportSummary
// @Failure 400 {object} response.ErrorBody "Invalid IATA code"
// @Failure 500 {object} response.ErrorBody
// @Router /api/airports/{code}/destinations [get]
func (h *AirportHandler) Destinations(c echo.Context) error {
	destinations, err := h.useCase.Destinations(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return response.OK(c, ToDestinationSummaries(destinations))
}

// Schedules handles GET /api/airports/:code/schedules
//
// @Summary Airport timetable
// @Description Returns the provider's schedule document unchanged
// @Tags airports
// @Produce json
// @Param code path string true "IATA airport code" example(DUB)
// @Success 200 {object} SwaggerSchedules
// @Failure 400 {object} response.ErrorBody "Invalid IATA code"
// @Failure 500 {object} response.ErrorBody
// @Router /api/airports/{code}/schedules [get]
func (h *AirportHandler) Schedules(c echo.Context) error {
	schedules, err := h.useCase.Schedules(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return response.OK(c, schedules)
}

// Routes handles GET /api/airports/:from/routes/:to
//
// @Summary Routes between two airports
// @Description Direct route first, then one-stop routes, each as a list of airport codes
// @Tags airports
// @Produce json
// @Param from path string true "Origin IATA code" example(DUB)
// @Param to path string true "Destination IATA code" example(STN)
// @Success 200 {array} array
// @Failure 400 {object} response.ErrorBody "Invalid IATA code"
// @Failure 500 {object} response.ErrorBody
// @Router /api/airports/{from}/routes/{to} [get]
func (h *AirportHandler) Routes(c echo.Context) error {
	routes, err := h.useCase.FindRoutes(c.Request().Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		return err
	}
	return response.OK(c, toRouteLists(routes))
}
