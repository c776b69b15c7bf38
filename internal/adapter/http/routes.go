package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/flight-search/ryanair-api/internal/adapter/http/middleware"
)

// RegisterRoutes registers every API route on e.
// Route validation runs in the order required, IATA codes, date format, date range
// so a missing parameter is reported as missing rather than invalid.
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.GET("/", h.System.Banner)
	e.GET("/health", h.System.Health)
	e.GET(DocsPath, h.System.Docs)
	e.GET(DocsPath+"/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	registerAirportRoutes(api.Group("/airports"), h.Airports)
	registerFareRoutes(api.Group("/fares"), h.Fares)
	registerFlightRoutes(api.Group("/flights"), h.Flights)
}

func registerAirportRoutes(g *echo.Group, h *AirportHandler) {
	g.GET("/active", h.Active)
	g.GET("/active-v3", h.ActiveV3)
	g.GET("/closest", h.Closest)
	g.GET("/nearby", h.Nearby)

	code := middleware.ValidateIATAParams("code")
	g.GET("/:code", h.Info, code)
	g.GET("/:code/destinations", h.Destinations, code)
	g.GET("/:code/schedules", h.Schedules, code)
	g.GET("/:from/routes/:to", h.Routes, middleware.ValidateIATAParams("from", "to"))
}

func registerFareRoutes(g *echo.Group, h *FareHandler) {
	g.GET("/cheapest-per-day", h.CheapestPerDay,
		middleware.RequireQueryParams("from", "to", "startDate"),
		middleware.ValidateIATAParams("from", "to"),
		middleware.ValidateDateParams("startDate"),
	)

	dateRange := []echo.MiddlewareFunc{
		middleware.RequireQueryParams("from", "to", middleware.StartDateParam, middleware.EndDateParam),
		middleware.ValidateIATAParams("from", "to"),
		middleware.ValidateDateParams(middleware.StartDateParam, middleware.EndDateParam),
		middleware.DateRange(),
	}
	g.GET("/daily-range", h.DailyRange, dateRange...)
	g.GET("/cheapest-round-trip", h.CheapestRoundTrip, dateRange...)
}

func registerFlightRoutes(g *echo.Group, h *FlightHandler) {
	g.GET("/dates", h.Dates,
		middleware.RequireQueryParams("from", "to"),
		middleware.ValidateIATAParams("from", "to"),
	)
	g.GET("/available", h.Available,
		middleware.RequireQueryParams("from", "to"),
		middleware.ValidateIATAParams("from", "to"),
		middleware.ValidateDateParams("dateOut", "dateIn"),
	)
}
