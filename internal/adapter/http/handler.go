// Package http provides the HTTP handler layer for the Ryanair API.
// It handles query parsing, response shaping, and route registration.
package http

import (
	"time"

	"github.com/flight-search/ryanair-api/internal/infrastructure/timeutil"
	"github.com/flight-search/ryanair-api/internal/usecase"
)

// Handlers groups the handlers of every API resource.
type Handlers struct {
	Airports *AirportHandler
	Fares    *FareHandler
	Flights  *FlightHandler
	System   *SystemHandler
}

// Dependencies are the collaborators needed to build Handlers.
type Dependencies struct {
	Airports usecase.AirportUseCase
	Fares    usecase.FareUseCase
	Flights  usecase.FlightUseCase

	// Clock drives the health timestamp and uptime; nil means the system clock
	Clock timeutil.Clock

	// StartedAt is the process start time used for uptime; zero means now
	StartedAt time.Time

	Version     string
	Environment string
}

// NewHandlers creates the handlers of every API resource.
func NewHandlers(deps Dependencies) *Handlers {
	clock := deps.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	startedAt := deps.StartedAt
	if startedAt.IsZero() {
		startedAt = clock.Now()
	}

	return &Handlers{
		Airports: NewAirportHandler(deps.Airports),
		Fares:    NewFareHandler(deps.Fares),
		Flights:  NewFlightHandler(deps.Flights),
		System:   NewSystemHandler(clock, startedAt, deps.Version, deps.Environment),
	}
}
