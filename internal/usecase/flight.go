package usecase

import (
	"context"

	"github.com/flight-search/ryanair-api/internal/domain"
)

// FlightUseCase defines the flight queries exposed by the API.
type FlightUseCase interface {
	AvailableDates(ctx context.Context, from, to string) ([]string, error)

	// Availability completes req with the query defaults and forwards it to the provider.
	Availability(ctx context.Context, req AvailabilityRequest) (domain.Availability, error)
}

type flightUseCase struct {
	provider domain.FlightProvider
}

// NewFlightUseCase creates a FlightUseCase backed by provider.
func NewFlightUseCase(provider domain.FlightProvider) FlightUseCase {
	return &flightUseCase{provider: provider}
}

func (uc *flightUseCase) AvailableDates(ctx context.Context, from, to string) ([]string, error) {
	return uc.provider.AvailableDates(ctx, from, to)
}

func (uc *flightUseCase) Availability(ctx context.Context, req AvailabilityRequest) (domain.Availability, error) {
	p := req.Passengers
	if p.Total() > domain.MaxPassengersTotal {
		return nil, domain.NewValidationError("", "Total passengers cannot exceed 9")
	}
	if p.Adults < domain.MinAdults {
		return nil, domain.NewValidationError("adults", "Adults must be a number between 1 and 9")
	}
	return uc.provider.Availability(ctx, BuildAvailabilityOptions(req))
}
