package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/flight-search/ryanair-api/internal/domain"
)

// AirportUseCase defines the airport lookups exposed by the API.
type AirportUseCase interface {
	ActiveAirports(ctx context.Context) ([]domain.Airport, error)
	ActiveAirportsV3(ctx context.Context) ([]domain.Airport, error)
	ClosestAirport(ctx context.Context) (*domain.GeoAirport, error)
	NearbyAirports(ctx context.Context) ([]domain.GeoAirport, error)
	AirportInfo(ctx context.Context, code string) (*domain.Airport, error)
	Destinations(ctx context.Context, code string) ([]domain.Destination, error)
	Schedules(ctx context.Context, code string) (domain.Schedules, error)

	// FindRoutes returns the direct route and the one-stop routes between two airports.
	FindRoutes(ctx context.Context, from, to string) ([]domain.Route, error)
}

type airportUseCase struct {
	provider domain.AirportProvider
}

// NewAirportUseCase creates an AirportUseCase backed by provider.
func NewAirportUseCase(provider domain.AirportProvider) AirportUseCase {
	return &airportUseCase{provider: provider}
}

func (uc *airportUseCase) ActiveAirports(ctx context.Context) ([]domain.Airport, error) {
	return uc.provider.ActiveAirports(ctx)
}

func (uc *airportUseCase) ActiveAirportsV3(ctx context.Context) ([]domain.Airport, error) {
	return uc.provider.ActiveAirportsV3(ctx)
}

func (uc *airportUseCase) ClosestAirport(ctx context.Context) (*domain.GeoAirport, error) {
	return uc.provider.ClosestAirport(ctx)
}

func (uc *airportUseCase) NearbyAirports(ctx context.Context) ([]domain.GeoAirport, error) {
	return uc.provider.NearbyAirports(ctx)
}

func (uc *airportUseCase) AirportInfo(ctx context.Context, code string) (*domain.Airport, error) {
	return uc.provider.AirportInfo(ctx, code)
}

func (uc *airportUseCase) Destinations(ctx context.Context, code string) ([]domain.Destination, error) {
	return uc.provider.Destinations(ctx, code)
}

func (uc *airportUseCase) Schedules(ctx context.Context, code string) (domain.Schedules, error) {
	return uc.provider.Schedules(ctx, code)
}

// FindRoutes looks up the destinations of both airports concurrently.
// A route is direct when to is served from from without a connection.
// One-stop routes go through an airport served directly from both ends.
func (uc *airportUseCase) FindRoutes(ctx context.Context, from, to string) ([]domain.Route, error) {
	routes := make([]domain.Route, 0)
	if from == to {
		return routes, nil
	}

	var fromDest, toDest []domain.Destination
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fromDest, err = uc.provider.Destinations(gctx, from)
		return err
	})
	g.Go(func() error {
		var err error
		toDest, err = uc.provider.Destinations(gctx, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reachableFromTo := make(map[string]bool, len(toDest))
	for _, d := range toDest {
		if d.ConnectingAirport == nil {
			reachableFromTo[d.ArrivalAirport.Code] = true
		}
	}

	var oneStop []domain.Route
	seen := make(map[string]bool, len(fromDest))
	for _, d := range fromDest {
		code := d.ArrivalAirport.Code
		if d.ConnectingAirport != nil || seen[code] {
			continue
		}
		seen[code] = true

		switch {
		case code == to:
			routes = append(routes, domain.Route{from, to})
		case code != from && reachableFromTo[code]:
			oneStop = append(oneStop, domain.Route{from, code, to})
		}
	}

	return append(routes, oneStop...), nil
}
