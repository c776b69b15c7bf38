package domain

//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock

import "context"

// AirportProvider looks up airports and the routes between them.
type AirportProvider interface {
	// ActiveAirports returns every airport currently served.
	ActiveAirports(ctx context.Context) ([]Airport, error)

	// ActiveAirportsV3 returns active airports from the v3 listing.
	ActiveAirportsV3(ctx context.Context) ([]Airport, error)

	// ClosestAirport returns the airport closest to the caller's IP address.
	ClosestAirport(ctx context.Context) (*GeoAirport, error)

	// NearbyAirports returns airports near the caller's IP address.
	NearbyAirports(ctx context.Context) ([]GeoAirport, error)

	// AirportInfo returns the record for one airport.
	AirportInfo(ctx context.Context, code string) (*Airport, error)

	// Destinations returns the routes served from an airport.
	Destinations(ctx context.Context, code string) ([]Destination, error)

	// Schedules returns the timetable for an airport.
	Schedules(ctx context.Context, code string) (Schedules, error)
}

// FareProvider looks up one-way fares.
type FareProvider interface {
	// CheapestPerDay returns the cheapest fare of each day in the month containing startDate.
	CheapestPerDay(ctx context.Context, from, to, startDate, currency string) (*CheapestFares, error)
}

// FlightProvider looks up flight dates and availability.
type FlightProvider interface {
	// AvailableDates returns the days with at least one flight between two airports.
	AvailableDates(ctx context.Context, from, to string) ([]string, error)

	// Availability returns bookable flights for the given options.
	Availability(ctx context.Context, opts AvailabilityOptions) (Availability, error)
}

// FlightDataClient is the complete upstream client.
type FlightDataClient interface {
	AirportProvider
	FareProvider
	FlightProvider
}
