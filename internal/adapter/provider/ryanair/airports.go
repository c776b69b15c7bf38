package ryanair

import (
	"context"

	"github.com/flight-search/ryanair-api/internal/domain"
)

// ActiveAirports returns every airport currently served.
func (c *Client) ActiveAirports(ctx context.Context) ([]domain.Airport, error) {
	var airports []domain.Airport
	if err := c.getJSON(ctx, "airports.active", nil, &airports,
		"api", "views", "locate", "5", "airports", "en", "active"); err != nil {
		return nil, err
	}
	return airports, nil
}

// ActiveAirportsV3 returns active airports from the older v3 listing.
func (c *Client) ActiveAirportsV3(ctx context.Context) ([]domain.Airport, error) {
	var airports []domain.Airport
	if err := c.getJSON(ctx, "airports.activeV3", nil, &airports,
		"api", "views", "locate", "3", "airports", "en", "active"); err != nil {
		return nil, err
	}
	return airports, nil
}

// ClosestAirport returns the airport the provider geolocates as closest to the caller.
func (c *Client) ClosestAirport(ctx context.Context) (*domain.GeoAirport, error) {
	var airport domain.GeoAirport
	if err := c.getJSON(ctx, "airports.closest", nil, &airport,
		"api", "geoloc", "defaultAirport"); err != nil {
		return nil, err
	}
	return &airport, nil
}

// NearbyAirports returns the airports the provider geolocates near the caller.
func (c *Client) NearbyAirports(ctx context.Context) ([]domain.GeoAirport, error) {
	var airports []domain.GeoAirport
	if err := c.getJSON(ctx, "airports.nearby", nil, &airports,
		"api", "geoloc", "nearbyAirports"); err != nil {
		return nil, err
	}
	return airports, nil
}

// AirportInfo returns the full record for one airport.
func (c *Client) AirportInfo(ctx context.Context, code string) (*domain.Airport, error) {
	if err := checkCodes(code); err != nil {
		return nil, err
	}

	var airport domain.Airport
	if err := c.getJSON(ctx, "airports.info", nil, &airport,
		"api", "views", "locate", "5", "airports", "en", code); err != nil {
		return nil, err
	}
	return &airport, nil
}

// Destinations returns the routes served from an airport.
func (c *Client) Destinations(ctx context.Context, code string) ([]domain.Destination, error) {
	if err := checkCodes(code); err != nil {
		return nil, err
	}

	var destinations []domain.Destination
	if err := c.getJSON(ctx, "airports.destinations", nil, &destinations,
		"api", "views", "locate", "searchWidget", "routes", "en", "airport", code); err != nil {
		return nil, err
	}
	return destinations, nil
}

// Schedules returns the timetable periods for an airport.
func (c *Client) Schedules(ctx context.Context, code string) (domain.Schedules, error) {
	if err := checkCodes(code); err != nil {
		return nil, err
	}

	var schedules domain.Schedules
	if err := c.getJSON(ctx, "airports.schedules", nil, &schedules,
		"api", "timtbl", "3", "schedules", code, "periods"); err != nil {
		return nil, err
	}
	return schedules, nil
}
