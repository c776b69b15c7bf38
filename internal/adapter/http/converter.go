package http

import (
	"github.com/flight-search/ryanair-api/internal/domain"
)

// ToAirportSummary projects a provider airport onto AirportSummary.
func ToAirportSummary(a domain.Airport) AirportSummary {
	return AirportSummary{
		Name:     a.Name,
		Code:     a.Code,
		Country:  a.Country.Name,
		Timezone: a.TimeZone,
	}
}

// ToAirportSummaries converts a list of airports, preserving order.
// The result is never nil so an empty list encodes as [].
func ToAirportSummaries(airports []domain.Airport) []AirportSummary {
	out := make([]AirportSummary, 0, len(airports))
	for _, a := range airports {
		out = append(out, ToAirportSummary(a))
	}
	return out
}

// ToDestinationSummaries projects the arrival airport of each destination.
func ToDestinationSummaries(destinations []domain.Destination) []AirportSummary {
	out := make([]AirportSummary, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, ToAirportSummary(d.ArrivalAirport))
	}
	return out
}

// ToAirportDetails projects a provider airport onto AirportDetails.
func ToAirportDetails(a domain.Airport) AirportDetails {
	return AirportDetails{
		Name:     a.Name,
		Timezone: a.TimeZone,
		Code:     a.Code,
		City:     a.City.Name,
		Region:   a.Region.Name,
		Country:  a.Country.Name,
		Currency: a.Country.Currency,
	}
}

// ToClosestAirport projects a geolocation record onto ClosestAirport.
func ToClosestAirport(a domain.GeoAirport) ClosestAirport {
	return ClosestAirport{
		Name:    a.Name,
		Code:    a.IATACode,
		Country: a.CountryName,
	}
}

// ToClosestAirports converts a list of geolocation records, preserving order.
func ToClosestAirports(airports []domain.GeoAirport) []ClosestAirport {
	out := make([]ClosestAirport, 0, len(airports))
	for _, a := range airports {
		out = append(out, ToClosestAirport(a))
	}
	return out
}

// toRouteLists converts routes to plain string slices for encoding.
func toRouteLists(routes []domain.Route) [][]string {
	out := make([][]string, 0, len(routes))
	for _, r := range routes {
		out = append(out, []string(r))
	}
	return out
}
