// Package domain contains the flight data entities returned by the upstream provider
// and the ports the rest of the service uses to reach it.
package domain

import "encoding/json"

// Airport is the full airport record published by the provider.
type Airport struct {
	// Code is the IATA airport code (e.g., "DUB")
	Code string `json:"code"`

	// Name is the display name (e.g., "Dublin")
	Name string `json:"name"`

	// SeoName is the URL-friendly name (e.g., "dublin")
	SeoName string `json:"seoName,omitempty"`

	// Aliases are alternative names used by search
	Aliases []string `json:"aliases,omitempty"`

	// Base is true when the airport is an airline base
	Base bool `json:"base"`

	City        Location    `json:"city"`
	Region      Location    `json:"region"`
	Country     Country     `json:"country"`
	Coordinates Coordinates `json:"coordinates"`

	// TimeZone is the IANA timezone identifier (e.g., "Europe/Dublin")
	TimeZone string `json:"timeZone"`
}

// Location is a named place such as a city or region.
type Location struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Country describes the country an airport belongs to.
type Country struct {
	// Code is the lowercase ISO 3166 alpha-2 code (e.g., "ie")
	Code string `json:"code"`

	// ISO3Code is the ISO 3166 alpha-3 code (e.g., "IRL")
	ISO3Code string `json:"iso3code,omitempty"`

	Name string `json:"name"`

	// Currency is the local ISO 4217 currency (e.g., "EUR")
	Currency string `json:"currency"`

	DefaultAirportCode string `json:"defaultAirportCode,omitempty"`
	Schengen           bool   `json:"schengen"`
}

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoAirport is the shorter airport record returned by the geolocation endpoints.
type GeoAirport struct {
	IATACode     string      `json:"iataCode"`
	Name         string      `json:"name"`
	SeoName      string      `json:"seoName,omitempty"`
	CountryName  string      `json:"countryName"`
	CountryCode  string      `json:"countryCode,omitempty"`
	CurrencyCode string      `json:"currencyCode,omitempty"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Destination is a route served from an airport.
type Destination struct {
	ArrivalAirport    Airport  `json:"arrivalAirport"`
	ConnectingAirport *Airport `json:"connectingAirport,omitempty"`
	Operator          string   `json:"operator,omitempty"`
}

// Schedules is the provider's timetable document for an airport, passed through unmodified.
type Schedules = json.RawMessage

// Route is an ordered list of airport codes from origin to destination.
type Route []string
