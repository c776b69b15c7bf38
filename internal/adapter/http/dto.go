package http

// AirportSummary is the short airport record returned by the listing endpoints.
type AirportSummary struct {
	Name     string `json:"name" example:"Dublin"`
	Code     string `json:"code" example:"DUB"`
	Country  string `json:"country" example:"Ireland"`
	Timezone string `json:"timezone" example:"Europe/Dublin"`
}

// AirportDetails is the airport record returned by GET /api/airports/{code}.
type AirportDetails struct {
	Name     string `json:"name" example:"Dublin"`
	Timezone string `json:"timezone" example:"Europe/Dublin"`
	Code     string `json:"code" example:"DUB"`
	City     string `json:"city" example:"Dublin"`
	Region   string `json:"region" example:"Dublin"`
	Country  string `json:"country" example:"Ireland"`

	// Currency is the local ISO 4217 currency
	Currency string `json:"currency" example:"EUR"`
}

// ClosestAirport is the airport record returned by the geolocation endpoints.
type ClosestAirport struct {
	Name    string `json:"name" example:"Dublin"`
	Code    string `json:"code" example:"DUB"`
	Country string `json:"country" example:"Ireland"`
}
