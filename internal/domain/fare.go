package domain

import "math"

// DefaultCurrency is used when a fare query does not name a currency.
const DefaultCurrency = "EUR"

// Price is a monetary amount in a given currency.
type Price struct {
	Value               float64 `json:"value"`
	ValueMainUnit       string  `json:"valueMainUnit,omitempty"`
	ValueFractionalUnit string  `json:"valueFractionalUnit,omitempty"`
	CurrencyCode        string  `json:"currencyCode"`
	CurrencySymbol      string  `json:"currencySymbol,omitempty"`
}

// Fare is the cheapest one-way fare for a single day.
type Fare struct {
	// Day is the calendar day in YYYY-MM-DD format
	Day string `json:"day"`

	// DepartureDate and ArrivalDate are local date-times (e.g., "2024-06-15T06:30:00")
	DepartureDate string `json:"departureDate,omitempty"`
	ArrivalDate   string `json:"arrivalDate,omitempty"`

	// Price is nil when the day has no bookable fare
	Price *Price `json:"price"`

	SoldOut     bool `json:"soldOut"`
	Unavailable bool `json:"unavailable"`
}

// Bookable reports whether the fare can be sold.
func (f Fare) Bookable() bool {
	return f.Price != nil && !f.SoldOut && !f.Unavailable
}

// FareList is the per-day fare listing for one direction of travel.
type FareList struct {
	Fares   []Fare `json:"fares"`
	MinFare *Fare  `json:"minFare,omitempty"`
	MaxFare *Fare  `json:"maxFare,omitempty"`
}

// CheapestFares is the provider's cheapest-per-day response for a month.
type CheapestFares struct {
	Outbound FareList  `json:"outbound"`
	Inbound  *FareList `json:"inbound,omitempty"`
}

// RoundTrip pairs an outbound fare with an inbound fare.
type RoundTrip struct {
	Outbound   Fare  `json:"outbound"`
	Inbound    Fare  `json:"inbound"`
	TotalPrice Price `json:"totalPrice"`
}

// NewRoundTrip pairs two bookable fares and sums their prices.
// Both fares must carry a price.
func NewRoundTrip(outbound, inbound Fare) RoundTrip {
	total := math.Round((outbound.Price.Value+inbound.Price.Value)*100) / 100
	return RoundTrip{
		Outbound: outbound,
		Inbound:  inbound,
		TotalPrice: Price{
			Value:        total,
			CurrencyCode: outbound.Price.CurrencyCode,
		},
	}
}
