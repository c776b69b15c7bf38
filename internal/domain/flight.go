package domain

import "encoding/json"

// Passenger limits accepted by the provider.
const (
	MaxPassengersPerCategory = 9
	MaxPassengersTotal       = 9
	MinAdults                = 1
)

// Passengers holds the passenger count per fare category.
type Passengers struct {
	Adults   int
	Children int
	Teens    int
	Infants  int
}

// Total returns the number of passengers across all categories.
func (p Passengers) Total() int {
	return p.Adults + p.Children + p.Teens + p.Infants
}

// AvailabilityOptions is the complete query sent to the availability endpoint.
// Every field holds either a caller value or its documented default.
type AvailabilityOptions struct {
	Origin      string
	Destination string
	Passengers  Passengers

	// DateOut is the outbound date (YYYY-MM-DD), empty for the provider default
	DateOut string

	// DateIn is the return date (YYYY-MM-DD), empty for one-way trips
	DateIn string

	PromoCode string

	FlexDaysBeforeOut int
	FlexDaysOut       int
	FlexDaysBeforeIn  int
	FlexDaysIn        int

	IncludeConnectingFlights bool
	ToUs                     string
}

// RoundTrip reports whether a return date was requested.
func (o AvailabilityOptions) RoundTrip() bool {
	return o.DateIn != ""
}

// Availability is the provider's availability document, passed through unmodified.
type Availability = json.RawMessage
