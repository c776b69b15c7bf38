package http

// These types describe provider documents that the API forwards unchanged.
// They exist for the API documentation only; handlers never decode into them.

// SwaggerAvailability is the availability document returned by GET /api/flights/available.
// @Description Provider availability document, forwarded as received
type SwaggerAvailability struct {
	Currency      string        `json:"currency" example:"EUR"`
	CurrPrecision int           `json:"currPrecision" example:"2"`
	TripType      string        `json:"tripType,omitempty" example:"RETURN"`
	ServerTimeUTC string        `json:"serverTimeUTC" example:"2024-06-01T10:15:30.000Z"`
	Trips         []SwaggerTrip `json:"trips"`
}

// SwaggerTrip is one direction of travel in an availability document.
type SwaggerTrip struct {
	Origin      string              `json:"origin" example:"DUB"`
	Destination string              `json:"destination" example:"STN"`
	Dates       []SwaggerFlightDate `json:"dates"`
}

// SwaggerFlightDate lists the flights of one day.
type SwaggerFlightDate struct {
	DateOut string          `json:"dateOut" example:"2024-06-15T00:00:00.000"`
	Flights []SwaggerFlight `json:"flights"`
}

// SwaggerFlight is a single flight in an availability document.
type SwaggerFlight struct {
	FlightNumber string `json:"flightNumber" example:"FR 202"`

	// Time holds the local departure and arrival date-times
	Time []string `json:"time" example:"2024-06-15T06:30:00.000,2024-06-15T07:50:00.000"`

	Duration    string          `json:"duration" example:"01:20"`
	FaresLeft   int             `json:"faresLeft" example:"4"`
	RegularFare *SwaggerFareSet `json:"regularFare,omitempty"`
}

// SwaggerFareSet is the priced fare set of a flight.
type SwaggerFareSet struct {
	FareKey string              `json:"fareKey" example:"ABCDEF"`
	Fares   []SwaggerFlightFare `json:"fares"`
}

// SwaggerFlightFare is the price for one passenger type.
type SwaggerFlightFare struct {
	Type   string  `json:"type" example:"ADT"`
	Amount float64 `json:"amount" example:"29.99"`
	Count  int     `json:"count" example:"1"`
}

// SwaggerSchedules is the timetable document returned by GET /api/airports/{code}/schedules.
// @Description Provider timetable keyed by destination airport code, forwarded as received
type SwaggerSchedules map[string]SwaggerSchedule

// SwaggerSchedule is the timetable of one route.
type SwaggerSchedule struct {
	FirstFlightDate string `json:"firstFlightDate" example:"2024-04-01"`
	LastFlightDate  string `json:"lastFlightDate" example:"2024-10-26"`
	MonthsFromToday []int  `json:"monthsFromToday" example:"0,1,2,3"`
}
