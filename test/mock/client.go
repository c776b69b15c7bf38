// Package mock provides test doubles for the Ryanair API.
// These fakes are designed for integration testing where we need
// configurable behavior (delays, errors, canned data) across many calls.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/flight-search/ryanair-api/internal/domain"
	"github.com/flight-search/ryanair-api/internal/infrastructure/timeutil"
)

// Client is a configurable in-memory implementation of domain.FlightDataClient.
// It is safe for concurrent use and records how it was called.
type Client struct {
	mu sync.Mutex

	airports     []domain.Airport
	geo          []domain.GeoAirport
	destinations map[string][]domain.Destination
	fares        map[string][]domain.Fare
	dates        map[string][]string
	availability domain.Availability
	schedules    domain.Schedules

	err   error
	delay time.Duration

	calls       map[string]int
	inFlight    int
	maxInFlight int
	lastOptions domain.AvailabilityOptions
}

// NewClient creates an empty fake client.
// The client is configured using the builder pattern methods.
func NewClient() *Client {
	return &Client{
		destinations: make(map[string][]domain.Destination),
		fares:        make(map[string][]domain.Fare),
		dates:        make(map[string][]string),
		calls:        make(map[string]int),
	}
}

// WithAirports configures the active airport listing and the airport lookups.
func (c *Client) WithAirports(airports ...domain.Airport) *Client {
	c.airports = airports
	return c
}

// WithGeoAirports configures the geolocation results; the first one is the closest.
func (c *Client) WithGeoAirports(airports ...domain.GeoAirport) *Client {
	c.geo = airports
	return c
}

// WithDestinations configures the routes served from code.
func (c *Client) WithDestinations(code string, arrivals ...string) *Client {
	for _, arrival := range arrivals {
		c.destinations[code] = append(c.destinations[code], domain.Destination{
			ArrivalAirport: domain.Airport{Code: arrival, Name: arrival},
		})
	}
	return c
}

// WithFares adds daily fares for the route from-to.
func (c *Client) WithFares(from, to string, fares ...domain.Fare) *Client {
	key := routeKey(from, to)
	c.fares[key] = append(c.fares[key], fares...)
	return c
}

// WithDates configures the days with flights for the route from-to.
func (c *Client) WithDates(from, to string, dates ...string) *Client {
	c.dates[routeKey(from, to)] = dates
	return c
}

// WithAvailability configures the availability document returned for every query.
func (c *Client) WithAvailability(doc string) *Client {
	c.availability = json.RawMessage(doc)
	return c
}

// WithSchedules configures the timetable document returned for every airport.
func (c *Client) WithSchedules(doc string) *Client {
	c.schedules = json.RawMessage(doc)
	return c
}

// WithError configures every operation to fail with err.
func (c *Client) WithError(err error) *Client {
	c.err = err
	return c
}

// WithDelay configures every operation to wait d before responding.
// This is useful for testing timeout and concurrency behavior.
func (c *Client) WithDelay(d time.Duration) *Client {
	c.delay = d
	return c
}

// CallCount returns the number of calls made to operation, e.g. "CheapestPerDay".
func (c *Client) CallCount(operation string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[operation]
}

// MaxInFlight returns the highest number of calls observed running at once.
func (c *Client) MaxInFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxInFlight
}

// LastAvailabilityOptions returns the options of the most recent Availability call.
func (c *Client) LastAvailabilityOptions() domain.AvailabilityOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastOptions
}

// Reset clears the recorded calls.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = make(map[string]int)
	c.maxInFlight = 0
}

// begin records a call, applies the configured delay, and returns the configured error.
func (c *Client) begin(ctx context.Context, operation string) error {
	c.mu.Lock()
	c.calls[operation]++
	c.inFlight++
	if c.inFlight > c.maxInFlight {
		c.maxInFlight = c.inFlight
	}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight--
		c.mu.Unlock()
	}()

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.delay):
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if c.err != nil {
		return domain.NewUpstreamError(operation, 0, c.err)
	}
	return nil
}

func (c *Client) ActiveAirports(ctx context.Context) ([]domain.Airport, error) {
	if err := c.begin(ctx, "ActiveAirports"); err != nil {
		return nil, err
	}
	return c.airports, nil
}

func (c *Client) ActiveAirportsV3(ctx context.Context) ([]domain.Airport, error) {
	if err := c.begin(ctx, "ActiveAirportsV3"); err != nil {
		return nil, err
	}
	return c.airports, nil
}

func (c *Client) ClosestAirport(ctx context.Context) (*domain.GeoAirport, error) {
	if err := c.begin(ctx, "ClosestAirport"); err != nil {
		return nil, err
	}
	if len(c.geo) == 0 {
		return nil, nil
	}
	closest := c.geo[0]
	return &closest, nil
}

func (c *Client) NearbyAirports(ctx context.Context) ([]domain.GeoAirport, error) {
	if err := c.begin(ctx, "NearbyAirports"); err != nil {
		return nil, err
	}
	return c.geo, nil
}

func (c *Client) AirportInfo(ctx context.Context, code string) (*domain.Airport, error) {
	if err := c.begin(ctx, "AirportInfo"); err != nil {
		return nil, err
	}
	for _, a := range c.airports {
		if a.Code == code {
			found := a
			return &found, nil
		}
	}
	return nil, domain.NewUpstreamError("AirportInfo", 404, fmt.Errorf("airport %s not found", code))
}

func (c *Client) Destinations(ctx context.Context, code string) ([]domain.Destination, error) {
	if err := c.begin(ctx, "Destinations"); err != nil {
		return nil, err
	}
	return c.destinations[code], nil
}

func (c *Client) Schedules(ctx context.Context, code string) (domain.Schedules, error) {
	if err := c.begin(ctx, "Schedules"); err != nil {
		return nil, err
	}
	return c.schedules, nil
}

// CheapestPerDay returns the configured fares of the month containing startDate, ordered by day.
func (c *Client) CheapestPerDay(ctx context.Context, from, to, startDate, currency string) (*domain.CheapestFares, error) {
	if err := c.begin(ctx, "CheapestPerDay"); err != nil {
		return nil, err
	}

	month := startDate
	if len(month) >= 7 {
		month = month[:7]
	}

	var fares []domain.Fare
	for _, f := range c.fares[routeKey(from, to)] {
		if len(f.Day) >= 7 && f.Day[:7] == month {
			if f.Price != nil {
				priced := *f.Price
				priced.CurrencyCode = currency
				f.Price = &priced
			}
			fares = append(fares, f)
		}
	}
	sort.Slice(fares, func(i, j int) bool { return fares[i].Day < fares[j].Day })

	return &domain.CheapestFares{Outbound: domain.FareList{Fares: fares}}, nil
}

func (c *Client) AvailableDates(ctx context.Context, from, to string) ([]string, error) {
	if err := c.begin(ctx, "AvailableDates"); err != nil {
		return nil, err
	}
	return c.dates[routeKey(from, to)], nil
}

func (c *Client) Availability(ctx context.Context, opts domain.AvailabilityOptions) (domain.Availability, error) {
	c.mu.Lock()
	c.lastOptions = opts
	c.mu.Unlock()

	if err := c.begin(ctx, "Availability"); err != nil {
		return nil, err
	}
	return c.availability, nil
}

func routeKey(from, to string) string {
	return from + "-" + to
}

// Ensure Client implements domain.FlightDataClient at compile time.
var _ domain.FlightDataClient = (*Client)(nil)

// SampleAirport returns a realistic airport record for code.
func SampleAirport(code, name, country, timezone string) domain.Airport {
	return domain.Airport{
		Code:     code,
		Name:     name,
		City:     domain.Location{Name: name},
		Region:   domain.Location{Name: name},
		Country:  domain.Country{Name: country, Currency: "EUR"},
		TimeZone: timezone,
	}
}

// SampleFares returns count consecutive daily fares starting at start.
// Prices start at base and rise by step each day.
func SampleFares(start time.Time, count int, base, step float64) []domain.Fare {
	fares := make([]domain.Fare, count)
	for i := 0; i < count; i++ {
		day := start.AddDate(0, 0, i)
		fares[i] = domain.Fare{
			Day:           timeutil.FormatDate(day),
			DepartureDate: day.Add(6*time.Hour + 30*time.Minute).Format("2006-01-02T15:04:05"),
			ArrivalDate:   day.Add(7*time.Hour + 50*time.Minute).Format("2006-01-02T15:04:05"),
			Price: &domain.Price{
				Value:        base + float64(i)*step,
				CurrencyCode: domain.DefaultCurrency,
			},
		}
	}
	return fares
}
