package ryanair

import (
	"context"
	"net/url"
	"strconv"

	"github.com/flight-search/ryanair-api/internal/domain"
)

// AvailableDates returns the days with at least one flight between two airports.
func (c *Client) AvailableDates(ctx context.Context, from, to string) ([]string, error) {
	if err := checkCodes(from, to); err != nil {
		return nil, err
	}

	var dates []string
	if err := c.getJSON(ctx, "flights.dates", nil, &dates,
		"api", "farfnd", "v4", "oneWayFares", from, to, "availabilities"); err != nil {
		return nil, err
	}
	return dates, nil
}

// Availability returns the bookable flights matching opts.
func (c *Client) Availability(ctx context.Context, opts domain.AvailabilityOptions) (domain.Availability, error) {
	if err := checkCodes(opts.Origin, opts.Destination); err != nil {
		return nil, err
	}

	var availability domain.Availability
	if err := c.getJSON(ctx, "flights.availability", availabilityQuery(opts), &availability,
		"api", "booking", "v4", c.market, "availability"); err != nil {
		return nil, err
	}
	return availability, nil
}

// availabilityQuery encodes opts using the provider's parameter names.
func availabilityQuery(opts domain.AvailabilityOptions) url.Values {
	q := url.Values{}
	q.Set("ADT", strconv.Itoa(opts.Passengers.Adults))
	q.Set("CHD", strconv.Itoa(opts.Passengers.Children))
	q.Set("TEEN", strconv.Itoa(opts.Passengers.Teens))
	q.Set("INF", strconv.Itoa(opts.Passengers.Infants))
	q.Set("Origin", opts.Origin)
	q.Set("Destination", opts.Destination)
	q.Set("DateOut", opts.DateOut)
	if opts.RoundTrip() {
		q.Set("DateIn", opts.DateIn)
	}
	if opts.PromoCode != "" {
		q.Set("promoCode", opts.PromoCode)
	}
	q.Set("FlexDaysBeforeOut", strconv.Itoa(opts.FlexDaysBeforeOut))
	q.Set("FlexDaysOut", strconv.Itoa(opts.FlexDaysOut))
	q.Set("FlexDaysBeforeIn", strconv.Itoa(opts.FlexDaysBeforeIn))
	q.Set("FlexDaysIn", strconv.Itoa(opts.FlexDaysIn))
	q.Set("IncludeConnectingFlights", strconv.FormatBool(opts.IncludeConnectingFlights))
	q.Set("RoundTrip", strconv.FormatBool(opts.RoundTrip()))
	q.Set("ToUs", opts.ToUs)
	return q
}
