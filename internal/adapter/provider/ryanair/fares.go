package ryanair

import (
	"context"
	"net/url"

	"github.com/flight-search/ryanair-api/internal/domain"
)

// CheapestPerDay returns the cheapest one-way fare of each day in the month containing startDate.
func (c *Client) CheapestPerDay(ctx context.Context, from, to, startDate, currency string) (*domain.CheapestFares, error) {
	if err := checkCodes(from, to); err != nil {
		return nil, err
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	query := url.Values{}
	query.Set("outboundMonthOfDate", startDate)
	query.Set("currency", currency)

	var fares domain.CheapestFares
	if err := c.getJSON(ctx, "fares.cheapestPerDay", query, &fares,
		"api", "farfnd", "v4", "oneWayFares", from, to, "cheapestPerDay"); err != nil {
		return nil, err
	}
	return &fares, nil
}
