// Package usecase contains the application logic between the HTTP handlers and the flight data provider.
// Composite fare queries fan out one provider call per month using a bounded errgroup.
package usecase

import (
	"time"

	"github.com/flight-search/ryanair-api/internal/domain"
)

// Defaults applied to provider queries.
const (
	DefaultFlexDays       = 2
	DefaultToUs           = "AGREED"
	DefaultRoundTripLimit = 10
	DefaultMaxConcurrency = 4
	DefaultQueryTimeout   = 30 * time.Second
)

// Config contains configuration options for the use cases.
type Config struct {
	// MaxConcurrency bounds the provider calls a composite query runs at once
	MaxConcurrency int

	// QueryTimeout bounds a whole composite query
	QueryTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: DefaultMaxConcurrency,
		QueryTimeout:   DefaultQueryTimeout,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() Config {
	cfg := DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.MaxConcurrency > 0 {
		cfg.MaxConcurrency = c.MaxConcurrency
	}
	if c.QueryTimeout > 0 {
		cfg.QueryTimeout = c.QueryTimeout
	}
	return cfg
}

// AvailabilityRequest holds the caller-supplied part of an availability query.
// Passenger counts are expected to be validated already.
type AvailabilityRequest struct {
	Origin      string
	Destination string
	DateOut     string
	DateIn      string
	PromoCode   string
	Passengers  domain.Passengers
}

// BuildAvailabilityOptions produces the complete provider query for req in one step.
func BuildAvailabilityOptions(req AvailabilityRequest) domain.AvailabilityOptions {
	return domain.AvailabilityOptions{
		Origin:                   req.Origin,
		Destination:              req.Destination,
		Passengers:               req.Passengers,
		DateOut:                  req.DateOut,
		DateIn:                   req.DateIn,
		PromoCode:                req.PromoCode,
		FlexDaysBeforeOut:        DefaultFlexDays,
		FlexDaysOut:              DefaultFlexDays,
		FlexDaysBeforeIn:         DefaultFlexDays,
		FlexDaysIn:               DefaultFlexDays,
		IncludeConnectingFlights: false,
		ToUs:                     DefaultToUs,
	}
}
