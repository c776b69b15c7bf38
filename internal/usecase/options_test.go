package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flight-search/ryanair-api/internal/domain"
)

func TestBuildAvailabilityOptions(t *testing.T) {
	req := AvailabilityRequest{
		Origin:      "DUB",
		Destination: "STN",
		DateOut:     "2024-06-15",
		PromoCode:   "SUMMER",
		Passengers:  domain.Passengers{Adults: 2, Infants: 1},
	}

	opts := BuildAvailabilityOptions(req)

	assert.Equal(t, domain.AvailabilityOptions{
		Origin:                   "DUB",
		Destination:              "STN",
		Passengers:               domain.Passengers{Adults: 2, Infants: 1},
		DateOut:                  "2024-06-15",
		PromoCode:                "SUMMER",
		FlexDaysBeforeOut:        2,
		FlexDaysOut:              2,
		FlexDaysBeforeIn:         2,
		FlexDaysIn:               2,
		IncludeConnectingFlights: false,
		ToUs:                     "AGREED",
	}, opts)
	assert.False(t, opts.RoundTrip())
}

func TestBuildAvailabilityOptions_RoundTrip(t *testing.T) {
	opts := BuildAvailabilityOptions(AvailabilityRequest{
		Origin:      "DUB",
		Destination: "STN",
		DateOut:     "2024-06-15",
		DateIn:      "2024-06-20",
		Passengers:  domain.Passengers{Adults: 1},
	})

	assert.True(t, opts.RoundTrip())
	assert.Equal(t, "2024-06-20", opts.DateIn)
	assert.Empty(t, opts.PromoCode)
}

func TestConfig_WithDefaults(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   Config
	}{
		{"nil config", nil, DefaultConfig()},
		{"zero values", &Config{}, DefaultConfig()},
		{"overrides", &Config{MaxConcurrency: 2, QueryTimeout: time.Second}, Config{MaxConcurrency: 2, QueryTimeout: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.withDefaults())
		})
	}
}
