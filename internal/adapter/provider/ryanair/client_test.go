package ryanair

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/ryanair-api/internal/domain"
)

// newTestClient starts a provider stub and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: 2 * time.Second, Market: "en-gb"})
	require.NoError(t, err)
	return c
}

// respond writes body as JSON when the request path matches wantPath.
func respond(t *testing.T, wantPath string, body any, capture *url.Values) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("unexpected path %q, want %q", r.URL.Path, wantPath)
			http.NotFound(w, r)
			return
		}
		if capture != nil {
			*capture = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "https://www.ryanair.com", Timeout: time.Second, Market: "en-gb"}, false},
		{"missing base url", Config{Timeout: time.Second, Market: "en-gb"}, true},
		{"relative base url", Config{BaseURL: "ryanair", Timeout: time.Second, Market: "en-gb"}, true},
		{"zero timeout", Config{BaseURL: "https://www.ryanair.com", Market: "en-gb"}, true},
		{"missing market", Config{BaseURL: "https://www.ryanair.com", Timeout: time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ProviderName, c.Name())
		})
	}
}

func TestClient_WithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Minute}
	c, err := NewClient(Config{BaseURL: "https://www.ryanair.com", Timeout: time.Second, Market: "en-gb"}, WithHTTPClient(hc))
	require.NoError(t, err)
	assert.Same(t, hc, c.httpClient)
}

func TestClient_Airports(t *testing.T) {
	dublin := domain.Airport{
		Code:     "DUB",
		Name:     "Dublin",
		TimeZone: "Europe/Dublin",
		City:     domain.Location{Name: "Dublin", Code: "DUBLIN"},
		Country:  domain.Country{Code: "ie", Name: "Ireland", Currency: "EUR"},
	}
	ctx := context.Background()

	t.Run("active", func(t *testing.T) {
		c := newTestClient(t, respond(t, "/api/views/locate/5/airports/en/active", []domain.Airport{dublin}, nil))
		airports, err := c.ActiveAirports(ctx)
		require.NoError(t, err)
		require.Len(t, airports, 1)
		assert.Equal(t, "Ireland", airports[0].Country.Name)
	})

	t.Run("active v3", func(t *testing.T) {
		c := newTestClient(t, respond(t, "/api/views/locate/3/airports/en/active", []domain.Airport{dublin}, nil))
		airports, err := c.ActiveAirportsV3(ctx)
		require.NoError(t, err)
		assert.Len(t, airports, 1)
	})

	t.Run("info", func(t *testing.T) {
		c := newTestClient(t, respond(t, "/api/views/locate/5/airports/en/DUB", dublin, nil))
		airport, err := c.AirportInfo(ctx, "DUB")
		require.NoError(t, err)
		assert.Equal(t, "Europe/Dublin", airport.TimeZone)
	})

	t.Run("closest", func(t *testing.T) {
		c := newTestClient(t, respond(t, "/api/geoloc/defaultAirport",
			domain.GeoAirport{IATACode: "DUB", Name: "Dublin", CountryName: "Ireland"}, nil))
		airport, err := c.ClosestAirport(ctx)
		require.NoError(t, err)
		assert.Equal(t, "DUB", airport.IATACode)
	})

	t.Run("nearby", func(t *testing.T) {
		c := newTestClient(t, respond(t, "/api/geoloc/nearbyAirports",
			[]domain.GeoAirport{{IATACode: "DUB"}, {IATACode: "ORK"}}, nil))
		airports, err := c.NearbyAirports(ctx)
		require.NoError(t, err)
		assert.Len(t, airports, 2)
	})

	t.Run("destinations", func(t *testing.T) {
		c := newTestClient(t, respond(t, "/api/views/locate/searchWidget/routes/en/airport/DUB",
			[]domain.Destination{{ArrivalAirport: domain.Airport{Code: "STN"}}}, nil))
		destinations, err := c.Destinations(ctx, "DUB")
		require.NoError(t, err)
		require.Len(t, destinations, 1)
		assert.Equal(t, "STN", destinations[0].ArrivalAirport.Code)
	})

	t.Run("schedules pass through", func(t *testing.T) {
		c := newTestClient(t, respond(t, "/api/timtbl/3/schedules/DUB/periods",
			map[string]any{"summer": map[string]string{"firstFlightDate": "2024-03-31"}}, nil))
		schedules, err := c.Schedules(ctx, "DUB")
		require.NoError(t, err)
		assert.JSONEq(t, `{"summer":{"firstFlightDate":"2024-03-31"}}`, string(schedules))
	})
}

func TestClient_RejectsInvalidCodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("provider must not be called, got %s", r.URL.Path)
	})
	ctx := context.Background()

	calls := map[string]func() error{
		"info": func() error {
			_, err := c.AirportInfo(ctx, "XX")
			return err
		},
		"destinations": func() error {
			_, err := c.Destinations(ctx, "dub")
			return err
		},
		"schedules": func() error {
			_, err := c.Schedules(ctx, "DUBL")
			return err
		},
		"cheapest per day": func() error {
			_, err := c.CheapestPerDay(ctx, "DUB", "ST1", "2024-06-01", "EUR")
			return err
		},
		"dates": func() error {
			_, err := c.AvailableDates(ctx, "", "STN")
			return err
		},
		"availability": func() error {
			_, err := c.Availability(ctx, domain.AvailabilityOptions{Origin: "DUB", Destination: "S"})
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, domain.IsInvalidIATACode(err))
		})
	}
}

func TestClient_CheapestPerDay(t *testing.T) {
	var query url.Values
	body := domain.CheapestFares{Outbound: domain.FareList{Fares: []domain.Fare{
		{Day: "2024-06-01", Price: &domain.Price{Value: 19.99, CurrencyCode: "GBP"}},
		{Day: "2024-06-02", Unavailable: true},
	}}}
	c := newTestClient(t, respond(t, "/api/farfnd/v4/oneWayFares/DUB/STN/cheapestPerDay", body, &query))

	fares, err := c.CheapestPerDay(context.Background(), "DUB", "STN", "2024-06-01", "GBP")
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01", query.Get("outboundMonthOfDate"))
	assert.Equal(t, "GBP", query.Get("currency"))
	require.Len(t, fares.Outbound.Fares, 2)
	assert.True(t, fares.Outbound.Fares[0].Bookable())
	assert.False(t, fares.Outbound.Fares[1].Bookable())
	assert.Nil(t, fares.Inbound)
}

func TestClient_CheapestPerDay_DefaultCurrency(t *testing.T) {
	var query url.Values
	c := newTestClient(t, respond(t, "/api/farfnd/v4/oneWayFares/DUB/STN/cheapestPerDay", domain.CheapestFares{}, &query))

	_, err := c.CheapestPerDay(context.Background(), "DUB", "STN", "2024-06-01", "")
	require.NoError(t, err)
	assert.Equal(t, "EUR", query.Get("currency"))
}

func TestClient_AvailableDates(t *testing.T) {
	c := newTestClient(t, respond(t, "/api/farfnd/v4/oneWayFares/DUB/STN/availabilities",
		[]string{"2024-06-01", "2024-06-03"}, nil))

	dates, err := c.AvailableDates(context.Background(), "DUB", "STN")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01", "2024-06-03"}, dates)
}

func TestClient_Availability(t *testing.T) {
	tests := []struct {
		name      string
		opts      domain.AvailabilityOptions
		wantQuery map[string]string
		absent    []string
	}{
		{
			name: "one way",
			opts: domain.AvailabilityOptions{
				Origin: "DUB", Destination: "STN", DateOut: "2024-06-15",
				Passengers:  domain.Passengers{Adults: 2, Children: 1},
				FlexDaysOut: 2, FlexDaysIn: 2, ToUs: "AGREED",
			},
			wantQuery: map[string]string{
				"ADT": "2", "CHD": "1", "TEEN": "0", "INF": "0",
				"Origin": "DUB", "Destination": "STN", "DateOut": "2024-06-15",
				"RoundTrip": "false", "FlexDaysOut": "2", "ToUs": "AGREED",
				"IncludeConnectingFlights": "false",
			},
			absent: []string{"DateIn", "promoCode"},
		},
		{
			name: "round trip with promo code",
			opts: domain.AvailabilityOptions{
				Origin: "DUB", Destination: "STN", DateOut: "2024-06-15", DateIn: "2024-06-20",
				Passengers: domain.Passengers{Adults: 1}, PromoCode: "SUMMER",
			},
			wantQuery: map[string]string{
				"DateIn": "2024-06-20", "RoundTrip": "true", "promoCode": "SUMMER",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var query url.Values
			c := newTestClient(t, respond(t, "/api/booking/v4/en-gb/availability",
				map[string]any{"currency": "EUR", "trips": []any{}}, &query))

			availability, err := c.Availability(context.Background(), tt.opts)
			require.NoError(t, err)
			assert.JSONEq(t, `{"currency":"EUR","trips":[]}`, string(availability))

			for k, v := range tt.wantQuery {
				assert.Equal(t, v, query.Get(k), k)
			}
			for _, k := range tt.absent {
				assert.False(t, query.Has(k), k)
			}
		})
	}
}

func TestClient_UpstreamErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
		})

		_, err := c.ActiveAirports(context.Background())
		require.Error(t, err)
		assert.True(t, domain.IsUpstream(err))

		var upstream *domain.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
		assert.Equal(t, "airports.active", upstream.Operation)
		assert.Contains(t, err.Error(), "maintenance")
	})

	t.Run("malformed body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		})

		_, err := c.AvailableDates(context.Background(), "DUB", "STN")
		require.Error(t, err)
		assert.True(t, domain.IsUpstream(err))
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("cancelled context", func(t *testing.T) {
		c := newTestClient(t, respond(t, "/api/geoloc/nearbyAirports", []domain.GeoAirport{}, nil))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.NearbyAirports(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
