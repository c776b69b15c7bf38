package http

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/ryanair-api/internal/domain"
)

func newQueryContext(target string) echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw      string
		fallback int
		want     float64
	}{
		{raw: "", fallback: 1, want: 1},
		{raw: "3", fallback: 0, want: 3},
		{raw: "+2", fallback: 0, want: 2},
		{raw: "-1", fallback: 0, want: -1},
		{raw: "4abc", fallback: 0, want: 4},
		{raw: "2.7", fallback: 0, want: 2},
		{raw: " 5", fallback: 0, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCount(tt.raw, tt.fallback))
		})
	}

	for _, raw := range []string{"abc", "-", "x1", "."} {
		t.Run("NaN "+raw, func(t *testing.T) {
			assert.True(t, math.IsNaN(parseCount(raw, 0)))
		})
	}
}

func TestParsePassengers(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      domain.Passengers
		wantField string
		wantErr   bool
	}{
		{name: "defaults", query: "", want: domain.Passengers{Adults: 1}},
		{name: "full family", query: "adults=2&children=2&teens=1&infants=1", want: domain.Passengers{Adults: 2, Children: 2, Teens: 1, Infants: 1}},
		{name: "exactly nine", query: "adults=3&children=3&teens=3", want: domain.Passengers{Adults: 3, Children: 3, Teens: 3}},
		{name: "ten adults", query: "adults=10", wantErr: true, wantField: "adults"},
		{name: "category checked before total", query: "adults=9&infants=x", wantErr: true, wantField: "infants"},
		{name: "total over nine", query: "adults=9&infants=1", wantErr: true, wantField: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePassengers(newQueryContext("/?" + tt.query))

			if tt.wantErr {
				require.Error(t, err)
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 10},
		{query: "limit=1", want: 1},
		{query: "limit=100", want: 100},
		{query: "limit=25", want: 25},
		{query: "limit=0", wantErr: true},
		{query: "limit=101", wantErr: true},
		{query: "limit=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := ParseLimit(newQueryContext("/?" + tt.query))

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
				assert.Contains(t, err.Error(), "limit")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToAvailabilityRequest(t *testing.T) {
	c := newQueryContext("/?from=DUB&to=STN&dateOut=2024-06-15&dateIn=2024-06-20&promoCode=SALE")
	passengers := domain.Passengers{Adults: 2}

	req := ToAvailabilityRequest(c, passengers)

	assert.Equal(t, "DUB", req.Origin)
	assert.Equal(t, "STN", req.Destination)
	assert.Equal(t, "2024-06-15", req.DateOut)
	assert.Equal(t, "2024-06-20", req.DateIn)
	assert.Equal(t, "SALE", req.PromoCode)
	assert.Equal(t, passengers, req.Passengers)
}

// Rejected query values are answered by the handler itself, without an
// error reaching echo's error handler.
func TestHandlers_WriteValidationErrorsDirectly(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		handle    func(echo.Context) error
		wantMsg   string
		wantField string
	}{
		{
			name:      "adults out of range",
			target:    "/api/flights/available?from=DUB&to=STN&adults=0",
			handle:    NewFlightHandler(nil).Available,
			wantMsg:   "Adults must be a number between 1 and 9",
			wantField: "adults",
		},
		{
			name:    "total passengers",
			target:  "/api/flights/available?from=DUB&to=STN&adults=5&infants=5",
			handle:  NewFlightHandler(nil).Available,
			wantMsg: "Total passengers cannot exceed 9",
		},
		{
			name:      "limit not a number",
			target:    "/api/fares/cheapest-round-trip?from=DUB&to=STN&startDate=2024-06-01&endDate=2024-06-02&limit=abc",
			handle:    NewFareHandler(nil).CheapestRoundTrip,
			wantMsg:   "Limit must be a number between 1 and 100",
			wantField: "limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, tt.target, nil), rec)

			require.NoError(t, tt.handle(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Validation Error", body["error"])
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.Equal(t, tt.wantField, body["field"])
		})
	}
}

func TestWriteValidationError_PassesOtherErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	upstream := domain.NewUpstreamError("flights.availability", 503, errors.New("down"))

	err := writeValidationError(c, upstream)

	assert.Same(t, upstream, err)
	assert.False(t, c.Response().Committed)
}
