package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/ryanair-api/internal/domain"
	"github.com/flight-search/ryanair-api/internal/usecase"
	"github.com/flight-search/ryanair-api/test/mock"
	"github.com/flight-search/ryanair-api/test/testutil"
)

// TestConcurrent_MultipleRequests tests that concurrent requests are
// handled correctly without interference.
func TestConcurrent_MultipleRequests(t *testing.T) {
	client := mock.NewClient().
		WithDelay(10*time.Millisecond).
		WithAirports(
			mock.SampleAirport("DUB", "Dublin", "Ireland", "Europe/Dublin"),
			mock.SampleAirport("STN", "London Stansted", "United Kingdom", "Europe/London"),
		)
	ts := NewTestServer(client)

	numRequests := 20
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.Get("/api/airports/active")
		}(i)
	}
	wg.Wait()

	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)
		var airports []map[string]string
		require.NoError(t, results[i].Decode(&airports))
		assert.Len(t, airports, 2, "request %d should list 2 airports", i)
	}
	assert.Equal(t, numRequests, client.CallCount("ActiveAirports"))
}

// TestConcurrent_IndependentResults tests that each concurrent request
// receives the result for its own parameters.
func TestConcurrent_IndependentResults(t *testing.T) {
	codes := []string{"DUB", "STN", "BCN", "KRK", "WRO"}
	airports := make([]domain.Airport, 0, len(codes))
	for _, code := range codes {
		airports = append(airports, mock.SampleAirport(code, "Airport "+code, "Country", "Europe/Dublin"))
	}
	client := mock.NewClient().WithDelay(5 * time.Millisecond).WithAirports(airports...)
	ts := NewTestServer(client)

	var wg sync.WaitGroup
	results := make([]map[string]string, len(codes)*4)
	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := ts.Get(fmt.Sprintf("/api/airports/%s", codes[idx%len(codes)]))
			var body map[string]string
			if resp.Code == http.StatusOK && resp.Decode(&body) == nil {
				results[idx] = body
			}
		}(i)
	}
	wg.Wait()

	for i, body := range results {
		require.NotNil(t, body, "request %d failed", i)
		assert.Equal(t, codes[i%len(codes)], body["code"])
	}
}

// TestConcurrent_FareFanOutIsBounded tests that a year-long range queries
// every month while never exceeding the configured concurrency.
func TestConcurrent_FareFanOutIsBounded(t *testing.T) {
	client := mock.NewClient().
		WithDelay(20*time.Millisecond).
		WithFares("DUB", "STN", mock.SampleFares(testutil.MustParseDate(t, "2024-01-01"), 366, 10, 0.5)...)
	ts := NewTestServer(client)

	resp := ts.Get("/api/fares/daily-range?from=DUB&to=STN&startDate=2024-01-01&endDate=2024-12-31")

	require.Equal(t, http.StatusOK, resp.Code)
	var fares []domain.Fare
	require.NoError(t, resp.Decode(&fares))
	assert.Len(t, fares, 366)
	assert.Equal(t, 12, client.CallCount("CheapestPerDay"))
	assert.LessOrEqual(t, client.MaxInFlight(), usecase.DefaultMaxConcurrency)
	assert.Greater(t, client.MaxInFlight(), 1)
}

// TestConcurrent_MixedSuccessAndFailure tests that a failing request does not
// affect concurrent requests served by a healthy client.
func TestConcurrent_MixedSuccessAndFailure(t *testing.T) {
	healthy := NewTestServer(mock.NewClient().WithDates("DUB", "STN", "2024-06-15"))
	broken := NewTestServer(mock.NewClient().WithError(fmt.Errorf("connection reset")))

	var wg sync.WaitGroup
	codes := make([]int, 10)
	for i := range codes {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ts := healthy
			if idx%2 == 1 {
				ts = broken
			}
			codes[idx] = ts.Get("/api/flights/dates?from=DUB&to=STN").Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if i%2 == 1 {
			assert.Equal(t, http.StatusInternalServerError, code, "request %d", i)
		} else {
			assert.Equal(t, http.StatusOK, code, "request %d", i)
		}
	}
}

// TestConcurrent_RateLimitPerClient tests that the limiter admits exactly
// the configured number of requests per client within a window.
func TestConcurrent_RateLimitPerClient(t *testing.T) {
	client := mock.NewClient().WithDates("DUB", "STN", "2024-06-15")
	ts := NewTestServer(client, WithRateLimit(5, time.Hour))

	numRequests := 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses = map[int]int{}
	)
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code := ts.GetFrom("/api/flights/dates?from=DUB&to=STN", "203.0.113.7").Code
			mu.Lock()
			statuses[code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, statuses[http.StatusOK])
	assert.Equal(t, numRequests-5, statuses[http.StatusTooManyRequests])
	assert.Equal(t, 5, client.CallCount("AvailableDates"))

	other := ts.GetFrom("/api/flights/dates?from=DUB&to=STN", "203.0.113.8")
	assert.Equal(t, http.StatusOK, other.Code)

	limited := ts.GetFrom("/health", "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	body, err := limited.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "Too many requests from this IP, please try again later.", body["message"])
}
