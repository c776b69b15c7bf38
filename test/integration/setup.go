// Package integration provides helpers and integration tests for the Ryanair API.
// Integration tests verify that components work together correctly, including
// the HTTP pipeline, use cases, and the upstream client against a fake provider.
package integration

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	apihttp "github.com/flight-search/ryanair-api/internal/adapter/http"
	"github.com/flight-search/ryanair-api/internal/adapter/provider/ryanair"
	"github.com/flight-search/ryanair-api/internal/config"
	"github.com/flight-search/ryanair-api/internal/domain"
	"github.com/flight-search/ryanair-api/internal/infrastructure/logger"
	"github.com/flight-search/ryanair-api/internal/usecase"
	"github.com/flight-search/ryanair-api/test/testutil"
)

// TestServer wraps the API server and provides helper methods for integration testing.
type TestServer struct {
	Server *apihttp.Server
	Config *config.Config
}

// Option adjusts the configuration of a TestServer.
type Option func(*config.Config)

// WithEnvironment sets APP_ENV.
func WithEnvironment(env string) Option {
	return func(cfg *config.Config) {
		cfg.App.Env = env
	}
}

// WithRateLimit enables the per-client rate limiter.
func WithRateLimit(limit int, window time.Duration) Option {
	return func(cfg *config.Config) {
		cfg.RateLimit.Max = limit
		cfg.RateLimit.WindowMs = window.Milliseconds()
	}
}

// NewTestServer creates a server backed by client with rate limiting disabled.
func NewTestServer(client domain.FlightDataClient, opts ...Option) *TestServer {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 3000, ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second},
		App:    config.AppConfig{Env: "test", Version: "test"},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlers := apihttp.NewHandlers(apihttp.Dependencies{
		Airports:    usecase.NewAirportUseCase(client),
		Fares:       usecase.NewFareUseCase(client, nil),
		Flights:     usecase.NewFlightUseCase(client),
		Version:     cfg.App.Version,
		Environment: cfg.App.Env,
	})

	return &TestServer{
		Server: apihttp.NewServer(cfg, handlers, zerolog.Nop()),
		Config: cfg,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request from the default client address.
func (ts *TestServer) Get(path string) Response {
	return ts.GetFrom(path, "192.0.2.1")
}

// GetFrom executes a GET request as if sent from ip.
func (ts *TestServer) GetFrom(path, ip string) Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(echo.HeaderXRealIP, ip)

	rec := httptest.NewRecorder()
	ts.Server.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Decode parses the response body into out.
func (r *Response) Decode(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// FakeUpstream serves recorded provider responses from test/testdata.
type FakeUpstream struct {
	*httptest.Server

	mu       sync.Mutex
	queries  map[string][]url.Values
	failWith int
}

// NewFakeUpstream starts a fake provider that is closed when the test ends.
func NewFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{queries: make(map[string][]url.Values)}

	e := echo.New()
	e.HideBanner = true
	e.Use(f.record)

	e.GET("/api/views/locate/5/airports/en/active", f.file("airports_active.json"))
	e.GET("/api/views/locate/3/airports/en/active", f.file("airports_active.json"))
	e.GET("/api/views/locate/5/airports/en/:code", f.airport())
	e.GET("/api/geoloc/defaultAirport", f.file("geo_closest.json"))
	e.GET("/api/geoloc/nearbyAirports", f.file("geo_nearby.json"))
	e.GET("/api/views/locate/searchWidget/routes/en/airport/:code", func(c echo.Context) error {
		return f.fileOr(c, "destinations_"+c.Param("code")+".json", `[]`)
	})
	e.GET("/api/timtbl/3/schedules/:code/periods", func(c echo.Context) error {
		return f.fileOr(c, "schedules_"+c.Param("code")+".json", `{}`)
	})
	e.GET("/api/farfnd/v4/oneWayFares/:from/:to/cheapestPerDay", func(c echo.Context) error {
		month := c.QueryParam("outboundMonthOfDate")
		if len(month) >= 7 {
			month = month[:7]
		}
		name := "cheapest_" + c.Param("from") + "_" + c.Param("to") + "_" + month + ".json"
		return f.fileOr(c, name, `{"outbound":{"fares":[]}}`)
	})
	e.GET("/api/farfnd/v4/oneWayFares/:from/:to/availabilities", func(c echo.Context) error {
		return f.fileOr(c, "available_dates_"+c.Param("from")+"_"+c.Param("to")+".json", `[]`)
	})
	e.GET("/api/booking/v4/:market/availability", func(c echo.Context) error {
		name := "availability_" + c.QueryParam("Origin") + "_" + c.QueryParam("Destination") + ".json"
		return f.fileOr(c, name, `{"trips":[]}`)
	})

	f.Server = httptest.NewServer(e)
	t.Cleanup(f.Close)
	return f
}

// FailWith makes every later request answer with status; 0 restores normal behavior.
func (f *FakeUpstream) FailWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = status
}

// Queries returns the query strings received on path.
func (f *FakeUpstream) Queries(path string) []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.queries[path]...)
}

func (f *FakeUpstream) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		f.mu.Lock()
		f.queries[c.Request().URL.Path] = append(f.queries[c.Request().URL.Path], c.Request().URL.Query())
		status := f.failWith
		f.mu.Unlock()

		if status != 0 {
			return c.String(status, http.StatusText(status))
		}
		return next(c)
	}
}

func (f *FakeUpstream) file(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := testutil.ReadTestData(name)
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, data)
	}
}

// fileOr serves the named fixture, or fallback when no such fixture exists.
func (f *FakeUpstream) fileOr(c echo.Context, name, fallback string) error {
	data, err := testutil.ReadTestData(name)
	if errors.Is(err, fs.ErrNotExist) {
		return c.JSONBlob(http.StatusOK, []byte(fallback))
	}
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, data)
}

func (f *FakeUpstream) airport() echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := testutil.ReadTestData("airports_active.json")
		if err != nil {
			return err
		}

		var airports []json.RawMessage
		if err := json.Unmarshal(data, &airports); err != nil {
			return err
		}
		for _, raw := range airports {
			var probe struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(raw, &probe); err == nil && probe.Code == c.Param("code") {
				return c.JSONBlob(http.StatusOK, raw)
			}
		}
		return c.String(http.StatusNotFound, "airport not found")
	}
}

// NewUpstreamClient creates the real provider client pointed at upstream.
func NewUpstreamClient(t *testing.T, upstream *FakeUpstream) *ryanair.Client {
	t.Helper()

	client, err := ryanair.NewClient(ryanair.Config{
		BaseURL: upstream.URL,
		Timeout: 2 * time.Second,
		Market:  "en-gb",
	}, ryanair.WithLogger(logger.Nop()))
	require.NoError(t, err)
	return client
}
