// Package ryanair implements the domain provider ports against the Ryanair public web API.
package ryanair

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/flight-search/ryanair-api/internal/domain"
	"github.com/flight-search/ryanair-api/internal/infrastructure/logger"
	"github.com/flight-search/ryanair-api/internal/validation"
)

// ProviderName identifies this provider in logs.
const ProviderName = "ryanair"

const (
	userAgent = "ryanair-api/1.0"

	// maxErrorBody caps how much of a failed response is kept in the error.
	maxErrorBody = 512
)

// Config holds the client settings.
type Config struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
	Market  string        `validate:"required"`
}

// Client calls the provider over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	market     string
	httpClient *http.Client
	log        *logger.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for call tracing.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

var _ domain.FlightDataClient = (*Client)(nil)

// NewClient creates a provider client from cfg.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid ryanair client config: %w", err)
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	c := &Client{
		baseURL:    base,
		market:     cfg.Market,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// getJSON performs a GET request and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, operation string, query url.Values, out any, segments ...string) error {
	endpoint := c.baseURL.JoinPath(segments...)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return domain.NewUpstreamError(operation, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	log := c.log.WithOperation(operation)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Dur("latency", time.Since(start)).Msg("Provider request failed")
		return domain.NewUpstreamError(operation, 0, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("url", endpoint.Redacted()).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Provider request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.NewUpstreamError(operation, resp.StatusCode, fmt.Errorf("%s: %s",
			http.StatusText(resp.StatusCode), strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewUpstreamError(operation, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}

	return nil
}

// checkCodes rejects any airport code that is not three uppercase letters.
func checkCodes(codes ...string) error {
	for _, code := range codes {
		if !validation.ValidateIATACode(code) {
			return domain.InvalidIATACodeError(code)
		}
	}
	return nil
}
