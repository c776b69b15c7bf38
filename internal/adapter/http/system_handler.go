package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/ryanair-api/internal/adapter/http/response"
	"github.com/flight-search/ryanair-api/internal/infrastructure/timeutil"
)

// DocsPath is where the interactive API documentation is served.
const DocsPath = "/api-docs"

// SystemHandler serves the banner, health and documentation entry points.
type SystemHandler struct {
	clock       timeutil.Clock
	startedAt   time.Time
	version     string
	environment string
}

// NewSystemHandler creates a SystemHandler reporting uptime from startedAt.
func NewSystemHandler(clock timeutil.Clock, startedAt time.Time, version, environment string) *SystemHandler {
	return &SystemHandler{
		clock:       clock,
		startedAt:   startedAt,
		version:     version,
		environment: environment,
	}
}

// Banner handles GET /
//
// @Summary Service banner
// @Tags system
// @Produce json
// @Success 200 {object} response.BannerResponse
// @Router / [get]
func (h *SystemHandler) Banner(c echo.Context) error {
	return response.Banner(c, h.version, DocsPath)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c echo.Context) error {
	now := h.clock.Now()
	return response.Health(c, timeutil.FormatTimestamp(now), timeutil.Uptime(h.clock, h.startedAt), h.environment)
}

// Docs redirects the documentation root to the explorer page.
func (h *SystemHandler) Docs(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, DocsPath+"/index.html")
}
