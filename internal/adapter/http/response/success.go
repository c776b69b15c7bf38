package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

// Health writes a health check response.
func Health(c echo.Context, timestamp string, uptime float64, environment string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:      "ok",
		Timestamp:   timestamp,
		Uptime:      uptime,
		Environment: environment,
	})
}

// BannerResponse describes the API at its root path.
type BannerResponse struct {
	Message       string    `json:"message"`
	Version       string    `json:"version"`
	Documentation string    `json:"documentation"`
	Endpoints     Endpoints `json:"endpoints"`
}

// Banner writes the root banner.
func Banner(c echo.Context, version, documentation string) error {
	return c.JSON(http.StatusOK, &BannerResponse{
		Message:       "Ryanair API",
		Version:       version,
		Documentation: documentation,
		Endpoints:     APIEndpoints,
	})
}
