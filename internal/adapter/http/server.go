package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/ryanair-api/docs"
	"github.com/flight-search/ryanair-api/internal/adapter/http/middleware"
	"github.com/flight-search/ryanair-api/internal/config"
)

// Server is the HTTP entry point of the API.
type Server struct {
	echo *echo.Echo
	cfg  *config.Config
	log  zerolog.Logger
}

// NewServer builds the Echo instance with the global middleware stack,
// the error handler and every route.
func NewServer(cfg *config.Config, h *Handlers, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log, middleware.Config{
		RateLimitMax:    cfg.RateLimit.Max,
		RateLimitWindow: cfg.RateLimit.Window(),
		IsProduction:    cfg.IsProduction(),
		Recovery:        middleware.DefaultRecoveryConfig(),
		QuietPaths:      []string{"/health"},
	})
	RegisterRoutes(e, h)
	configureDocs(cfg)

	return &Server{echo: e, cfg: cfg, log: log}
}

// Echo returns the underlying Echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on the configured port and blocks until the server stops.
// A graceful shutdown returns nil.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.log.Info().Str("address", addr).Msg("Starting server")

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// configureDocs points the generated API description at the advertised base URL.
func configureDocs(cfg *config.Config) {
	docs.SwaggerInfo.Version = cfg.App.Version

	u, err := url.Parse(cfg.DocsBaseURL())
	if err != nil || u.Host == "" {
		return
	}
	docs.SwaggerInfo.Host = u.Host
	docs.SwaggerInfo.Schemes = []string{u.Scheme}
}
