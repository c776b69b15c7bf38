// Package main is the entry point for the Ryanair API service.
//
//	@title			Ryanair API
//	@version		1.0.0
//	@description	REST API over the Ryanair public flight data: airports, fares and flight availability.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	apihttp "github.com/flight-search/ryanair-api/internal/adapter/http"
	"github.com/flight-search/ryanair-api/internal/adapter/provider/ryanair"
	"github.com/flight-search/ryanair-api/internal/config"
	"github.com/flight-search/ryanair-api/internal/infrastructure/logger"
	"github.com/flight-search/ryanair-api/internal/infrastructure/timeutil"
	"github.com/flight-search/ryanair-api/internal/usecase"
)

func main() {
	startedAt := time.Now()

	// Load configuration
	cfg := config.MustLoad()

	appLogger := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("Configuration loaded")

	client, err := ryanair.NewClient(ryanair.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Market:  cfg.Upstream.Market,
	}, ryanair.WithLogger(appLogger))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create upstream client")
	}

	handlers := apihttp.NewHandlers(apihttp.Dependencies{
		Airports:    usecase.NewAirportUseCase(client),
		Fares:       usecase.NewFareUseCase(client, nil),
		Flights:     usecase.NewFlightUseCase(client),
		Clock:       timeutil.NewRealClock(),
		StartedAt:   startedAt,
		Version:     cfg.App.Version,
		Environment: cfg.App.Env,
	})

	server := apihttp.NewServer(cfg, handlers, appLogger.Logger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("docs", cfg.DocsBaseURL()+apihttp.DocsPath).Msg("API documentation available")

	gracefulShutdown(server, cfg.Server.ShutdownTimeout)
}

// setupLogger builds the application logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Version:     cfg.App.Version,
		Environment: cfg.App.Env,
	})
	logger.SetGlobal(l)
	return l
}

// gracefulShutdown blocks until SIGINT or SIGTERM, then drains in-flight requests.
func gracefulShutdown(server *apihttp.Server, timeout time.Duration) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
