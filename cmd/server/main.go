// Package main is the entry point for the flight booking service.
//
//	@title						Flight Booking API
//	@version					1.0.0
//	@description				A flight search and booking service that normalizes upstream flight offers into itineraries and manages flight orders.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-booking/flight-booking-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-booking/flight-booking-service/docs"

	bookinghttp "github.com/flight-booking/flight-booking-service/internal/adapter/http"
	"github.com/flight-booking/flight-booking-service/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-service/internal/adapter/upstream"
	"github.com/flight-booking/flight-booking-service/internal/config"
	"github.com/flight-booking/flight-booking-service/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-service/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-service/internal/sample"
	"github.com/flight-booking/flight-booking-service/internal/store"
	"github.com/flight-booking/flight-booking-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-booking",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Booking store: Redis when enabled, in-process memory otherwise
	bookings, err := newBookingStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize booking store")
	}
	defer func() {
		if err := bookings.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing booking store")
		}
	}()

	// Upstream API client
	client := upstream.NewHTTPClient(upstream.Config{
		BaseURL:           cfg.Upstream.BaseURL,
		APIKey:            cfg.Upstream.APIKey,
		Timeout:           cfg.Upstream.Timeout,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Burst:             cfg.Upstream.Burst,
	}, log.Logger)

	// Use cases
	searchUC := usecase.NewSearchUseCase(client, sample.MustRawOffers(), log.Logger)
	bookingUC := usecase.NewBookingUseCase(client, bookings, timeutil.NewRealClock(), log.Logger)

	// HTTP layer
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	handler := bookinghttp.NewBookingHandler(searchUC, bookingUC)
	bookinghttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// newBookingStore selects the booking persistence backend from config.
func newBookingStore(cfg *config.Config) (store.BookingStore, error) {
	if !cfg.Redis.Enabled {
		return store.NewMemoryStore(), nil
	}
	return store.NewRedisStore(store.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
}
