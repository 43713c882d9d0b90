package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"innsync/config"
	"innsync/infras/jwt"
	"innsync/infras/otel"
	"innsync/infras/sqlite"
	"innsync/internal/connectivity"
	authRepo "innsync/internal/domains/auth/repository"
	authSvc "innsync/internal/domains/auth/service"
	bookingRepo "innsync/internal/domains/booking/repository"
	bookingSvc "innsync/internal/domains/booking/service"
	hotelRepo "innsync/internal/domains/hotel/repository"
	hotelSvc "innsync/internal/domains/hotel/service"
	"innsync/internal/schema"
	"innsync/internal/session"
	"innsync/shared/constant"
	"innsync/shared/logger"
	"innsync/transport/chat"
	"innsync/transport/rest"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracer := otel.New(cfg)

	store := sqlite.New(cfg)
	defer store.Close()

	if err := schema.Migrate(ctx, store); err != nil {
		log.Error().Err(err).Msg("Schema migration failed, local fallbacks may be unavailable")
	}

	sessions := session.NewStore()
	gateway := rest.New(cfg, sessions, tracer)

	monitor := connectivity.New(true)
	monitor.SetOnline(gateway.Ping(ctx) == nil)
	monitor.Subscribe(func(online bool) {
		log.Info().Bool("online", online).Msg("Connectivity changed")
	})

	bookings := bookingRepo.New(store, tracer)
	hotels := hotelRepo.New(store, tracer)
	auth := authRepo.New(store, bookings, hotels, tracer)

	bookingService := bookingSvc.New(bookings, gateway, monitor, tracer)
	hotelService := hotelSvc.New(hotels, gateway, monitor, tracer)
	authService := authSvc.New(auth, gateway, sessions, jwt.New(), tracer)

	chatClient, err := chat.New(cfg, sessions)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid chat configuration")
	}
	defer chatClient.Close()

	reportStatus(ctx, monitor, bookingService, hotelService, authService)

	go monitor.Watch(ctx, gateway, time.Duration(cfg.Net.ProbeIntervalSeconds)*time.Second)

	log.Info().Str("env", cfg.App.Env).Msg("Client is running, press Ctrl+C to stop")

	<-ctx.Done()

	log.Info().Msg("Shutting down")
}

// reportStatus logs a snapshot of the client's state: connectivity, session,
// and what the local mirrors would serve offline.
func reportStatus(ctx context.Context, monitor *connectivity.Monitor, bookings bookingSvc.Booking, hotels hotelSvc.Hotel, auth authSvc.Auth) {
	log.Info().Bool("online", monitor.Online()).Msg("Connectivity state")

	if validation, err := auth.ValidateSession(ctx); err != nil {
		log.Error().Err(err).Msg("Session validation failed")
	} else {
		log.Info().Bool("signedIn", validation.Status).Msg("Session state")
	}

	if cities, err := hotels.GetCities(ctx, constant.Empty); err != nil {
		log.Error().Err(err).Msg("Failed to list cities")
	} else {
		log.Info().Int("cities", len(cities)).Msg("City autocomplete ready")
	}

	if trips, err := bookings.GetTripsByStatus(ctx, constant.BookingStatusAll); err != nil {
		log.Error().Err(err).Msg("Failed to list trips")
	} else {
		log.Info().Int("trips", len(trips)).Msg("Trip mirror state")
	}
}
