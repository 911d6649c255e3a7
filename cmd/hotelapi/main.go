package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Donovan7777/hotel/internal/application"
	"github.com/Donovan7777/hotel/internal/config"
	hotelhttp "github.com/Donovan7777/hotel/internal/http"
	"github.com/Donovan7777/hotel/internal/logging"
	"github.com/Donovan7777/hotel/internal/persistence/sqlite"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := logging.NewJSONLogger(slog.LevelInfo)
	slog.SetDefault(logger)

	store, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	var codec application.CredentialCodec
	switch cfg.CredentialMode {
	case config.CredentialModeBcrypt:
		codec = application.NewBcryptCodec()
	default:
		codec = application.NewFixedWidthCodec()
	}

	idGenerator := uuid.NewString

	reservations := application.NewReservationService(store, store, store, store, idGenerator, logger)
	roomTypes := application.NewRoomTypeService(store, store, idGenerator, logger)
	rooms := application.NewRoomService(store, store, store, idGenerator, logger)
	occupants := application.NewOccupantService(store, codec, store, idGenerator, logger)

	router := hotelhttp.NewRouter(hotelhttp.RouterConfig{
		Reservations: hotelhttp.NewReservationHandler(reservations, logger),
		Rooms:        hotelhttp.NewRoomHandler(rooms, logger),
		RoomTypes:    hotelhttp.NewRoomTypeHandler(roomTypes, logger),
		Occupants:    hotelhttp.NewOccupantHandler(occupants, logger),
		Middleware: []func(http.Handler) http.Handler{
			hotelhttp.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr, "credential_mode", string(cfg.CredentialMode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
