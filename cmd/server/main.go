// Command server runs the device usage API: it books devices for people,
// rejects overlapping bookings, and optionally seeds an empty database from
// a CSV export on startup.
//
// APP_PROFILE selects configs/<profile>.yaml. A .env file in the working
// directory is loaded first when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/device-usage-service/internal/adapters/http"
	"github.com/jsamuelsen11/device-usage-service/internal/adapters/clients/seedsource"
	"github.com/jsamuelsen11/device-usage-service/internal/adapters/storage"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/config"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/logging"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
	seedTimeout  = 2 * time.Minute
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "device-usage-service:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is not set; use local, dev or prod")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer flush(otel, logger)

	store, err := storage.Open(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("closing storage", slog.Any("error", err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			return err
		}
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	do.ProvideValue(injector, store)
	wire(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	if remote, err := do.InvokeNamed[*seedsource.HTTP](injector, remoteSeedSource); err == nil {
		registry.Register(remote)
	}

	if cfg.Seed.Enabled {
		if err := seed(ctx, do.MustInvoke[ports.Importer](injector)); err != nil {
			return err
		}
	}

	return serve(ctx, server, logger)
}

// serve runs server until ctx is canceled by a signal or the server fails,
// then drains in-flight requests.
func serve(ctx context.Context, server *adapthttp.Server, logger *slog.Logger) error {
	if err := server.Listen(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- server.Start() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		logger.Info("shutdown requested")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining connections", slog.Any("error", err))
	}
	<-done

	logger.Info("server stopped")
	return nil
}

// seed imports the CSV export once, before the server accepts traffic.
func seed(ctx context.Context, importer ports.Importer) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	if _, _, err := importer.SeedIfEmpty(ctx); err != nil {
		return fmt.Errorf("seeding storage: %w", err)
	}
	return nil
}

func flush(otel *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}
