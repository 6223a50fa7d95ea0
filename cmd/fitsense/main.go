package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/terraincognita07/fitsense/internal/api"
	"github.com/terraincognita07/fitsense/internal/config"
	"github.com/terraincognita07/fitsense/internal/db"
	"github.com/terraincognita07/fitsense/internal/observability"
	"github.com/terraincognita07/fitsense/internal/services"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("fitsense: %v", err)
	}
}

func serve(cfg config.Config) error {
	appLogger := newLogger(cfg, os.Stdout)
	slog.SetDefault(appLogger)

	if err := observability.InitSentry(observability.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
	}, appLogger); err != nil {
		appLogger.Warn("error reporting unavailable", "error", err)
	}
	defer observability.Flush(2 * time.Second)

	secretKey, err := cfg.ResolveSecretKey()
	if err != nil {
		return err
	}

	location, ok := cfg.LoadLocation()
	if !ok {
		appLogger.Warn("invalid TZ, falling back to UTC", "tz", cfg.Location)
	}
	time.Local = location

	database, err := db.OpenSQLiteWithOptions(cfg.DB.Path, db.Options{
		MaxOpenConns: cfg.DB.MaxOpenConns,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		Logger:       appLogger,
	})
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	handler, err := api.NewHandler(database, secretKey, location, appLogger)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "FitSense",
		DisableStartupMessage: true,
		ErrorHandler:          handler.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	repositories := db.NewRepositories(database)
	syncer := services.NewWearableSyncService(wearableSyncConfig(cfg.Wearables), repositories.WearableTokens, repositories.WearableSummary, location, appLogger)
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	if syncer.Enabled() {
		appLogger.Info("wearable sync enabled", "interval", cfg.Wearables.SyncInterval.String())
	}
	syncer.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", "error", err)
		}
	}()

	appLogger.Info("fitsense listening", "port", cfg.HTTP.Port, "db", cfg.DB.Path, "tz", location.String())
	return app.Listen(":" + cfg.HTTP.Port)
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if strings.EqualFold(cfg.Log.Format, "text") {
		return slog.New(slog.NewTextHandler(out, options))
	}
	return slog.New(slog.NewJSONHandler(out, options))
}

func wearableSyncConfig(cfg config.WearableConfig) services.WearableSyncConfig {
	return services.WearableSyncConfig{
		ClientID:       cfg.ClientID,
		ClientSecret:   cfg.ClientSecret,
		TokenURL:       cfg.TokenURL,
		AggregateURL:   cfg.AggregateURL,
		Interval:       cfg.SyncInterval,
		RequestTimeout: cfg.RequestTimeout,
		LookbackDays:   cfg.LookbackDays,
	}
}
