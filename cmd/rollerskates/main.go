package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MikeSquared-Agency/Rollerskates/internal/config"
	"github.com/MikeSquared-Agency/Rollerskates/internal/hermes"
	"github.com/MikeSquared-Agency/Rollerskates/internal/store"
	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
	"github.com/MikeSquared-Agency/Rollerskates/internal/web"
)

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// a missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Activity store
	var activity store.Store = store.NewMemoryStore(cfg.Activity.Limit)
	if cfg.Database.URL != "" {
		db, err := store.NewPostgresStore(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		activity = db
		logger.Info("connected to database")
	}
	defer activity.Close()

	// Hermes (optional)
	var hermesClient hermes.Client
	if cfg.Hermes.URL != "" {
		hc, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to hermes, running without events", "error", err)
		} else {
			hermesClient = hc
			defer hc.Close()
			logger.Info("connected to hermes")
		}
	}
	notifier := hermes.NewNotifier(hermesClient, logger)

	api := topsis.NewHTTPClient(cfg.API.URL, cfg.API.Prefix, cfg.APITimeout())
	logger.Info("using TOPSIS API", "url", cfg.API.URL, "prefix", cfg.API.Prefix)

	srv, err := web.NewServer(api, activity, notifier, web.Options{
		DocsURL:       cfg.DocsURL(),
		ActivityLimit: cfg.Activity.Limit,
		CookieSecure:  cfg.Server.CookieSecure,
	}, logger)
	if err != nil {
		logger.Error("failed to build web server", "error", err)
		os.Exit(1)
	}

	webServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           web.NewRouter(srv, cfg.Server.RateLimitPerMinute, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler:           web.NewMetricsRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("web server starting", "port", cfg.Server.Port)
		if err := webServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("web server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = webServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
