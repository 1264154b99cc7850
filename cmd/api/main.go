package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/packfinderz-admin/api/controllers"
	"github.com/angelmondragon/packfinderz-admin/api/routes"
	"github.com/angelmondragon/packfinderz-admin/internal/analytics"
	"github.com/angelmondragon/packfinderz-admin/internal/format"
	"github.com/angelmondragon/packfinderz-admin/pkg/config"
	"github.com/angelmondragon/packfinderz-admin/pkg/logger"
	"github.com/angelmondragon/packfinderz-admin/pkg/metrics"
	"github.com/angelmondragon/packfinderz-admin/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "admin-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "admin-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := analytics.Options{
		Formatter:   format.New(cfg.Locale.CurrencyCode(), cfg.Locale.Location()),
		CacheTTL:    cfg.Export.CacheTTL,
		TitlePrefix: cfg.Export.TitlePrefix,
		MaxRows:     cfg.Export.MaxRows,
		Logger:      logg,
	}

	// The export cache is optional; a nil interface keeps readiness and the
	// services from touching it.
	var cachePinger controllers.Pinger
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(runCtx, cfg.Redis, logg)
		if err != nil {
			logg.Error(runCtx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		opts.Cache = redisClient
		cachePinger = redisClient
	} else {
		logg.Info(runCtx, "redis not configured, export cache disabled")
	}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts.Metrics = metrics.NewPipelineMetrics(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	registry, err := analytics.SeededRegistry(opts)
	if err != nil {
		logg.Error(runCtx, "failed to build dataset registry", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(runCtx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"datasets": len(registry.Names()),
	})
	logg.Info(ctx, "starting admin api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, registry, cachePinger, metricsHandler),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutting down admin api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
