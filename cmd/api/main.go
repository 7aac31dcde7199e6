package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/dvillegas/mercadia-backend/api/routes"
	"github.com/dvillegas/mercadia-backend/internal/expenses"
	"github.com/dvillegas/mercadia-backend/internal/orders"
	"github.com/dvillegas/mercadia-backend/internal/products"
	"github.com/dvillegas/mercadia-backend/internal/reports"
	"github.com/dvillegas/mercadia-backend/internal/users"
	"github.com/dvillegas/mercadia-backend/pkg/config"
	"github.com/dvillegas/mercadia-backend/pkg/db"
	"github.com/dvillegas/mercadia-backend/pkg/logger"
	"github.com/dvillegas/mercadia-backend/pkg/metrics"
	"github.com/dvillegas/mercadia-backend/pkg/migrate"
	"github.com/dvillegas/mercadia-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = "sqlite"
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, public report caching disabled")
	}

	registry := prometheus.NewRegistry()
	reportMetrics := metrics.NewReportMetrics(registry)

	var reportCache *reports.Cache
	if redisClient != nil {
		reportCache = reports.NewCache(redisClient, cfg.Report.PublicCacheTTL)
	}

	gdb := dbClient.DB()
	reportsService, err := reports.NewService(reports.ServiceParams{
		Orders:      orders.NewRepository(gdb),
		Expenses:    expenses.NewRepository(gdb),
		Products:    products.NewRepository(gdb),
		Identity:    users.NewRepository(gdb),
		Cache:       reportCache,
		Metrics:     reportMetrics,
		Timeout:     cfg.Report.Timeout,
		RecentLimit: cfg.Report.RecentLimit,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create reports service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, dbClient, redisClient, registry, reportsService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	var closeErr error
	if redisClient != nil {
		closeErr = multierr.Append(closeErr, redisClient.Close())
	}
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(ctx, "error closing dependencies", closeErr)
		os.Exit(1)
	}
}
