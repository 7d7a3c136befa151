package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/angelmondragon/multistore-admin/api/routes"
	"github.com/angelmondragon/multistore-admin/internal/admin"
	"github.com/angelmondragon/multistore-admin/internal/repo/mongostore"
	"github.com/angelmondragon/multistore-admin/internal/repo/sqlstore"
	"github.com/angelmondragon/multistore-admin/pkg/config"
	"github.com/angelmondragon/multistore-admin/pkg/db"
	"github.com/angelmondragon/multistore-admin/pkg/instance"
	"github.com/angelmondragon/multistore-admin/pkg/logger"
	"github.com/angelmondragon/multistore-admin/pkg/metrics"
	"github.com/angelmondragon/multistore-admin/pkg/migrate"
	pkgmongo "github.com/angelmondragon/multistore-admin/pkg/mongo"
	"github.com/angelmondragon/multistore-admin/pkg/redis"
)

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
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithStoreDriver(ctx, cfg.Store.Driver().String())

	repo, closeStore, err := openStore(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap marketplace store", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			_ = closeStore()
			os.Exit(1)
		}
	} else {
		logg.Warn(ctx, "redis not configured, rate limiting and idempotency disabled")
	}

	defer func() {
		closeErr := closeStore()
		if redisClient != nil {
			closeErr = multierr.Append(closeErr, redisClient.Close())
		}
		if closeErr != nil {
			logg.Error(context.Background(), "error closing clients", closeErr)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reportMetrics := metrics.NewReportMetrics(reg)

	adminService, err := admin.NewService(repo, admin.Options{
		Metrics: reportMetrics,
		Logger:  logg,
		Timeout: cfg.Reports.RequestTimeout,
	})
	if err != nil {
		logg.Error(ctx, "failed to create admin service", err)
		os.Exit(1)
	}

	addr := ":" + cfg.App.Port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID("local"),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, adminService, repo, redisClient, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

// openStore connects the configured marketplace backend. The returned close
// func releases its connections.
func openStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (admin.Repository, func() error, error) {
	driver := cfg.Store.Driver()
	if !driver.IsSQL() {
		client, err := pkgmongo.New(ctx, cfg.Mongo, logg)
		if err != nil {
			return nil, nil, err
		}
		store, err := mongostore.New(client, cfg.Mongo)
		if err != nil {
			return nil, nil, multierr.Append(err, client.Close(context.Background()))
		}
		return store, func() error { return client.Close(context.Background()) }, nil
	}

	client, err := db.New(ctx, driver, cfg.DB, logg)
	if err != nil {
		return nil, nil, err
	}
	if err := migrate.MaybeRunDev(ctx, cfg, logg, client); err != nil {
		return nil, nil, multierr.Append(fmt.Errorf("dev migrations: %w", err), client.Close())
	}
	store, err := sqlstore.New(client)
	if err != nil {
		return nil, nil, multierr.Append(err, client.Close())
	}
	return store, client.Close, nil
}
