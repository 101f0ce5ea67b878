// Package main is the entry point for the container health service. It wires
// all dependencies using samber/do v2, starts the refresh loop and the HTTP
// server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/container-health/internal/adapters/http"
	"github.com/jsamuelsen11/container-health/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/container-health/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/container-health/internal/adapters/probes"

	"github.com/jsamuelsen11/container-health/internal/app"
	"github.com/jsamuelsen11/container-health/internal/domain"
	"github.com/jsamuelsen11/container-health/internal/platform/config"
	"github.com/jsamuelsen11/container-health/internal/platform/database"
	"github.com/jsamuelsen11/container-health/internal/platform/health"
	"github.com/jsamuelsen11/container-health/internal/platform/httpclient"
	"github.com/jsamuelsen11/container-health/internal/platform/logging"
	"github.com/jsamuelsen11/container-health/internal/platform/telemetry"
	"github.com/jsamuelsen11/container-health/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server and its handler graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	db, err := do.Invoke[*sql.DB](injector)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	refresher, err := do.Invoke[ports.HealthRefresher](injector)
	if err != nil {
		return fmt.Errorf("resolving refresher: %w", err)
	}

	if err := database.Ping(ctx, db, cfg.Probes.Database.Timeout); err != nil {
		logger.Warn("database not reachable at startup",
			slog.String("operation", "run"),
			slog.Any("error", err),
		)
	}

	// Background work stops when bgCtx is cancelled.
	bgCtx, cancelBg := context.WithCancel(ctx)
	defer cancelBg()

	var bg sync.WaitGroup
	startBackground(bgCtx, &bg, refresher, cfg, logger)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		cancelBg()
		bg.Wait()
		return fmt.Errorf("server failed: %w", err)
	}

	// The refresh loop must not block shutdown; cancel it first.
	cancelBg()

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error",
			slog.String("operation", "run"),
			slog.Any("error", err),
		)
	}

	// Wait for Start() goroutine to return.
	<-serverErr
	bg.Wait()

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error",
			slog.String("operation", "run"),
			slog.Any("error", err),
		)
	}

	logger.Info("shutdown complete")
	return nil
}

// startBackground launches the refresh loop and, when enabled, the scheduler
// marker watcher that triggers early refreshes.
func startBackground(ctx context.Context, wg *sync.WaitGroup, refresher ports.HealthRefresher, cfg *config.Config, logger *slog.Logger) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := refresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("refresh loop stopped",
				slog.String("operation", "Refresher.Run"),
				slog.Any("error", err),
			)
		}
	}()

	if !cfg.Refresh.WatchMarker {
		return
	}

	watcher := probes.NewMarkerWatcher(cfg.Probes.Scheduler.MarkerPath, refresher.Trigger, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := watcher.Run(ctx); err != nil {
			logger.Warn("marker watcher disabled",
				slog.String("operation", "MarkerWatcher.Run"),
				slog.Any("error", err),
			)
		}
	}()
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sql.DB, error) {
		return database.Open(cfg.Probes.Database, logger)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Probes.Dashboard, domain.ServiceDashboard, metrics, logger), nil
	})

	// Probes run in registration order: database, scheduler, dashboard.
	do.Provide(injector, func(i do.Injector) (ports.ProbeRegistry, error) {
		db, err := do.Invoke[*sql.DB](i)
		if err != nil {
			return nil, err
		}
		client := do.MustInvoke[*httpclient.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		registry := health.New(metrics, logger)
		registry.Register(probes.NewDatabaseProbe(db, cfg.Probes.Database.Timeout))
		registry.Register(probes.NewSchedulerProbe(cfg.Probes.Scheduler.MarkerPath, cfg.Probes.Scheduler.Timeout, logger))
		registry.Register(probes.NewDashboardProbe(client, cfg.Probes.Dashboard.Timeout))
		return registry, nil
	})

	do.Provide(injector, func(_ do.Injector) (*health.Store, error) {
		return health.NewStore(domain.InitialSnapshot(time.Now())), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StatusStore, error) {
		return do.MustInvoke[*health.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StatusReader, error) {
		return do.MustInvoke[*health.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRefresher, error) {
		return app.NewRefresher(app.RefresherOptions{
			Registry: do.MustInvoke[ports.ProbeRegistry](i),
			Store:    do.MustInvoke[ports.StatusStore](i),
			Interval: cfg.Refresh.Interval,
			Metrics:  do.MustInvoke[*telemetry.Metrics](i),
			Logger:   logger,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		store := do.MustInvoke[ports.StatusReader](i)
		return handlers.NewHealthHandler(store, nil), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
