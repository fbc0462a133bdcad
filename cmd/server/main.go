// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/campus-superapp/internal/adapters/http"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/storage"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/campus-superapp/internal/app"
	"github.com/jsamuelsen11/campus-superapp/internal/app/collab"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/config"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/health"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/httpclient"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/logging"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/telemetry"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 3 * time.Second
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

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

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Fill the project collection before accepting requests.
	projects := do.MustInvoke[*collab.Store](injector)
	if err := projects.Load(ctx); err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*storage.Replicated](injector)
	registry.Register(store)
	for _, c := range do.MustInvoke[*upstreams](injector).http {
		registry.Register(c)
	}

	resyncCtx, stopResync := context.WithCancel(ctx)
	defer stopResync()
	go store.RunResync(resyncCtx, cfg.Storage.ResyncInterval)

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
		projects.Close()
		closeStores(injector, cfg, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Reject further mutations, then close the databases.
	stopResync()
	projects.Close()
	closeStores(injector, cfg, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func closeStores(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	if local, err := do.Invoke[*sqlite.Store](injector); err == nil {
		if err := local.Close(); err != nil {
			logger.Error("local storage close error", slog.Any("error", err))
		}
	}
	if !cfg.Storage.Remote.Enabled {
		return
	}
	if remote, err := do.Invoke[*postgres.Store](injector); err == nil {
		if err := remote.Close(); err != nil {
			logger.Error("remote storage close error", slog.Any("error", err))
		}
	}
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
	do.Provide(injector, func(_ do.Injector) (*university.Directory, error) {
		return newDirectory(cfg.Campus)
	})

	// Storage: the local SQLite cache, optionally replicated to PostgreSQL.
	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		return sqlite.Open(cfg.Storage.LocalPath)
	})

	do.Provide(injector, func(_ do.Injector) (*postgres.Store, error) {
		remote := cfg.Storage.Remote
		return postgres.Open(postgres.Config{
			DSN:             remote.DSN,
			MaxOpenConns:    remote.MaxOpenConns,
			MaxIdleConns:    remote.MaxIdleConns,
			ConnMaxLifetime: remote.ConnMaxLifetime,
			LogQueries:      remote.LogQueries,
		}, logger)
	})

	do.Provide(injector, func(i do.Injector) (*storage.Replicated, error) {
		local, err := do.Invoke[*sqlite.Store](i)
		if err != nil {
			return nil, fmt.Errorf("opening local storage: %w", err)
		}

		var remote ports.DocumentBackend
		if cfg.Storage.Remote.Enabled {
			pg, err := do.Invoke[*postgres.Store](i)
			if err != nil {
				// The service runs from the local cache until the remote is back.
				logger.Warn("remote storage unavailable, running local only", slog.Any("error", err))
			} else {
				remote = pg
			}
		}

		metrics := do.MustInvoke[*telemetry.Metrics](i)
		breaker := cfg.Storage.CircuitBreaker
		return storage.NewReplicated(local, remote, storage.BreakerConfig{
			MaxFailures:   breaker.MaxFailures,
			Timeout:       breaker.Timeout,
			HalfOpenLimit: breaker.HalfOpenLimit,
		}, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountStore, error) {
		return storage.NewAccountStore(do.MustInvoke[*storage.Replicated](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*collab.Store, error) {
		var seeds []project.Project
		if cfg.Collab.SeedFile != "" {
			var err error
			if seeds, err = collab.LoadSeedFile(cfg.Collab.SeedFile); err != nil {
				return nil, fmt.Errorf("loading seed projects: %w", err)
			}
		}

		return collab.New(storage.NewProjectStore(do.MustInvoke[*storage.Replicated](i)), collab.Options{
			Resolver:       do.MustInvoke[*university.Directory](i),
			PersistTimeout: cfg.Collab.PersistTimeout,
			NoticeTTL:      cfg.Collab.NoticeTTL,
			Seeds:          seeds,
			Metrics:        do.MustInvoke[*telemetry.Metrics](i),
			Logger:         logger,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*upstreams, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return newUpstreams(cfg, metrics, logger)
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		return app.NewProjectService(
			do.MustInvoke[*collab.Store](i),
			do.MustInvoke[ports.AccountStore](i),
			do.MustInvoke[*university.Directory](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountService, error) {
		return app.NewAccountService(
			do.MustInvoke[ports.AccountStore](i),
			do.MustInvoke[*university.Directory](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UniversityService, error) {
		return app.NewUniversityService(
			do.MustInvoke[*university.Directory](i),
			do.MustInvoke[*upstreams](i).clients,
			app.ContentCacheConfig{Size: cfg.Campus.ContentCacheSize, TTL: cfg.Campus.ContentCacheTTL},
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(healthCheckTimeout), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		return handlers.NewProjectHandler(do.MustInvoke[ports.ProjectService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AccountHandler, error) {
		return handlers.NewAccountHandler(do.MustInvoke[ports.AccountService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.UniversityHandler, error) {
		return handlers.NewUniversityHandler(do.MustInvoke[ports.UniversityService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, storage.HealthName), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		projH := do.MustInvoke[*handlers.ProjectHandler](i)
		accountH := do.MustInvoke[*handlers.AccountHandler](i)
		uniH := do.MustInvoke[*handlers.UniversityHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(projH, accountH, uniH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// upstreams holds the university clients keyed by university id, plus the
// HTTP clients behind them for health reporting.
type upstreams struct {
	clients map[string]ports.UniversityClient
	http    []*httpclient.Client
}

func newUpstreams(cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*upstreams, error) {
	u := &upstreams{clients: make(map[string]ports.UniversityClient)}

	var fa, rsue []*httpclient.Client
	newClient := func(c *config.ClientConfig, name string) *httpclient.Client {
		hc := httpclient.New(c, name, metrics, logger)
		u.http = append(u.http, hc)
		return hc
	}

	for _, uc := range cfg.Campus.Universities {
		switch uc.Adapter {
		case "":
			continue
		case config.AdapterFinancial:
			if fa == nil {
				fa = []*httpclient.Client{
					newClient(&cfg.Clients.FinancialSchedule, "fa-schedule"),
					newClient(&cfg.Clients.FinancialSite, "fa-site"),
					newClient(&cfg.Clients.FinancialLibrary, "fa-library"),
				}
			}
			u.clients[uc.ID] = acl.NewFinancialClient(fa[0], fa[1], fa[2], uc.Domain, logger)
		case config.AdapterRSUE:
			if rsue == nil {
				rsue = []*httpclient.Client{
					newClient(&cfg.Clients.RSUESchedule, "rsue-schedule"),
					newClient(&cfg.Clients.RSUESite, "rsue-site"),
				}
			}
			u.clients[uc.ID] = acl.NewRSUEClient(rsue[0], rsue[1], uc.Domain, logger)
		default:
			return nil, fmt.Errorf("university %q: unknown adapter %q", uc.ID, uc.Adapter)
		}
	}
	return u, nil
}

func newDirectory(cfg config.CampusConfig) (*university.Directory, error) {
	unis := make([]university.University, 0, len(cfg.Universities))
	for _, uc := range cfg.Universities {
		opts := make([]university.PaymentOption, 0, len(uc.PaymentOptions))
		for _, p := range uc.PaymentOptions {
			opts = append(opts, university.PaymentOption{ID: p.ID, Title: p.Title, Caption: p.Caption, URL: p.URL})
		}
		unis = append(unis, university.University{
			ID:             uc.ID,
			Title:          uc.Title,
			ShortTitle:     uc.ShortTitle,
			Domain:         uc.Domain,
			Aliases:        uc.Aliases,
			PaymentOptions: opts,
		})
	}
	return university.NewDirectory(unis, cfg.DefaultUniversity)
}
