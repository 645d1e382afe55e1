package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/console-catalog/catalog-api/internal/adapters/httpapi"
	"github.com/console-catalog/catalog-api/internal/adapters/manifest"
	memidem "github.com/console-catalog/catalog-api/internal/adapters/memory/idempotency"
	memtaskrepo "github.com/console-catalog/catalog-api/internal/adapters/memory/taskrepo"
	postgres "github.com/console-catalog/catalog-api/internal/adapters/postgres"
	pgidem "github.com/console-catalog/catalog-api/internal/adapters/postgres/idempotency"
	pgtaskrepo "github.com/console-catalog/catalog-api/internal/adapters/postgres/taskrepo"
	"github.com/console-catalog/catalog-api/internal/app/branding"
	"github.com/console-catalog/catalog-api/internal/app/catalog"
	"github.com/console-catalog/catalog-api/internal/domain"
	platformclock "github.com/console-catalog/catalog-api/internal/platform/clock"
	"github.com/console-catalog/catalog-api/internal/platform/config"
	"github.com/console-catalog/catalog-api/internal/platform/logger"
	idempotencyport "github.com/console-catalog/catalog-api/internal/ports/out/idempotency"
	taskrepoport "github.com/console-catalog/catalog-api/internal/ports/out/taskrepo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.GetDefault().Error("invalid config", "err", err)
		os.Exit(1)
	}
	logger.Init(&logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		Output:     os.Stderr,
		JSON:       cfg.LogJSON,
		TimeFormat: time.RFC3339,
	})
	log := logger.GetDefault()

	if err := run(cfg, log); err != nil {
		log.Error("api exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		taskRepo taskrepoport.Repository
		idem     idempotencyport.Store
	)
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		taskRepo = pgtaskrepo.NewRepo(pool)
		idem = pgidem.NewStore(pool)
	default:
		taskRepo = memtaskrepo.NewRepo()
		idem = memidem.NewStore()
	}

	catalogSvc := catalog.NewService(taskRepo, platformclock.NewSystemClock(), cfg.CatalogCacheSize)
	if cfg.TasksDir != "" {
		tasks, err := manifest.LoadDir(cfg.TasksDir)
		if err != nil {
			return err
		}
		if _, err := catalogSvc.ImportTasks(logger.ContextWithLogger(ctx, log), tasks); err != nil {
			return err
		}
	}

	logos, err := config.LoadCustomLogos(cfg.CustomLogosFile)
	if err != nil {
		return err
	}
	brandingSvc := branding.NewService(branding.Config{
		Branding:          domain.Branding(cfg.Branding),
		CustomProductName: cfg.CustomProductName,
		CustomLogos:       logos,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler := httpapi.NewRouterWithOptions(
		httpapi.NewServer(catalogSvc, brandingSvc, idem),
		httpapi.RouterOptions{Logger: log, Registry: reg},
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("api listening", "addr", srv.Addr, "storage", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
