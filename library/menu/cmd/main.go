package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AntonStoeckl/library-circulation-go/library/menu"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell/config"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell/promcollector"
)

const metricsNamespace = "library"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("library stopped with error", "error", err.Error())
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	var collector shell.MetricsCollector

	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		promCollector, collectorErr := promcollector.NewCollector(registry, promcollector.WithNamespace(metricsNamespace))
		if collectorErr != nil {
			return collectorErr
		}

		collector = promCollector
		shutdown := serveMetrics(cfg.MetricsAddr, registry, logger)
		defer shutdown()
	}

	eventStore, closeEventStore, err := openEventStore(ctx, cfg, logger, collector)
	if err != nil {
		return err
	}
	defer closeEventStore()

	journal, err := shell.NewJournal(eventStore)
	if err != nil {
		return err
	}

	directory := core.NewLibraryDirectory(cfg.LibraryName, cfg.LibraryAddress, core.SystemClock())

	handlers, err := buildHandlers(directory, journal, cfg, observability{logger: logger, collector: collector})
	if err != nil {
		return err
	}

	m, err := menu.New(
		os.Stdin,
		os.Stdout,
		handlers,
		menu.WithTitle(cfg.LibraryName+", "+cfg.LibraryAddress),
		menu.WithAccountLimits(cfg.MaxBooks, cfg.LoanDays),
		menu.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Info("library started", "journal_engine", cfg.JournalEngine, "metrics_enabled", cfg.MetricsEnabled)

	return m.Run(ctx)
}

// serveMetrics exposes registry on addr until the returned func is called.
func serveMetrics(addr string, registry *prometheus.Registry, logger *slog.Logger) func() {
	const readHeaderTimeout = 5 * time.Second
	const shutdownTimeout = 5 * time.Second

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err.Error())
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = server.Shutdown(ctx)
	}
}
