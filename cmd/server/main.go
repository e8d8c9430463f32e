package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hypermindz/lbarserve/internal/api"
	"github.com/hypermindz/lbarserve/internal/catalog"
	"github.com/hypermindz/lbarserve/internal/config"
	"github.com/hypermindz/lbarserve/internal/geoip"
	"github.com/hypermindz/lbarserve/internal/identity"
	"github.com/hypermindz/lbarserve/internal/middleware"
	"github.com/hypermindz/lbarserve/internal/observability"
	"github.com/hypermindz/lbarserve/internal/tracking"
)

func main() {
	cfg := config.Load()

	logger, err := observability.InitLoggerWithService(cfg.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to sync logger: %v\n", err)
		}
	}()

	if err := run(logger, cfg); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, cfg config.Config) error {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracing(ctx, logger, cfg.ServiceName, cfg.TempoEndpoint, cfg.TracingSampleRate)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer shutdown()
	}

	cat := catalog.NewDefault()
	logger.Info("catalog loaded", zap.Int("ads", cat.Count()))

	// GeoIP and Redis are optional in the demo deployment; the server
	// degrades to unenriched identity results and metrics-only event counts.
	geoSvc, err := geoip.Init(cfg.GeoIPDB)
	if err != nil {
		logger.Warn("geoip unavailable, identity results carry no location", zap.Error(err))
		geoSvc = nil
	} else {
		defer func() { _ = geoSvc.Close() }()
	}

	tracker, err := tracking.Init(cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, ad events counted in metrics only", zap.Error(err))
		tracker = nil
	} else {
		defer tracker.Close()
	}

	resolver := identity.NewMock(geoSvc, logger.Named("identity"))
	metricsRegistry := observability.NewPrometheusRegistry()

	// Surface the log sampling counters once a minute, then reset them so each
	// report covers a single window.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				observability.LogSamplingStats(logger)
				observability.ResetSamplingStats()
			}
		}
	}()

	// Pass a nil selector to use the default contextual selector. Swap in a
	// custom selectors.Selector implementation to change how ads are chosen.
	srvDeps := api.NewServer(logger, cat, nil, resolver, tracker, metricsRegistry, cfg)

	r := mux.NewRouter()
	r.Use(middleware.WithTraceLogger(logger))
	r.HandleFunc("/api/mcp", srvDeps.InfoHandler).Methods("GET")
	r.HandleFunc("/api/mcp", srvDeps.RequireAPIKey(srvDeps.RPCHandler)).Methods("POST")
	r.HandleFunc("/health", srvDeps.HealthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("L-Bar ad server running", zap.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listen: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	observability.LogSamplingStats(logger)
	return nil
}
