package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/volcano-dashboard/internal/adapter/http"
	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
	"github.com/couchcryptid/volcano-dashboard/internal/config"
	"github.com/couchcryptid/volcano-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	store := catalog.NewStore(cfg.CatalogPath, logger, metrics)

	// Warm the cache up front. A missing catalog is not fatal: the service
	// starts, /readyz stays 503, and data endpoints degrade until a reload
	// finds the file.
	if _, err := store.Table(); err != nil {
		logger.Warn("starting without catalog data", "error", err)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, store, logger, metrics, cfg.HistogramBins)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
