// cmd/activities-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"activities-api/internal/common/config"
	"activities-api/internal/common/logger"
	"activities-api/internal/common/observability"
	"activities-api/internal/registry"
	"activities-api/internal/server"
	"activities-api/pkg/catalog"
)

func main() {
	zapLog := logger.New("info", "console")

	zapLog.Info("Starting activities server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild the logger with the configured level, format, and output.
	zapLog = logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	log.Info("Configuration loaded", map[string]interface{}{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	obs := observability.New("activities-server")
	defer obs.Shutdown()

	cat, err := loadCatalog(cfg, log)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	reg, err := registry.New(cat)
	if err != nil {
		zapLog.Fatal("registry init failed", zap.Error(err))
	}
	log.Info("Activity registry ready", map[string]interface{}{
		"activities": reg.Len(),
	})

	srv := server.New(cfg.Server, reg, obs, log)
	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for termination signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down activities server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Activities server stopped gracefully", nil)
}

// loadCatalog reads the catalog file named in the config, falling back to
// the built-in catalog when no path is configured.
func loadCatalog(cfg *config.Config, log logger.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		log.Info("Using built-in activity catalog", nil)
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", cfg.Catalog.Path, err)
	}
	log.Info("Loaded activity catalog", map[string]interface{}{
		"path":       cfg.Catalog.Path,
		"activities": len(cat.Activities),
	})
	return cat, nil
}
