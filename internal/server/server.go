// internal/server/server.go
// Package server wires the activity routes, static assets, and operational
// endpoints into a single http.Server with graceful shutdown.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activities-api/internal/common/config"
	"activities-api/internal/common/logger"
	"activities-api/internal/common/observability"
	"activities-api/internal/handlers/activities"
	"activities-api/internal/registry"
)

// Server owns the HTTP listener and the full route table.
type Server struct {
	cfg        config.ServerConfig
	registry   *registry.Registry
	logger     logger.Logger
	httpServer *http.Server
}

// New builds the route table and the underlying http.Server. The server is
// not listening until Start is called.
func New(cfg config.ServerConfig, reg *registry.Registry, obs *observability.Observability, log logger.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
	}

	mux := http.NewServeMux()

	apiHandler := activities.NewHandler(reg, obs, log)
	apiHandler.Register(mux)

	mux.HandleFunc("GET /{$}", s.redirectToIndex)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         cfg.GetAddr(),
		Handler:      requestIDMiddleware(s.instrument(mux)),
		ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.WriteTimeout),
		IdleTimeout:  config.GetDuration(cfg.IdleTimeout),
	}
	return s
}

// Handler exposes the fully wired handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks until the listener stops. A shutdown-initiated close is not
// reported as an error.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{
		"addr":      s.cfg.GetAddr(),
		"staticDir": s.cfg.StaticDir,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// redirectToIndex sends browsers hitting the bare root to the frontend.
func (s *Server) redirectToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":     "ready",
		"activities": s.registry.Len(),
		"time":       time.Now().Format(time.RFC3339),
	})
}
