// Package server exposes the heatpump pipeline over HTTP.
//
// Every request parses its own uploads and runs its own pipeline; nothing is
// kept between requests.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/huangsam/heatpump/internal/contract"
	"github.com/sirupsen/logrus"
)

const (
	maxUploadBytes  = 32 << 20
	shutdownTimeout = 5 * time.Second
)

// Handler serves the HTTP API.
type Handler struct {
	baseCfg *contract.Config
	version string
	logger  logrus.FieldLogger
}

// NewHandler creates a handler whose requests start from baseCfg.
func NewHandler(baseCfg *contract.Config, version string, logger logrus.FieldLogger) *Handler {
	return &Handler{
		baseCfg: baseCfg,
		version: version,
		logger:  logger.WithField("component", "http"),
	}
}

// Routes returns the router with all endpoints mounted.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/columns", h.Columns)
		r.Post("/summary", h.Summary)
	})
	return r
}

// ListenAndServe serves the API on cfg.Addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, cfg *contract.Config, version string, logger logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewHandler(cfg, version, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.Addr).Info("Listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
