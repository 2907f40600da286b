// Copyright 2026 The Neurogen Authors
// SPDX-License-Identifier: MIT

// Package dashboard serves the interactive comparison page, its charts and
// reports, and a small JSON API over HTTP.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/neurogen/internal/chart"
	neurolog "github.com/davetashner/neurogen/internal/log"
	"github.com/davetashner/neurogen/internal/scenario"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Config configures a Server.
type Config struct {
	// Addr is the TCP listen address (e.g. "127.0.0.1:8501").
	Addr string
	// ReadTimeout bounds reading each request, headers included.
	ReadTimeout time.Duration
	// Defaults is the scenario used for query parameters the request omits.
	Defaults scenario.Input
	// Charts controls the size of rendered charts.
	Charts chart.Options
	// Logger receives one line per request. Nil discards.
	Logger *slog.Logger
	// Registry holds the server's metrics. Nil creates a private registry
	// with Go runtime and process collectors.
	Registry *prometheus.Registry
}

// Server is the dashboard HTTP server. It keeps no state between requests
// besides metrics.
type Server struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics
	handler http.Handler

	metricsHandler http.Handler
}

// New creates a Server. Zero Defaults fall back to scenario.Default().
func New(cfg Config) *Server {
	if cfg.Defaults == (scenario.Input{}) {
		cfg.Defaults = scenario.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = neurolog.Discard()
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	s := &Server{
		cfg:            cfg,
		log:            logger,
		metrics:        newMetrics(reg),
		metricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	s.handler = s.instrument(http.HandlerFunc(s.route))
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("dashboard listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.log.Info("dashboard stopped")
		return nil
	})
	return g.Wait()
}
