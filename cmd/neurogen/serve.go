package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davetashner/neurogen/internal/config"
	"github.com/davetashner/neurogen/internal/dashboard"
)

// Serve-specific flag values.
var serveAddr string

// serveCmd runs the interactive dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive comparison dashboard",
	Long: `Start an HTTP server with the interactive dashboard. Adjusting the dose
slider, AI level, or regeneration checkbox recomputes the comparison.

Endpoints:
  /                     dashboard page
  /api/v1/comparison    comparison table as JSON
  /api/v1/score         NEUROGEN-X efficacy as JSON
  /charts/{efficacy,cost}.{png,svg}
  /report.pdf, /report.csv
  /healthz, /metrics

All endpoints accept dose, ai_level, and regen query parameters.
The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", fmt.Sprintf("listen address (default %s)", config.DefaultAddr))
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(config.Overrides{Addr: serveAddr})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := dashboard.New(dashboard.Config{
		Addr:        s.Addr,
		ReadTimeout: s.ReadTimeout,
		Defaults:    s.Scenario,
		Charts:      s.Charts,
		Logger:      slog.Default(),
	})
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Dashboard: http://%s/\n", s.Addr)
	return serveDashboard(ctx, srv)
}

// serveDashboard runs srv until ctx ends. Split out so tests can stub it.
var serveDashboard = func(ctx context.Context, srv *dashboard.Server) error {
	if err := srv.Run(ctx); err != nil {
		return exitError(ExitInternal, "neurogen: %v", err)
	}
	return nil
}
