package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/neurogen/internal/catalog"
	"github.com/davetashner/neurogen/internal/chart"
)

// Chart-specific flag values.
var (
	chartKind   string
	chartFormat string
	chartDir    string
)

// chartCmd writes the comparison charts as image files.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Write the efficacy and cost comparison charts",
	Long: `Render the comparison bar charts to image files in --dir:

  efficacy.<format>  efficacy per treatment on a 0-100% axis
  cost.<format>      cost per patient on a logarithmic axis

NEUROGEN-X is drawn in green, the other treatments in red.`,
	Example: `  neurogen chart
  neurogen chart --kind cost --format svg --dir out/`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	addScenarioFlags(chartCmd)
	chartCmd.Flags().StringVar(&chartKind, "kind", "all", "chart to write: efficacy, cost, or all")
	chartCmd.Flags().StringVar(&chartFormat, "format", "png", "image format: png or svg")
	chartCmd.Flags().StringVar(&chartDir, "dir", ".", "directory to write chart files into")
}

func runChart(cmd *cobra.Command, _ []string) error {
	kinds := chart.Kinds()
	if chartKind != "all" {
		k, err := chart.ParseKind(chartKind)
		if err != nil {
			return exitError(ExitInvalidArgs, "neurogen: %v", err)
		}
		kinds = []chart.Kind{k}
	}
	format, err := chart.ParseFormat(chartFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "neurogen: %v", err)
	}

	s, err := loadSettings(scenarioOverrides(cmd))
	if err != nil {
		return err
	}
	table, err := catalog.Evaluate(s.Scenario)
	if err != nil {
		return exitError(ExitInternal, "neurogen: %v", err)
	}

	if err := cmdFS.MkdirAll(chartDir, 0o750); err != nil {
		return exitError(ExitRenderFailure, "neurogen: cannot create directory %q (%v)", chartDir, err)
	}

	// Render concurrently into memory; files are only written once every
	// chart succeeded.
	bufs := make([]bytes.Buffer, len(kinds))
	var g errgroup.Group
	for i, kind := range kinds {
		g.Go(func() error {
			return chart.RenderKind(kind, table, s.Charts, format, &bufs[i])
		})
	}
	if err := g.Wait(); err != nil {
		return exitError(ExitRenderFailure, "neurogen: %v", err)
	}

	for i, kind := range kinds {
		path := filepath.Join(chartDir, fmt.Sprintf("%s.%s", kind, format))
		if err := writeOutputFile(path, func(w io.Writer) error {
			_, err := bufs[i].WriteTo(w)
			return err
		}); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
