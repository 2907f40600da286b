package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/davetashner/neurogen/internal/catalog"
	"github.com/davetashner/neurogen/internal/config"
	"github.com/davetashner/neurogen/internal/output"
)

// Compare-specific flag values.
var (
	compareFormat string
	compareOutput string
)

// compareCmd renders the full treatment comparison.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare NEUROGEN-X with existing treatments",
	Long: `Evaluate the scenario and render the four-row treatment comparison
(Quinacrine, Gold Nanoparticles, ASO Therapy, NEUROGEN-X) in the chosen
format: table, json, csv, markdown, html, or pdf.

The format defaults to output_format from the config file, else table.
Binary formats (pdf) require --output when stdout is a terminal.`,
	Example: `  neurogen compare
  neurogen compare --dose 200 --ai-level High -f markdown
  neurogen compare -f pdf -o report.pdf`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	addScenarioFlags(compareCmd)
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "", "output format: table, json, csv, markdown, html, pdf")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "", "output file path (default: stdout)")
}

func runCompare(cmd *cobra.Command, _ []string) error {
	ov := scenarioOverrides(cmd)
	ov.OutputFormat = compareFormat
	s, err := loadSettings(ov)
	if err != nil {
		return err
	}

	formatter, err := formatterFor(s.OutputFormat, s)
	if err != nil {
		return exitError(ExitInvalidArgs, "neurogen: %v", err)
	}

	table, err := catalog.Evaluate(s.Scenario)
	if err != nil {
		if errors.Is(err, catalog.ErrDataIntegrity) {
			return exitError(ExitInternal, "neurogen: %v", err)
		}
		return exitError(ExitInvalidArgs, "neurogen: %v", err)
	}

	if compareOutput == "" {
		w := cmd.OutOrStdout()
		if output.IsBinary(formatter) && isTerminal(w) {
			return exitError(ExitInvalidArgs, "neurogen: refusing to write %s to a terminal; use --output", formatter.Name())
		}
		if err := formatter.Format(table, w); err != nil {
			return exitError(ExitRenderFailure, "neurogen: %v", err)
		}
		return nil
	}

	return writeOutputFile(compareOutput, func(w io.Writer) error {
		return formatter.Format(table, w)
	})
}

// formatterFor looks up a registered formatter, giving chart-bearing formats
// the configured chart dimensions.
func formatterFor(name string, s config.Settings) (output.Formatter, error) {
	f, err := output.GetFormatter(name)
	if err != nil {
		return nil, err
	}
	switch f.(type) {
	case *output.HTMLFormatter:
		return &output.HTMLFormatter{Charts: s.Charts}, nil
	case *output.PDFFormatter:
		return &output.PDFFormatter{Charts: s.Charts}, nil
	}
	return f, nil
}

// writeOutputFile creates path and fills it with render. On failure the
// partial file is removed.
func writeOutputFile(path string, render func(io.Writer) error) error {
	f, err := cmdFS.Create(path)
	if err != nil {
		return exitError(ExitRenderFailure, "neurogen: cannot create output file %q (%v)", path, err)
	}
	renderErr := render(f)
	closeErr := f.Close()
	if err := errors.Join(renderErr, closeErr); err != nil {
		if rmErr := cmdFS.Remove(path); rmErr != nil {
			slog.Warn("failed to remove partial output", "path", path, "error", rmErr)
		}
		return exitError(ExitRenderFailure, "neurogen: writing %s: %v", path, err)
	}
	slog.Info("wrote output", "path", path)
	return nil
}

// isTerminal reports whether w is a character device such as a TTY.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
