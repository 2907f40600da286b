package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	neurolog "github.com/davetashner/neurogen/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
)

// rootCmd is the base command for neurogen.
var rootCmd = &cobra.Command{
	Use:   "neurogen",
	Short: "Compare NEUROGEN-X with existing prion disease treatments",
	Long: `Neurogen scores the simulated NEUROGEN-X nanorobot therapy for a given
dose, AI optimization level, and regeneration setting, and compares it with
Quinacrine, Gold Nanoparticles, and ASO Therapy on efficacy, cost, and issues.

Results render as terminal tables, JSON, CSV, Markdown, HTML, PDF, or charts,
and can be explored interactively with the built-in dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		neurolog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file to use instead of global and repo config")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
