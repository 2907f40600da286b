package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the neurogen version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the neurogen binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "neurogen %s\n", Version)
	},
}
