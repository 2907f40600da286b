package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/davetashner/neurogen/internal/scenario"
)

// scoreCmd prints the simulated NEUROGEN-X efficacy for a scenario.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the simulated NEUROGEN-X efficacy",
	Long: `Compute the simulated NEUROGEN-X efficacy percentage:

  min(60 + dose/4 + AI bonus + regeneration bonus, 100)

The AI bonus is 0 for Low, 10 for Medium, and 20 for High. The regeneration
bonus is 5 when the regenerative neuron module is active.

Flags not given on the command line fall back to the config file, then to
dose 100, AI level Low, regeneration on.`,
	Example: `  neurogen score
  neurogen score --dose 50 --ai-level Medium --regen=false`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	addScenarioFlags(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(scenarioOverrides(cmd))
	if err != nil {
		return err
	}

	eff, err := scenario.Score(s.Scenario)
	if err != nil {
		return exitError(ExitInvalidArgs, "neurogen: %v", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(eff, 'f', -1, 64))
	return nil
}
