package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/davetashner/neurogen/internal/config"
	"github.com/davetashner/neurogen/internal/scenario"
)

// Scenario flag values, shared by every command that evaluates a scenario.
var (
	scenarioDose    int
	scenarioAILevel string
	scenarioRegen   bool
)

// addScenarioFlags registers --dose, --ai-level and --regen on cmd.
func addScenarioFlags(cmd *cobra.Command) {
	d := scenario.Default()
	cmd.Flags().IntVar(&scenarioDose, "dose", d.Dose,
		fmt.Sprintf("nanorobot dose in millions (%d-%d)", scenario.DoseMin, scenario.DoseMax))
	cmd.Flags().StringVar(&scenarioAILevel, "ai-level", string(d.AILevel), "AI optimization level: Low, Medium, or High")
	cmd.Flags().BoolVar(&scenarioRegen, "regen", d.RegenEnabled, "activate the regenerative neuron module")
}

// scenarioOverrides collects the scenario flags explicitly set on cmd so that
// unset flags fall through to the config file.
func scenarioOverrides(cmd *cobra.Command) config.Overrides {
	var ov config.Overrides
	if f := cmd.Flags().Lookup("dose"); f != nil && f.Changed {
		ov.Dose = &scenarioDose
	}
	if f := cmd.Flags().Lookup("ai-level"); f != nil && f.Changed {
		ov.AILevel = &scenarioAILevel
	}
	if f := cmd.Flags().Lookup("regen"); f != nil && f.Changed {
		ov.RegenEnabled = &scenarioRegen
	}
	return ov
}

// loadFileConfig returns the --config file if given, otherwise the global
// config layered under the repo config in the working directory.
func loadFileConfig() (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", configPath, err)
		}
		return cfg, nil
	}

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("loading repo config: %w", err)
	}
	return config.Layer(globalCfg, repoCfg), nil
}

// loadSettings resolves config files and CLI overrides into the settings a
// command runs with. Failures map to ExitInvalidArgs.
func loadSettings(ov config.Overrides) (config.Settings, error) {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "neurogen: %v", err)
	}
	s, err := config.Merge(fileCfg, ov)
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "neurogen: %v", err)
	}
	slog.Debug("settings resolved", "scenario", s.Scenario.String(), "format", s.OutputFormat, "addr", s.Addr)
	return s, nil
}
