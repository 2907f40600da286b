package config

import (
	"fmt"
	"time"

	"github.com/davetashner/neurogen/internal/chart"
	"github.com/davetashner/neurogen/internal/scenario"
)

// Built-in defaults used when neither a flag nor a config file sets a value.
const (
	DefaultOutputFormat = "table"
	DefaultAddr         = "127.0.0.1:8501"
	DefaultReadTimeout  = 5 * time.Second
)

// Settings is the fully resolved configuration a command runs with.
type Settings struct {
	Scenario     scenario.Input
	OutputFormat string
	Addr         string
	ReadTimeout  time.Duration
	Charts       chart.Options
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Scenario:     scenario.Default(),
		OutputFormat: DefaultOutputFormat,
		Addr:         DefaultAddr,
		ReadTimeout:  DefaultReadTimeout,
		Charts:       chart.Options{Width: chart.DefaultWidth, Height: chart.DefaultHeight},
	}
}

// Config converts s back to file form, with every field set. It is what
// "neurogen config init" writes.
func (s Settings) Config() *Config {
	regen := s.Scenario.RegenEnabled
	return &Config{
		Scenario: ScenarioConfig{
			Dose:         s.Scenario.Dose,
			AILevel:      string(s.Scenario.AILevel),
			RegenEnabled: &regen,
		},
		OutputFormat: s.OutputFormat,
		Serve:        ServeConfig{Addr: s.Addr, ReadTimeout: s.ReadTimeout.String()},
		Charts:       ChartsConfig{Width: s.Charts.Width, Height: s.Charts.Height},
	}
}

// Overrides carries the CLI flags the user explicitly set. Nil pointers and
// empty strings mean "not set" and fall through to the config file.
type Overrides struct {
	Dose         *int
	AILevel      *string
	RegenEnabled *bool
	OutputFormat string
	Addr         string
}

// Layer combines the global and repo configs. Repo values take precedence;
// only non-zero repo values override global values.
func Layer(global, repo *Config) *Config {
	merged := *global

	if repo.Scenario.Dose != 0 {
		merged.Scenario.Dose = repo.Scenario.Dose
	}
	if repo.Scenario.AILevel != "" {
		merged.Scenario.AILevel = repo.Scenario.AILevel
	}
	if repo.Scenario.RegenEnabled != nil {
		merged.Scenario.RegenEnabled = repo.Scenario.RegenEnabled
	}
	if repo.OutputFormat != "" {
		merged.OutputFormat = repo.OutputFormat
	}
	if repo.Serve.Addr != "" {
		merged.Serve.Addr = repo.Serve.Addr
	}
	if repo.Serve.ReadTimeout != "" {
		merged.Serve.ReadTimeout = repo.Serve.ReadTimeout
	}
	if repo.Charts.Width != 0 {
		merged.Charts.Width = repo.Charts.Width
	}
	if repo.Charts.Height != 0 {
		merged.Charts.Height = repo.Charts.Height
	}

	return &merged
}

// Merge resolves file config and CLI overrides on top of Defaults.
// CLI values take precedence; unset CLI fields fall through to the file.
// The result is validated, so callers can use it directly.
func Merge(fileCfg *Config, cli Overrides) (Settings, error) {
	if err := Validate(fileCfg); err != nil {
		return Settings{}, err
	}
	s := Defaults()

	if fileCfg.Scenario.Dose != 0 {
		s.Scenario.Dose = fileCfg.Scenario.Dose
	}
	if fileCfg.Scenario.AILevel != "" {
		s.Scenario.AILevel, _ = scenario.ParseAILevel(fileCfg.Scenario.AILevel)
	}
	if fileCfg.Scenario.RegenEnabled != nil {
		s.Scenario.RegenEnabled = *fileCfg.Scenario.RegenEnabled
	}
	if fileCfg.OutputFormat != "" {
		s.OutputFormat = fileCfg.OutputFormat
	}
	if fileCfg.Serve.Addr != "" {
		s.Addr = fileCfg.Serve.Addr
	}
	if fileCfg.Serve.ReadTimeout != "" {
		s.ReadTimeout, _ = time.ParseDuration(fileCfg.Serve.ReadTimeout)
	}
	if fileCfg.Charts.Width != 0 {
		s.Charts.Width = fileCfg.Charts.Width
	}
	if fileCfg.Charts.Height != 0 {
		s.Charts.Height = fileCfg.Charts.Height
	}

	if cli.Dose != nil {
		s.Scenario.Dose = *cli.Dose
	}
	if cli.AILevel != nil {
		level, err := scenario.ParseAILevel(*cli.AILevel)
		if err != nil {
			return Settings{}, fmt.Errorf("--ai-level: %w", err)
		}
		s.Scenario.AILevel = level
	}
	if cli.RegenEnabled != nil {
		s.Scenario.RegenEnabled = *cli.RegenEnabled
	}
	if cli.OutputFormat != "" {
		s.OutputFormat = cli.OutputFormat
	}
	if cli.Addr != "" {
		s.Addr = cli.Addr
	}

	if err := s.Scenario.Validate(); err != nil {
		return Settings{}, fmt.Errorf("--dose: %w", err)
	}
	return s, nil
}
