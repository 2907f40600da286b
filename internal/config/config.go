// Package config handles .neurogen.yaml and .neurogen.toml configuration files.
package config

// Config represents the contents of a .neurogen.yaml (or .neurogen.toml) file.
type Config struct {
	Scenario     ScenarioConfig `yaml:"scenario,omitempty" toml:"scenario,omitempty"`
	OutputFormat string         `yaml:"output_format,omitempty" toml:"output_format,omitempty"`
	Serve        ServeConfig    `yaml:"serve,omitempty" toml:"serve,omitempty"`
	Charts       ChartsConfig   `yaml:"charts,omitempty" toml:"charts,omitempty"`
}

// ScenarioConfig holds the default treatment scenario.
type ScenarioConfig struct {
	Dose         int    `yaml:"dose,omitempty" toml:"dose,omitempty"`
	AILevel      string `yaml:"ai_level,omitempty" toml:"ai_level,omitempty"`
	RegenEnabled *bool  `yaml:"regen_enabled,omitempty" toml:"regen_enabled,omitempty"`
}

// ServeConfig holds dashboard server settings.
type ServeConfig struct {
	Addr        string `yaml:"addr,omitempty" toml:"addr,omitempty"`
	ReadTimeout string `yaml:"read_timeout,omitempty" toml:"read_timeout,omitempty"`
}

// ChartsConfig holds chart dimensions in pixels.
type ChartsConfig struct {
	Width  int `yaml:"width,omitempty" toml:"width,omitempty"`
	Height int `yaml:"height,omitempty" toml:"height,omitempty"`
}

// File names looked up in the working directory. The YAML file wins when both exist.
const (
	FileName     = ".neurogen.yaml"
	TOMLFileName = ".neurogen.toml"
)
