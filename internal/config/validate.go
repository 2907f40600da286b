package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/davetashner/neurogen/internal/chart"
	"github.com/davetashner/neurogen/internal/output"
	"github.com/davetashner/neurogen/internal/scenario"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if d := cfg.Scenario.Dose; d != 0 && (d < scenario.DoseMin || d > scenario.DoseMax) {
		errs = append(errs, fmt.Sprintf("scenario.dose: must be between %d and %d, got %d", scenario.DoseMin, scenario.DoseMax, d))
	}

	if cfg.Scenario.AILevel != "" {
		if _, err := scenario.ParseAILevel(cfg.Scenario.AILevel); err != nil {
			errs = append(errs, fmt.Sprintf("scenario.ai_level: invalid value %q (must be Low, Medium, or High)", cfg.Scenario.AILevel))
		}
	}

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.Serve.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Serve.Addr); err != nil {
			errs = append(errs, fmt.Sprintf("serve.addr: %v", err))
		}
	}

	if cfg.Serve.ReadTimeout != "" {
		d, err := time.ParseDuration(cfg.Serve.ReadTimeout)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("serve.read_timeout: %v", err))
		case d <= 0:
			errs = append(errs, fmt.Sprintf("serve.read_timeout: must be positive, got %s", d))
		}
	}

	errs = append(errs, validateDimension("charts.width", cfg.Charts.Width)...)
	errs = append(errs, validateDimension("charts.height", cfg.Charts.Height)...)

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateDimension checks a chart size in pixels. Zero means unset.
func validateDimension(key string, v int) []string {
	switch {
	case v < 0:
		return []string{fmt.Sprintf("%s: must be positive, got %d", key, v)}
	case v > chart.MaxDimension:
		return []string{fmt.Sprintf("%s: must be at most %d, got %d", key, chart.MaxDimension, v)}
	}
	return nil
}
