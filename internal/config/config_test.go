package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_YAMLRoundTrip(t *testing.T) {
	regen := false
	original := &Config{
		Scenario:     ScenarioConfig{Dose: 200, AILevel: "High", RegenEnabled: &regen},
		OutputFormat: "json",
		Serve:        ServeConfig{Addr: ":9000", ReadTimeout: "10s"},
		Charts:       ChartsConfig{Width: 800, Height: 500},
	}

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *original, decoded)
}

func TestConfig_RegenNilDistinct(t *testing.T) {
	// When regen_enabled is not set in YAML, it should unmarshal as nil.
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte("scenario:\n  dose: 50\n"), &cfg))
	assert.Nil(t, cfg.Scenario.RegenEnabled)
	assert.Equal(t, 50, cfg.Scenario.Dose)
}

func TestConfig_EmptyYAML(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(""), &cfg))
	assert.Equal(t, Config{}, cfg)
}

func TestConfig_OmitEmptyFields(t *testing.T) {
	data, err := yaml.Marshal(&Config{})
	require.NoError(t, err)
	// Should produce minimal output with omitempty.
	assert.Equal(t, "{}\n", string(data))
}
