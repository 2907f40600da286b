package dashboard

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/neurogen/internal/scenario"
)

func TestParseScenario(t *testing.T) {
	defaults := scenario.Default()
	tests := []struct {
		name  string
		query string
		want  scenario.Input
	}{
		{"empty uses defaults", "", defaults},
		{"dose only", "dose=250", scenario.Input{Dose: 250, AILevel: scenario.AILow, RegenEnabled: true}},
		{"level case-insensitive", "ai_level=high", scenario.Input{Dose: 100, AILevel: scenario.AIHigh, RegenEnabled: true}},
		{"regen false", "regen=false", scenario.Input{Dose: 100, AILevel: scenario.AILow, RegenEnabled: false}},
		{"regen on", "regen=on&submitted=1", scenario.Input{Dose: 100, AILevel: scenario.AILow, RegenEnabled: true}},
		{"regen 0", "regen=0", scenario.Input{Dose: 100, AILevel: scenario.AILow, RegenEnabled: false}},
		{"unchecked box on submit", "submitted=1&dose=40&ai_level=Medium", scenario.Input{Dose: 40, AILevel: scenario.AIMedium, RegenEnabled: false}},
		{"bounds inclusive", "dose=10", scenario.Input{Dose: 10, AILevel: scenario.AILow, RegenEnabled: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			got, err := parseScenario(q, defaults)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScenario_Invalid(t *testing.T) {
	for _, query := range []string{"dose=abc", "dose=9", "dose=301", "ai_level=Max", "regen=maybe"} {
		t.Run(query, func(t *testing.T) {
			q, err := url.ParseQuery(query)
			require.NoError(t, err)
			_, err = parseScenario(q, scenario.Default())
			require.Error(t, err)
			assert.True(t, errors.Is(err, scenario.ErrInvalidInput), err.Error())
		})
	}
}
