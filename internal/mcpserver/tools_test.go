package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/neurogen/internal/output"
	"github.com/davetashner/neurogen/internal/scenario"
)

func TestHandleScore(t *testing.T) {
	tests := []struct {
		name  string
		input ScoreInput
		want  float64
	}{
		{"defaults", ScoreInput{}, 90},
		{"medium no regen", ScoreInput{Dose: intPtr(50), AILevel: "Medium", RegenEnabled: boolPtr(false)}, 82.5},
		{"high clamps", ScoreInput{Dose: intPtr(300), AILevel: "high"}, 100},
		{"minimum", ScoreInput{Dose: intPtr(10), AILevel: "Low", RegenEnabled: boolPtr(false)}, 62.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, out, err := handleScore(context.Background(), nil, tt.input)
			require.NoError(t, err)
			assert.Nil(t, res)
			assert.InDelta(t, tt.want, out.EfficacyPercent, 1e-9)
		})
	}
}

func TestHandleScore_Invalid(t *testing.T) {
	for _, input := range []ScoreInput{
		{Dose: intPtr(9)},
		{Dose: intPtr(301)},
		{Dose: intPtr(0)},
		{Dose: intPtr(-1)},
		{AILevel: "Extreme"},
	} {
		_, _, err := handleScore(context.Background(), nil, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, scenario.ErrInvalidInput), err.Error())
	}
}

func TestHandleCompare_JSONDefault(t *testing.T) {
	result, _, err := handleCompare(context.Background(), nil, CompareInput{Dose: intPtr(200), AILevel: "Low"})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text := result.Content[0].(*mcp.TextContent).Text
	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal([]byte(text), &env))
	require.Len(t, env.Treatments, 4)
	assert.Equal(t, 200, env.Scenario.Dose)
	assert.Equal(t, "NEUROGEN-X", env.Treatments[3].Name)
	assert.InDelta(t, 100.0, env.Treatments[3].EfficacyPercent, 1e-9) // 60 + 50 + 5 = 115, clamped
}

func TestHandleCompare_Markdown(t *testing.T) {
	result, _, err := handleCompare(context.Background(), nil, CompareInput{Format: "markdown"})
	require.NoError(t, err)
	text := result.Content[0].(*mcp.TextContent).Text
	assert.True(t, strings.HasPrefix(text, "# NEUROGEN-X"))
	assert.Contains(t, text, "| **NEUROGEN-X** | 90.0% | $8,000 |")
}

func TestHandleCompare_RejectsFormats(t *testing.T) {
	for _, format := range []string{"pdf", "yaml"} {
		_, _, err := handleCompare(context.Background(), nil, CompareInput{Format: format})
		require.Error(t, err, format)
		assert.Contains(t, err.Error(), "unsupported format")
	}
}

func TestHandleCompare_InvalidScenario(t *testing.T) {
	for _, dose := range []int{1000, 0, -1} {
		_, _, err := handleCompare(context.Background(), nil, CompareInput{Dose: intPtr(dose)})
		require.Error(t, err, dose)
		assert.True(t, errors.Is(err, scenario.ErrInvalidInput), err.Error())
	}
}

func TestToScenario_ExplicitZeroDose(t *testing.T) {
	in, err := ScoreInput{Dose: intPtr(0)}.toScenario()
	require.Error(t, err)
	assert.Equal(t, 0, in.Dose, "explicit zero is not replaced by the default")

	in, err = ScoreInput{}.toScenario()
	require.NoError(t, err)
	assert.Equal(t, scenario.DefaultDose, in.Dose)
}
