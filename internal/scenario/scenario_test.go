package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAILevel(t *testing.T) {
	tests := []struct {
		in   string
		want AILevel
	}{
		{"Low", AILow},
		{"low", AILow},
		{"MEDIUM", AIMedium},
		{" High ", AIHigh},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAILevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAILevel("extreme")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestAILevels_Order(t *testing.T) {
	assert.Equal(t, []AILevel{AILow, AIMedium, AIHigh}, AILevels())
	for _, l := range AILevels() {
		assert.True(t, l.Valid())
	}
	assert.False(t, AILevel("low").Valid(), "Valid is case-sensitive; use ParseAILevel")
}

func TestDefault(t *testing.T) {
	in := Default()
	assert.Equal(t, 100, in.Dose)
	assert.Equal(t, AILow, in.AILevel)
	assert.True(t, in.RegenEnabled)
	assert.NoError(t, in.Validate())
}

func TestInput_String(t *testing.T) {
	assert.Equal(t, "dose=100M ai=Low regen=on", Default().String())
	assert.Equal(t, "dose=10M ai=High regen=off", Input{Dose: 10, AILevel: AIHigh}.String())
}

func TestInput_ValidateBounds(t *testing.T) {
	assert.NoError(t, Input{Dose: DoseMin, AILevel: AILow}.Validate())
	assert.NoError(t, Input{Dose: DoseMax, AILevel: AILow}.Validate())
	assert.Error(t, Input{Dose: DoseMin - 1, AILevel: AILow}.Validate())
	assert.Error(t, Input{Dose: DoseMax + 1, AILevel: AILow}.Validate())
}
