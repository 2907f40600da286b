package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/neurogen/internal/catalog"
)

func TestMarkdownFormatterName(t *testing.T) {
	assert.Equal(t, "markdown", NewMarkdownFormatter().Name())
}

func TestMarkdownFormatter_Sections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(testTable(t), &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# "+catalog.Title+"\n"))
	assert.Contains(t, out, "## Scenario")
	assert.Contains(t, out, "- Nanorobot dose: 100 million")
	assert.Contains(t, out, "- AI optimization level: Low")
	assert.Contains(t, out, "- Regenerative neuron module: on")
	assert.Contains(t, out, "## Full Treatment Overview")
	assert.Contains(t, out, "| Quinacrine | 0.0% | $500 | Liver toxicity, no efficacy |")
	assert.Contains(t, out, "| **NEUROGEN-X** | 90.0% | $8,000 | None in simulations |")
	assert.Contains(t, out, "## Why NEUROGEN-X is the Future")
	assert.Contains(t, out, "- NIH ASO Clinical Trials (2023)")
}

func TestMarkdownFormatter_RowOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(testTable(t), &buf))
	out := buf.String()

	prev := -1
	for _, name := range testTable(t).Names() {
		idx := strings.Index(out, "| "+name)
		if idx < 0 {
			idx = strings.Index(out, "| **"+name)
		}
		require.GreaterOrEqual(t, idx, 0, name)
		assert.Greater(t, idx, prev, "%s out of order", name)
		prev = idx
	}
}

func TestMarkdownFormatter_EscapesPipes(t *testing.T) {
	assert.Equal(t, `a \| b`, escapeCell("a | b"))
}

func TestMarkdownFormatter_WriteError(t *testing.T) {
	err := NewMarkdownFormatter().Format(testTable(t), &failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write markdown")
}
