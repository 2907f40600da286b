package output

import (
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/neurogen/internal/catalog"
	"github.com/davetashner/neurogen/internal/scenario"
)

func fixedNow() time.Time {
	return time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
}

// testTable evaluates the default scenario (NEUROGEN-X at 90%).
func testTable(t *testing.T) catalog.ComparisonTable {
	t.Helper()
	tbl, err := catalog.Evaluate(scenario.Default())
	require.NoError(t, err)
	return tbl
}

// restoreFormatters re-registers every built-in formatter after a test
// cleared the registry.
func restoreFormatters() {
	resetFmtForTesting()
	RegisterFormatter(NewJSONFormatter())
	RegisterFormatter(NewMarkdownFormatter())
	RegisterFormatter(NewHTMLFormatter())
	RegisterFormatter(NewTableFormatter())
	RegisterFormatter(NewCSVFormatter())
	RegisterFormatter(NewPDFFormatter())
}

// disableColor turns off ANSI output for the duration of the test.
func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

// failWriter fails after failAfter successful writes.
type failWriter struct {
	failAfter int
	writes    int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.writes >= w.failAfter {
		return 0, errors.New("write failed")
	}
	w.writes++
	return len(p), nil
}
