package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/neurogen/internal/catalog"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the comparison as a human-readable Markdown report.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the comparison as a Markdown document to w.
//
// The output includes:
//   - A title heading and the introductory paragraph
//   - The scenario parameters
//   - The treatment overview table
//   - The highlights list and data sources
func (m *MarkdownFormatter) Format(t catalog.ComparisonTable, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n%s\n\n", catalog.Title, catalog.Intro)

	if t.Scenario.Dose != 0 {
		b.WriteString("## Scenario\n\n")
		fmt.Fprintf(&b, "- Nanorobot dose: %d million\n", t.Scenario.Dose)
		fmt.Fprintf(&b, "- AI optimization level: %s\n", t.Scenario.AILevel)
		fmt.Fprintf(&b, "- Regenerative neuron module: %s\n\n", onOff(t.Scenario.RegenEnabled))
	}

	b.WriteString("## Full Treatment Overview\n\n")
	b.WriteString("| Treatment | Efficacy | Cost | Issues |\n")
	b.WriteString("|-----------|---------:|-----:|--------|\n")
	for _, r := range t.Records {
		name := escapeCell(r.Name)
		if r.Computed {
			name = "**" + name + "**"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			name, catalog.FormatPercent(r.EfficacyPercent), catalog.FormatCurrency(r.CostUSD), escapeCell(r.Issues))
	}

	fmt.Fprintf(&b, "\n## %s\n\n", catalog.HighlightsTitle)
	for _, h := range catalog.Highlights() {
		fmt.Fprintf(&b, "- %s\n", h)
	}

	b.WriteString("\nData sourced from:\n\n")
	for _, s := range catalog.Sources() {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	fmt.Fprintf(&b, "\n_%s_\n", catalog.Disclaimer)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// escapeCell escapes pipe characters so cell text does not split the row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
