package output

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/davetashner/neurogen/internal/catalog"
	"github.com/davetashner/neurogen/internal/chart"
	"github.com/davetashner/neurogen/internal/scenario"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the comparison as a self-contained HTML dashboard with
// server-rendered SVG charts.
type HTMLFormatter struct {
	// Interactive adds the scenario controls sidebar. The form submits to
	// Action with GET, so each change re-evaluates the scenario server-side.
	Interactive bool
	Action      string

	// Charts controls chart dimensions.
	Charts chart.Options

	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new static HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// htmlData holds all template data for the HTML dashboard.
type htmlData struct {
	Title           string
	Intro           string
	GeneratedAt     string
	Scenario        scenario.Input
	HasScenario     bool
	Interactive     bool
	Action          string
	DoseMin         int
	DoseMax         int
	Levels          []scenario.AILevel
	EfficacyChart   template.HTML
	CostChart       template.HTML
	Rows            []htmlRow
	HighlightsTitle string
	Highlights      []string
	Sources         []string
	Disclaimer      string
}

type htmlRow struct {
	Name     string
	Efficacy string
	Cost     string
	Issues   string
	Computed bool
}

// Format writes the dashboard page to w.
func (h *HTMLFormatter) Format(t catalog.ComparisonTable, w io.Writer) error {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Parse(htmlTemplate))
	})

	data, err := h.buildData(t)
	if err != nil {
		return err
	}
	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

func (h *HTMLFormatter) buildData(t catalog.ComparisonTable) (htmlData, error) {
	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}

	action := h.Action
	if action == "" {
		action = "/"
	}

	data := htmlData{
		Title:           catalog.Title,
		Intro:           catalog.Intro,
		GeneratedAt:     now.UTC().Format("2006-01-02 15:04 UTC"),
		Scenario:        t.Scenario,
		HasScenario:     t.Scenario.Dose != 0,
		Interactive:     h.Interactive,
		Action:          action,
		DoseMin:         scenario.DoseMin,
		DoseMax:         scenario.DoseMax,
		Levels:          scenario.AILevels(),
		HighlightsTitle: catalog.HighlightsTitle,
		Highlights:      catalog.Highlights(),
		Sources:         catalog.Sources(),
		Disclaimer:      catalog.Disclaimer,
	}
	for _, r := range t.Records {
		data.Rows = append(data.Rows, htmlRow{
			Name:     r.Name,
			Efficacy: catalog.FormatPercent(r.EfficacyPercent),
			Cost:     catalog.FormatCurrency(r.CostUSD),
			Issues:   r.Issues,
			Computed: r.Computed,
		})
	}

	if len(t.Records) == 0 {
		return data, nil
	}
	var err error
	if data.EfficacyChart, err = inlineSVG(chart.KindEfficacy, t, h.Charts); err != nil {
		return data, err
	}
	if data.CostChart, err = inlineSVG(chart.KindCost, t, h.Charts); err != nil {
		return data, err
	}
	return data, nil
}

// inlineSVG renders a chart produced by our own renderer; it is trusted markup.
func inlineSVG(kind chart.Kind, t catalog.ComparisonTable, opts chart.Options) (template.HTML, error) {
	var buf bytes.Buffer
	if err := chart.RenderKind(kind, t, opts, chart.SVG, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // generated SVG, no user text besides escaped labels
}
