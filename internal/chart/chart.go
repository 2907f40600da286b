// Package chart renders the efficacy and cost comparison bar charts.
package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/davetashner/neurogen/internal/catalog"
)

// Default chart dimensions in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 400

	// MaxDimension caps configured widths and heights.
	MaxDimension = 4096
)

// Kind selects which comparison chart to build.
type Kind string

// Chart kinds.
const (
	KindEfficacy Kind = "efficacy"
	KindCost     Kind = "cost"
)

// Kinds returns all chart kinds in display order.
func Kinds() []Kind {
	return []Kind{KindEfficacy, KindCost}
}

// ParseKind maps a name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindEfficacy:
		return KindEfficacy, nil
	case KindCost:
		return KindCost, nil
	default:
		return "", fmt.Errorf("unknown chart kind %q (must be efficacy or cost)", s)
	}
}

// Format is an image encoding.
type Format string

// Supported image formats.
const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat maps a name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	default:
		return "", fmt.Errorf("unknown image format %q (must be png or svg)", s)
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Options controls chart dimensions. Zero values fall back to the defaults.
type Options struct {
	Width  int
	Height int
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

func (o Options) height() int {
	if o.Height <= 0 {
		return DefaultHeight
	}
	return o.Height
}

// Build returns the chart of the given kind for t.
func Build(kind Kind, t catalog.ComparisonTable, opts Options) (gochart.BarChart, error) {
	switch kind {
	case KindEfficacy:
		return Efficacy(t, opts), nil
	case KindCost:
		return Cost(t, opts), nil
	default:
		return gochart.BarChart{}, fmt.Errorf("unknown chart kind %q", kind)
	}
}

// Efficacy builds the efficacy bar chart on a fixed 0-100 axis.
func Efficacy(t catalog.ComparisonTable, opts Options) gochart.BarChart {
	bars := make([]gochart.Value, len(t.Records))
	for i, r := range t.Records {
		bars[i] = bar(r, r.EfficacyPercent)
	}
	return gochart.BarChart{
		Title:      "Efficacy Comparison",
		Width:      opts.width(),
		Height:     opts.height(),
		Background: background(),
		XAxis:      labelStyle(),
		YAxis: gochart.YAxis{
			Name:           "Efficacy (%)",
			Range:          &gochart.ContinuousRange{Min: 0, Max: 100},
			Ticks:          EfficacyTicks(),
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f%%", v) },
		},
		Bars: bars,
	}
}

// Cost builds the per-patient cost bar chart on a logarithmic axis.
func Cost(t catalog.ComparisonTable, opts Options) gochart.BarChart {
	bars := make([]gochart.Value, len(t.Records))
	costs := make([]float64, len(t.Records))
	for i, r := range t.Records {
		bars[i] = bar(r, r.CostUSD)
		costs[i] = r.CostUSD
	}
	lo, hi := LogBounds(costs)
	return gochart.BarChart{
		Title:      "Cost Comparison (Log Scale)",
		Width:      opts.width(),
		Height:     opts.height(),
		Background: background(),
		XAxis:      labelStyle(),
		YAxis: gochart.YAxis{
			Name:  "Cost per Patient (USD)",
			Range: &gochart.LogarithmicRange{Min: lo, Max: hi},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return catalog.FormatCurrency(f)
				}
				return fmt.Sprint(v)
			},
		},
		Bars: bars,
	}
}

// LogBounds returns the enclosing powers of ten for the positive values in
// vs. The result always spans at least one decade.
func LogBounds(vs []float64) (lo, hi float64) {
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if v <= 0 {
			continue
		}
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if math.IsInf(minV, 1) {
		return 1, 10
	}
	lo = math.Pow(10, math.Floor(math.Log10(minV)))
	hi = math.Pow(10, math.Ceil(math.Log10(maxV)))
	if hi <= lo {
		hi = lo * 10
	}
	return lo, hi
}

// labelPadding reserves room under the bars for treatment names wrapped onto
// up to three lines.
const labelPadding = 64

func background() gochart.Style {
	return gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: labelPadding}}
}

func labelStyle() gochart.Style {
	return gochart.Style{TextWrap: gochart.TextWrapWord, FontSize: 9}
}

// EfficacyTicks returns the fixed efficacy axis ticks: 0% to 100% in steps of 20.
func EfficacyTicks() []gochart.Tick {
	ticks := make([]gochart.Tick, 0, 6)
	for v := 0; v <= 100; v += 20 {
		ticks = append(ticks, gochart.Tick{Value: float64(v), Label: fmt.Sprintf("%d%%", v)})
	}
	return ticks
}

func bar(r catalog.TreatmentRecord, v float64) gochart.Value {
	c := drawing.ColorFromHex(r.Color())
	return gochart.Value{
		Label: r.Name,
		Value: v,
		Style: gochart.Style{FillColor: c, StrokeColor: c},
	}
}

// Render encodes c to w in the given format.
func Render(c gochart.BarChart, format Format, w io.Writer) error {
	provider := gochart.PNG
	if format == SVG {
		provider = gochart.SVG
	}
	if err := c.Render(provider, w); err != nil {
		return fmt.Errorf("render %s chart %q: %w", format, c.Title, err)
	}
	return nil
}

// RenderKind builds and renders a chart in one step.
func RenderKind(kind Kind, t catalog.ComparisonTable, opts Options, format Format, w io.Writer) error {
	c, err := Build(kind, t, opts)
	if err != nil {
		return err
	}
	return Render(c, format, w)
}
