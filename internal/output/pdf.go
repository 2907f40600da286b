// Copyright 2026 The Neurogen Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/davetashner/neurogen/internal/catalog"
	"github.com/davetashner/neurogen/internal/chart"
)

func init() {
	RegisterFormatter(NewPDFFormatter())
}

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter writes the comparison as an A4 PDF report with embedded charts.
type PDFFormatter struct {
	// Charts controls the pixel size of the embedded chart images.
	Charts chart.Options

	nowFunc func() time.Time
}

// Compile-time interface checks.
var (
	_ Formatter       = (*PDFFormatter)(nil)
	_ BinaryFormatter = (*PDFFormatter)(nil)
)

// NewPDFFormatter returns a new PDFFormatter.
func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

// Name returns the format name.
func (p *PDFFormatter) Name() string {
	return "pdf"
}

// ContentType returns the MIME type of the output.
func (p *PDFFormatter) ContentType() string {
	return "application/pdf"
}

// pdfReport accumulates one document.
type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// Format renders the report and writes the PDF bytes to w.
func (p *PDFFormatter) Format(t catalog.ComparisonTable, w io.Writer) error {
	now := time.Now()
	if p.nowFunc != nil {
		now = p.nowFunc()
	}

	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetTitle(catalog.Title, true)
	r.pdf.SetCreator("neurogen", false)
	r.pdf.SetCreationDate(now)
	r.pdf.SetFooterFunc(func() {
		r.pdf.SetY(-15)
		r.pdf.SetFont("Arial", "I", 8)
		r.pdf.SetTextColor(128, 128, 128)
		r.pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", r.pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	r.pdf.AddPage()
	r.addHeader(t, now)
	r.addTable(t)
	if len(t.Records) > 0 {
		if err := r.addCharts(t, p.Charts); err != nil {
			return err
		}
	}
	r.addHighlights()

	if err := r.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (r *pdfReport) addHeader(t catalog.ComparisonTable, now time.Time) {
	r.pdf.SetFont("Arial", "B", 18)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.MultiCell(pdfContentWidth, 9, r.tr(catalog.Title), "", "L", false)
	r.pdf.Ln(2)

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.MultiCell(pdfContentWidth, 5, r.tr(catalog.Intro), "", "L", false)
	r.pdf.Ln(2)

	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.CellFormat(pdfContentWidth, 5,
		fmt.Sprintf("Generated %s  |  Report %s", now.Format("2 January 2006"), uuid.NewString()[:8]),
		"", 1, "L", false, 0, "")
	r.pdf.Ln(4)

	if t.Scenario.Dose == 0 {
		return
	}
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, "Scenario Parameters", "1", 1, "L", true, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	lines := []string{
		fmt.Sprintf("Nanorobot dose: %d million", t.Scenario.Dose),
		fmt.Sprintf("AI optimization level: %s", t.Scenario.AILevel),
		fmt.Sprintf("Regenerative neuron module: %s", onOff(t.Scenario.RegenEnabled)),
	}
	for i, l := range lines {
		border := "LR"
		if i == len(lines)-1 {
			border = "LRB"
		}
		r.pdf.CellFormat(pdfContentWidth, 6, l, border, 1, "L", true, 0, "")
	}
	r.pdf.Ln(6)
}

func (r *pdfReport) addTable(t catalog.ComparisonTable) {
	widths := []float64{60, 25, 30, pdfContentWidth - 115}
	headers := []string{"Treatment", "Efficacy", "Cost", "Issues"}
	aligns := []string{"L", "R", "R", "L"}

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, "Full Treatment Overview", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		r.pdf.CellFormat(widths[i], 7, h, "1", 0, aligns[i], true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 9)
	for _, rec := range t.Records {
		if rec.Computed {
			r.pdf.SetFillColor(50, 168, 82)
			r.pdf.SetTextColor(255, 255, 255)
		} else {
			r.pdf.SetFillColor(250, 235, 235)
			r.pdf.SetTextColor(50, 50, 50)
		}
		cells := []string{
			rec.Name,
			catalog.FormatPercent(rec.EfficacyPercent),
			catalog.FormatCurrency(rec.CostUSD),
			rec.Issues,
		}
		for i, c := range cells {
			r.pdf.CellFormat(widths[i], 7, r.tr(c), "1", 0, aligns[i], true, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.Ln(6)
}

func (r *pdfReport) addCharts(t catalog.ComparisonTable, opts chart.Options) error {
	const gap = 5.0
	w := (pdfContentWidth - gap) / 2
	y := r.pdf.GetY()
	maxH := 0.0

	for i, kind := range chart.Kinds() {
		var buf bytes.Buffer
		if err := chart.RenderKind(kind, t, opts, chart.PNG, &buf); err != nil {
			return err
		}
		name := "chart-" + string(kind)
		info := r.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
		if r.pdf.Err() {
			return fmt.Errorf("embed %s chart: %w", kind, r.pdf.Error())
		}
		x := pdfMarginLeft + float64(i)*(w+gap)
		h := w * info.Height() / info.Width()
		r.pdf.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		maxH = max(maxH, h)
	}
	r.pdf.SetY(y + maxH + 6)
	return nil
}

func (r *pdfReport) addHighlights() {
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, catalog.HighlightsTitle, "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, h := range catalog.Highlights() {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr("- "+h), "", "L", false)
	}
	r.pdf.Ln(3)

	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(pdfContentWidth, 6, "Data sourced from", "", 1, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	for _, s := range catalog.Sources() {
		r.pdf.CellFormat(pdfContentWidth, 5, r.tr("- "+s), "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(3)
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.SetTextColor(128, 128, 128)
	r.pdf.MultiCell(pdfContentWidth, 4, r.tr(catalog.Disclaimer), "", "L", false)
}
