// Copyright 2026 The Neurogen Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/davetashner/neurogen/internal/catalog"
)

func init() {
	RegisterFormatter(NewTableFormatter())
}

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
}

// textTable renders aligned text tables. Each row may carry a color applied
// after padding so ANSI codes do not skew column widths.
type textTable struct {
	columns []Column
	rows    [][]string
	colors  []*color.Color
}

func newTextTable(columns ...Column) *textTable {
	return &textTable{columns: columns}
}

// addRow appends a row. Missing values are treated as empty strings.
func (t *textTable) addRow(c *color.Color, values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
	t.colors = append(t.colors, c)
}

func (t *textTable) render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(header, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	sep := make([]string, len(t.columns))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(sep, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	for r, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			parts[i] = pad(row[i], widths[i], col.Align)
			if c := t.colors[r]; c != nil {
				parts[i] = c.Sprint(parts[i])
			}
		}
		if _, err := fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " ")); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
	return nil
}

func pad(s string, width int, align Alignment) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// TableFormatter writes the comparison as an aligned terminal table.
// NEUROGEN-X is printed in green, comparators in red; colors follow
// color.NoColor.
type TableFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TableFormatter)(nil)

// NewTableFormatter returns a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Name returns the format name.
func (f *TableFormatter) Name() string {
	return "table"
}

// Format writes the scenario line followed by the treatment table.
func (f *TableFormatter) Format(t catalog.ComparisonTable, w io.Writer) error {
	if t.Scenario.Dose != 0 {
		if _, err := fmt.Fprintf(w, "Scenario: %s\n\n", t.Scenario); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}

	tbl := newTextTable(
		Column{Header: "Treatment"},
		Column{Header: "Efficacy", Align: AlignRight},
		Column{Header: "Cost", Align: AlignRight},
		Column{Header: "Issues"},
	)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen, color.Bold)
	for _, r := range t.Records {
		c := red
		if r.Computed {
			c = green
		}
		tbl.addRow(c, r.Name, catalog.FormatPercent(r.EfficacyPercent), catalog.FormatCurrency(r.CostUSD), r.Issues)
	}
	return tbl.render(w)
}
