package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/davetashner/neurogen/internal/catalog"
)

func init() {
	RegisterFormatter(NewCSVFormatter())
}

// CSVFormatter writes the table as RFC 4180 CSV with raw numeric values.
type CSVFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*CSVFormatter)(nil)

// NewCSVFormatter returns a new CSVFormatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format writes a header row followed by one row per treatment.
func (f *CSVFormatter) Format(t catalog.ComparisonTable, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"treatment", "efficacy_percent", "cost_usd", "issues", "computed"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range t.Records {
		row := []string{
			r.Name,
			strconv.FormatFloat(r.EfficacyPercent, 'f', -1, 64),
			strconv.FormatFloat(r.CostUSD, 'f', -1, 64),
			r.Issues,
			strconv.FormatBool(r.Computed),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
