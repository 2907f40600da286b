package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/davetashner/neurogen/internal/catalog"
	"github.com/davetashner/neurogen/internal/scenario"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the comparison with metadata for the JSON output format.
type JSONEnvelope struct {
	Scenario   scenario.Input            `json:"scenario"`
	Treatments []catalog.TreatmentRecord `json:"treatments"`
	Metadata   JSONMetadata              `json:"metadata"`
}

// JSONMetadata describes the evaluation that produced the table.
type JSONMetadata struct {
	ReportID    string `json:"report_id"`
	TotalCount  int    `json:"total_count"`
	GeneratedAt string `json:"generated_at"`
	Disclaimer  string `json:"disclaimer"`
}

// JSONFormatter writes the table as a JSON object with metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces unless w is a
	// pipe or regular file.
	Compact bool

	// nowFunc and idFunc are overridden in tests.
	nowFunc func() time.Time
	idFunc  func() string
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the table as a JSON document with a metadata envelope to w.
func (f *JSONFormatter) Format(t catalog.ComparisonTable, w io.Writer) error {
	records := t.Records
	if records == nil {
		records = []catalog.TreatmentRecord{}
	}

	envelope := JSONEnvelope{
		Scenario:   t.Scenario,
		Treatments: records,
		Metadata: JSONMetadata{
			ReportID:    f.reportID(),
			TotalCount:  len(records),
			GeneratedAt: f.now().UTC().Format("2006-01-02T15:04:05Z"),
			Disclaimer:  catalog.Disclaimer,
		},
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

func (f *JSONFormatter) now() time.Time {
	if f.nowFunc != nil {
		return f.nowFunc()
	}
	return time.Now()
}

func (f *JSONFormatter) reportID() string {
	if f.idFunc != nil {
		return f.idFunc()
	}
	return uuid.NewString()
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// Non-file writers (HTTP responses, buffers) get pretty output.
	return false
}
