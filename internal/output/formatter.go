// Package output defines the Formatter interface for writing comparison
// tables in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/davetashner/neurogen/internal/catalog"
)

// Formatter writes a comparison table to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "table", "json", "pdf").
	Name() string

	// Format writes the table to w.
	Format(t catalog.ComparisonTable, w io.Writer) error
}

// BinaryFormatter marks formats whose output is not text (e.g., pdf).
// Text-only consumers such as MCP tools reject them.
type BinaryFormatter interface {
	Formatter
	ContentType() string
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// IsBinary reports whether f produces non-text output.
func IsBinary(f Formatter) bool {
	_, ok := f.(BinaryFormatter)
	return ok
}

// Names returns the registered format names in sorted order.
func Names() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return sortedNames()
}

// resetFmtForTesting clears the formatter registry. Only for use in tests.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

func sortedNames() []string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatNames returns a comma-separated sorted list of registered format names.
// Callers must hold fmtMu.
func formatNames() string {
	return strings.Join(sortedNames(), ", ")
}
