package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Reader converts a tabular file into a record table.
type Reader interface {
	Read(r io.Reader) (*model.Table, error)
	Format() string
}

// Registry holds readers keyed by format.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with the CSV and XLSX readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSXReader{})
	return r
}

// FormatOf returns the format implied by a file name's extension.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Load reads the table at path using the reader registered for its extension.
func (r *Registry) Load(path string) (*model.Table, error) {
	format := FormatOf(path)
	rd := r.Get(format)
	if rd == nil {
		return nil, fmt.Errorf("no reader for %q files (%s)", format, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// Load reads the table at path with the default registry.
func Load(path string) (*model.Table, error) {
	return DefaultRegistry().Load(path)
}

// buildTable turns a header and data rows into a table. Rows must already
// have len(header) cells.
func buildTable(header []string, rows [][]string) (*model.Table, error) {
	cols := make([]model.Column, len(header))
	for c, name := range header {
		cells := make([]string, len(rows))
		for r, row := range rows {
			cells[r] = row[c]
		}
		cols[c] = model.NewColumn(name, cells)
	}
	return model.NewTable(cols...)
}
