package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// CSVReader reads comma-separated files whose first row names the columns.
type CSVReader struct{}

// Format returns the reader name.
func (CSVReader) Format() string { return "csv" }

// Read parses the CSV and returns the table. Every row must have as many
// fields as the header.
func (CSVReader) Read(r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return model.NewTable()
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	// Excel's "CSV UTF-8" export starts with a byte order mark.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	cr.FieldsPerRecord = len(header)

	var rows [][]string
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		rows = append(rows, rec)
	}
	return buildTable(header, rows)
}
