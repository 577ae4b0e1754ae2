package loader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// XLSXReader reads the first sheet of an Excel workbook. The first row names
// the columns.
type XLSXReader struct{}

// Format returns the reader name.
func (XLSXReader) Format() string { return "xlsx" }

// Read parses the workbook and returns the table.
func (XLSXReader) Read(r io.Reader) (*model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return model.NewTable()
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return model.NewTable()
	}

	header := rows[0]
	data := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		// GetRows drops trailing empty cells.
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d: %d cells, header has %d", i+2, len(row), len(header))
		}
		padded := make([]string, len(header))
		copy(padded, row)
		data = append(data, padded)
	}
	return buildTable(header, data)
}
