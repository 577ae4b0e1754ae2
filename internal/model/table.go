package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Column is one named column of the record table.
type Column struct {
	Name    string
	Values  []decimal.Decimal // populated when Numeric
	Text    []string          // raw cells as read
	Numeric bool
}

// NewColumn builds a column from raw cells. The column is numeric only if
// every cell, with surrounding spaces trimmed, parses as a decimal.
func NewColumn(name string, cells []string) Column {
	col := Column{Name: name, Text: cells, Numeric: true}
	values := make([]decimal.Decimal, len(cells))
	for i, c := range cells {
		v, err := decimal.NewFromString(strings.TrimSpace(c))
		if err != nil {
			col.Numeric = false
			values = nil
			break
		}
		values[i] = v
	}
	col.Values = values
	return col
}

// NewNumericColumn builds a numeric column from values.
func NewNumericColumn(name string, values ...decimal.Decimal) Column {
	text := make([]string, len(values))
	for i, v := range values {
		text[i] = v.String()
	}
	return Column{Name: name, Values: values, Text: text, Numeric: true}
}

// Len returns the number of cells in the column.
func (c Column) Len() int {
	return len(c.Text)
}

// Table is the record table: ordered rows over fixed named columns.
// It is stored column-major and treated as read-only once built.
type Table struct {
	columns []Column
	byName  map[string]int
	rows    int
}

// NewTable creates a Table from columns of equal length.
func NewTable(cols ...Column) (*Table, error) {
	t := &Table{byName: make(map[string]int, len(cols))}
	for i, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i+1)
		}
		if _, dup := t.byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.Name, c.Len(), t.rows)
		}
		t.byName[c.Name] = i
		t.columns = append(t.columns, c)
	}
	return t, nil
}

// FromRecords builds a numeric table from row maps. Every record must carry
// every column.
func FromRecords(columns []string, records []map[string]decimal.Decimal) (*Table, error) {
	cols := make([]Column, len(columns))
	for i, name := range columns {
		values := make([]decimal.Decimal, len(records))
		for r, rec := range records {
			v, ok := rec[name]
			if !ok {
				return nil, fmt.Errorf("row %d: missing column %q", r+1, name)
			}
			values[r] = v
		}
		cols[i] = NewNumericColumn(name, values...)
	}
	return NewTable(cols...)
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return t.rows
}

// Columns returns the column names in declaration order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the table declares a column.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Column returns a column by name.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// Numeric returns the values of a numeric column.
func (t *Table) Numeric(name string) ([]decimal.Decimal, error) {
	c, ok := t.Column(name)
	if !ok {
		return nil, &UnknownColumnError{Column: name}
	}
	if !c.Numeric {
		return nil, &NonNumericColumnError{Column: name}
	}
	return c.Values, nil
}

// Row returns the numeric cells of row i keyed by column name.
// Text columns are omitted.
func (t *Table) Row(i int) map[string]decimal.Decimal {
	row := make(map[string]decimal.Decimal, len(t.columns))
	for _, c := range t.columns {
		if c.Numeric {
			row[c.Name] = c.Values[i]
		}
	}
	return row
}
