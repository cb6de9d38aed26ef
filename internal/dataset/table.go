package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Row maps a column name to its raw cell text.
type Row map[string]string

// Get returns the trimmed cell for column, or "" when absent.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Table is an in-memory tabular dataset with an ordered header.
type Table struct {
	Header []string
	Rows   []Row
}

// NewTable creates an empty table with the given header.
func NewTable(header []string) *Table {
	return &Table{Header: append([]string(nil), header...)}
}

// Count returns the number of rows.
func (t *Table) Count() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// All returns every row in dataset order.
func (t *Table) All() []Row {
	if t == nil {
		return nil
	}
	return t.Rows
}

// Matching returns the rows for which pred is true, in dataset order.
func (t *Table) Matching(pred func(Row) bool) []Row {
	if t == nil {
		return nil
	}
	var out []Row
	for _, row := range t.Rows {
		if pred(row) {
			out = append(out, row)
		}
	}
	return out
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// Column returns the trimmed cells of one column in dataset order.
func (t *Table) Column(name string) []string {
	if !t.HasColumn(name) {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row.Get(name))
	}
	return values
}

// AddColumn appends a column whose cells are derived from each row.
// It returns false and leaves the table untouched if the column already exists.
func (t *Table) AddColumn(name string, derive func(Row) string) bool {
	if t.HasColumn(name) {
		return false
	}
	t.Header = append(t.Header, name)
	for _, row := range t.Rows {
		row[name] = derive(row)
	}
	return true
}

// Records renders the table as header plus rows, the shape CSV and XLSX writers take.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, append([]string(nil), t.Header...))
	for _, row := range t.Rows {
		rec := make([]string, len(t.Header))
		for i, col := range t.Header {
			rec[i] = row[col]
		}
		records = append(records, rec)
	}
	return records
}

// tableFromRecords builds a table from raw records whose first entry is the header.
// Short rows are padded, blank rows are skipped.
func tableFromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return NewTable(nil), nil
	}

	header := make([]string, len(records[0]))
	seen := make(map[string]bool, len(header))
	for i, h := range records[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			return nil, fmt.Errorf("header column %d is empty", i+1)
		}
		if seen[h] {
			return nil, fmt.Errorf("duplicate header column %q", h)
		}
		seen[h] = true
		header[i] = h
	}

	table := NewTable(header)
	for lineNo, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		if len(rec) > len(header) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", lineNo+2, len(rec), len(header))
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Scalar types a raw cell: integers become int64, decimals float64, anything else stays a string.
func Scalar(cell string) any {
	s := strings.TrimSpace(cell)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
