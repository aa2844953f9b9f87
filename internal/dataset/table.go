package dataset

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is returned when a table lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Table is an ordered set of string records sharing one header.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable creates an empty table with the given header.
func NewTable(header ...string) *Table {
	return &Table{Header: append([]string(nil), header...)}
}

// Append adds a row. The row must have one field per header column.
func (t *Table) Append(row ...string) error {
	if len(row) != len(t.Header) {
		return fmt.Errorf("row has %d fields, header has %d", len(row), len(t.Header))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Columns returns the positions of the named columns in header order of
// names. Columns not present yield an error wrapping ErrMissingColumn.
func (t *Table) Columns(names ...string) ([]int, error) {
	pos := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		pos[h] = i
	}

	idx := make([]int, len(names))
	for i, name := range names {
		p, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		idx[i] = p
	}
	return idx, nil
}
