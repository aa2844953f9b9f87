package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Delimiter separates fields in a flat file.
const Delimiter = '|'

// ErrEmptyFile is returned when a flat file has no header row.
var ErrEmptyFile = errors.New("flat file has no header")

// ReadFlat decodes a pipe-delimited flat file. The first row is the header;
// every following row must have the same number of fields.
func ReadFlat(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := NewTable(header...)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteFlat encodes t as a pipe-delimited flat file with a header row.
func WriteFlat(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}
