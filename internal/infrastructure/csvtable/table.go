// Package csvtable reads the semicolon-delimited tables written by the
// simulation program: one header row followed by data rows whose numbers
// use a comma as decimal separator.
package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Delimiter separates fields in every table the program writes.
const Delimiter = ';'

// ErrNoHeader is returned when the input does not contain a header row.
var ErrNoHeader = errors.New("table has no header row")

const utf8BOM = "\ufeff"

// Table is a parsed file. Every row has exactly len(Header) fields.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read parses a whole table from r.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = 0
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	table := &Table{Header: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+1, err)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// ReadFile opens, parses and closes the file at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Column returns the index of the header field equal to label after
// trimming whitespace, or -1.
func (t *Table) Column(label string) int {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == label {
			return i
		}
	}
	return -1
}

// Float parses the cell at (row, col) with ParseDecimal. The error names
// the cell.
func (t *Table) Float(row, col int) (float64, error) {
	v, err := ParseDecimal(t.Rows[row][col])
	if err != nil {
		return 0, fmt.Errorf("row %d, column %q: %w", row+1, strings.TrimSpace(t.Header[col]), err)
	}
	return v, nil
}
