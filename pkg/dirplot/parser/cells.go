package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// CellError reports a cell that could not be read as a number.
type CellError struct {
	// Row is the 1-based row in the source file.
	Row int
	// Col is the 1-based column in the source file.
	Col int
	// Value is the raw cell text.
	Value string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %d: %q is not a number", e.Row, e.Col, e.Value)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// parseValue parses a cell as a float64.
// Surrounding whitespace is ignored; anything else non-numeric is an error.
func parseValue(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseRows converts raw string records into numeric rows.
// rowOffset is added to reported row numbers so errors point at the source line.
func parseRows(records [][]string, rowOffset int) ([][]float64, error) {
	rows := make([][]float64, 0, len(records))
	for rowIdx, record := range records {
		row := make([]float64, len(record))
		for colIdx, cell := range record {
			v, err := parseValue(cell)
			if err != nil {
				return nil, &CellError{
					Row:   rowIdx + 1 + rowOffset,
					Col:   colIdx + 1,
					Value: cell,
					Err:   err,
				}
			}
			row[colIdx] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
