// Package parser loads directivity tables from measurement files.
package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/dirplot-go/pkg/dirplot/models"
)

// LoadOptions configures how a measurement file is read.
type LoadOptions struct {
	// SkipHeader drops the first row before parsing.
	SkipHeader bool
}

// LoadCSV reads a comma-separated file into a DirectivityTable.
// No header row is assumed unless opts.SkipHeader is set.
func LoadCSV(path string, opts LoadOptions) (*models.DirectivityTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f, filepath.Base(path), opts)
}

// ReadCSV parses CSV data from r. Every record must have the same number of
// fields and every field must be numeric.
func ReadCSV(r io.Reader, name string, opts LoadOptions) (*models.DirectivityTable, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	offset := 0
	if opts.SkipHeader && len(records) > 0 {
		records = records[1:]
		offset = 1
	}

	rows, err := parseRows(records, offset)
	if err != nil {
		return nil, err
	}

	return models.NewDirectivityTable(name, rows)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM drops a leading UTF-8 byte order mark, as written by spreadsheet
// exports.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}
