// Package models defines data structures for directivity plotting.
package models

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyTable indicates a table with no rows or no columns.
var ErrEmptyTable = errors.New("empty table")

// DirectivityTable is a numeric grid loaded from one measurement file.
// Rows are sweep (elevation) steps, columns are azimuth samples.
type DirectivityTable struct {
	// Name is the source file name (no path).
	Name string
	data *mat.Dense
}

// NewDirectivityTable builds a table from row-major values.
// Every row must have the same, non-zero, number of cells.
func NewDirectivityTable(name string, rows [][]float64) (*DirectivityTable, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyTable
	}

	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i+1, len(row), c)
		}
		data = append(data, row...)
	}

	return &DirectivityTable{
		Name: name,
		data: mat.NewDense(len(rows), c, data),
	}, nil
}

// Dims returns the row and column counts.
func (t *DirectivityTable) Dims() (r, c int) {
	return t.data.Dims()
}

// Row returns a copy of row i.
func (t *DirectivityTable) Row(i int) []float64 {
	return mat.Row(nil, i, t.data)
}

// PlaneSlice returns the middle row, at index R/2.
func (t *DirectivityTable) PlaneSlice() PlaneSlice {
	r, _ := t.Dims()
	return PlaneSlice{
		Index:  r / 2,
		Values: t.Row(r / 2),
	}
}

// AngularSamples returns one angle per column, evenly spanning [0, 2π].
func (t *DirectivityTable) AngularSamples() AngularSamples {
	_, c := t.Dims()
	return NewAngularSamples(c)
}
