package models

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AngularSamples holds azimuth positions in radians.
type AngularSamples []float64

// NewAngularSamples returns n angles evenly spaced over the closed interval
// [0, 2π]. A single sample sits at 0.
func NewAngularSamples(n int) AngularSamples {
	switch {
	case n <= 0:
		return AngularSamples{}
	case n == 1:
		return AngularSamples{0}
	}
	return floats.Span(make([]float64, n), 0, 2*math.Pi)
}

// PlaneSlice is a single horizontal cut through a directivity table.
type PlaneSlice struct {
	// Index is the zero-based row the slice was taken from.
	Index int
	// Values holds one radius per azimuth sample.
	Values []float64
}

// Len returns the number of samples in the slice.
func (s PlaneSlice) Len() int {
	return len(s.Values)
}
