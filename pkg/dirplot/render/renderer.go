// Package render draws polar line plots of directivity slices.
package render

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData indicates a plot with no points.
	ErrNoData = errors.New("no data to plot")
	// ErrLengthMismatch indicates angle and radius slices of different lengths.
	ErrLengthMismatch = errors.New("angle and radius lengths differ")
)

// PlotRenderer draws one polar figure at a time and persists it.
// Begin discards any figure in progress.
type PlotRenderer interface {
	Begin()
	PlotLine(angles, radii []float64) error
	SetGrid(on bool)
	SetRadialLabelAngle(deg float64)
	Save(path string) error
}

// SaveError reports a failure to create or write the output file, as opposed
// to a failure to draw the figure.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Line is one polyline in polar coordinates.
type Line struct {
	// Angles are in radians.
	Angles []float64
	Radii  []float64
}

func newLine(angles, radii []float64) (Line, error) {
	if len(angles) != len(radii) {
		return Line{}, fmt.Errorf("%w: %d angles, %d radii", ErrLengthMismatch, len(angles), len(radii))
	}
	if len(angles) == 0 {
		return Line{}, ErrNoData
	}
	return Line{
		Angles: append([]float64(nil), angles...),
		Radii:  append([]float64(nil), radii...),
	}, nil
}

// Figure is the renderer-independent description of a polar plot.
type Figure struct {
	Lines []Line
	// Grid enables radial rings and angular spokes.
	Grid bool
	// RadialLabelAngle is the spoke, in degrees, carrying radius tick labels.
	RadialLabelAngle float64
}

// Points returns the total number of plotted points.
func (f *Figure) Points() int {
	n := 0
	for _, l := range f.Lines {
		n += len(l.Angles)
	}
	return n
}
