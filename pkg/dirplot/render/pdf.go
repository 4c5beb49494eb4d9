package render

import (
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Default figure size, 6.4in by 4.8in.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// PolarRenderer renders figures to PDF files with gonum/plot.
type PolarRenderer struct {
	// Width and Height set the page size.
	Width  vg.Length
	Height vg.Length

	current *Figure
}

// NewPolarRenderer creates a PolarRenderer with the default page size.
func NewPolarRenderer() *PolarRenderer {
	return &PolarRenderer{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

func (r *PolarRenderer) Begin() {
	r.current = &Figure{}
}

func (r *PolarRenderer) figure() *Figure {
	if r.current == nil {
		r.Begin()
	}
	return r.current
}

func (r *PolarRenderer) PlotLine(angles, radii []float64) error {
	line, err := newLine(angles, radii)
	if err != nil {
		return err
	}
	fig := r.figure()
	fig.Lines = append(fig.Lines, line)
	return nil
}

func (r *PolarRenderer) SetGrid(on bool) {
	r.figure().Grid = on
}

func (r *PolarRenderer) SetRadialLabelAngle(deg float64) {
	r.figure().RadialLabelAngle = deg
}

// Save draws the current figure and writes it as a PDF to path, replacing
// any existing file. The figure is released whether or not saving succeeds.
// I/O failures are returned as *SaveError.
func (r *PolarRenderer) Save(path string) error {
	fig := r.figure()
	r.current = nil
	if len(fig.Lines) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.HideAxes()
	p.Add(newPolarChart(*fig))

	wt, err := p.WriterTo(r.Width, r.Height, "pdf")
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return &SaveError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}
