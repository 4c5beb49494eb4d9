// Package dirplot renders the horizontal-plane slice of directivity
// measurement grids as polar plots, one PDF per input file.
package dirplot

import (
	"github.com/ukaji3/dirplot-go/pkg/dirplot/render"
	"go.uber.org/zap"
)

// RadialLabelAngle is the spoke, in degrees, that carries radius labels.
const RadialLabelAngle = 90

// Options configures a Plotter.
type Options struct {
	// ContinueOnError logs and skips failing files instead of stopping the batch.
	ContinueOnError bool
	// IncludeXLSX also discovers and reads Excel workbooks.
	IncludeXLSX bool
	// SkipHeader treats the first row of each file as a header.
	SkipHeader bool
	// Renderer draws and saves figures.
	// If nil, a PDF renderer backed by gonum/plot is used.
	Renderer render.PlotRenderer
	// Logger receives progress and skipped failures.
	// If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns fail-fast, CSV-only options.
func DefaultOptions() Options {
	return Options{}
}
