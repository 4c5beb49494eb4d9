package dirplot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/dirplot-go/pkg/dirplot/models"
	"github.com/ukaji3/dirplot-go/pkg/dirplot/parser"
	"github.com/ukaji3/dirplot-go/pkg/dirplot/render"
	"go.uber.org/zap"
)

// Plotter converts directivity tables into polar plots.
// It processes one file at a time and keeps no state between files.
type Plotter struct {
	opts     Options
	renderer render.PlotRenderer
	logger   *zap.Logger
}

// New creates a Plotter.
func New(opts Options) *Plotter {
	p := &Plotter{
		opts:     opts,
		renderer: opts.Renderer,
		logger:   opts.Logger,
	}
	if p.renderer == nil {
		p.renderer = render.NewPolarRenderer()
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// Run discovers the inputs in dir and processes each in discovery order.
//
// By default the first failure stops the batch and is returned; outputs
// already written are left in place. With ContinueOnError every failure is
// logged and skipped, and the failures are returned joined once the batch
// is done.
func (p *Plotter) Run(dir string) ([]models.PlotArtifact, error) {
	inputs, err := p.DiscoverInputs(dir)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("discovered inputs", zap.String("dir", dir), zap.Int("count", len(inputs)))

	var artifacts []models.PlotArtifact
	var failures []error
	for _, input := range inputs {
		artifact, err := p.Process(input)
		if err != nil {
			if !p.opts.ContinueOnError {
				return artifacts, err
			}
			p.logger.Warn("skipping input", zap.String("path", input), zap.Error(err))
			failures = append(failures, err)
			continue
		}
		artifacts = append(artifacts, *artifact)
	}

	return artifacts, errors.Join(failures...)
}

// Process loads one measurement file, takes its middle row and writes the
// polar plot of that row next to the input. The input is fully parsed
// before anything is written.
func (p *Plotter) Process(path string) (*models.PlotArtifact, error) {
	output, ok := OutputName(path)
	if !ok {
		return nil, NewProcessError(path, ErrUnsupportedInput, fmt.Errorf("expected %s or %s suffix", csvExt, xlsxExt))
	}

	p.logger.Debug("processing", zap.String("path", path))

	table, err := p.load(path)
	if err != nil {
		return nil, NewProcessError(path, ErrParse, err)
	}

	angles := table.AngularSamples()
	slice := table.PlaneSlice()

	p.renderer.Begin()
	if err := p.renderer.PlotLine(angles, slice.Values); err != nil {
		return nil, NewProcessError(path, ErrRender, err)
	}
	p.renderer.SetGrid(true)
	p.renderer.SetRadialLabelAngle(RadialLabelAngle)

	if err := p.renderer.Save(output); err != nil {
		var saveErr *render.SaveError
		if errors.As(err, &saveErr) {
			return nil, NewProcessError(path, ErrWrite, err)
		}
		return nil, NewProcessError(path, ErrRender, err)
	}

	rows, cols := table.Dims()
	p.logger.Debug("rendered",
		zap.String("path", path),
		zap.String("output", output),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int("row", slice.Index))

	return &models.PlotArtifact{
		Source: path,
		Output: output,
		Row:    slice.Index,
		Points: slice.Len(),
	}, nil
}

func (p *Plotter) load(path string) (*models.DirectivityTable, error) {
	opts := parser.LoadOptions{SkipHeader: p.opts.SkipHeader}
	if strings.HasSuffix(path, xlsxExt) {
		return parser.LoadXLSX(path, opts)
	}
	return parser.LoadCSV(path, opts)
}
