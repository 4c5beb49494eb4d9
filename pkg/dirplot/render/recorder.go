package render

// SavedFigure is a figure captured by a Recorder together with the path it
// would have been written to.
type SavedFigure struct {
	Figure
	Path string
}

// Recorder is a PlotRenderer that keeps figures in memory instead of writing
// them. It is useful for dry runs and tests.
type Recorder struct {
	// Saved holds every figure passed to Save, in order.
	Saved   []SavedFigure
	current *Figure
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Begin() {
	r.current = &Figure{}
}

func (r *Recorder) figure() *Figure {
	if r.current == nil {
		r.Begin()
	}
	return r.current
}

func (r *Recorder) PlotLine(angles, radii []float64) error {
	line, err := newLine(angles, radii)
	if err != nil {
		return err
	}
	fig := r.figure()
	fig.Lines = append(fig.Lines, line)
	return nil
}

func (r *Recorder) SetGrid(on bool) {
	r.figure().Grid = on
}

func (r *Recorder) SetRadialLabelAngle(deg float64) {
	r.figure().RadialLabelAngle = deg
}

func (r *Recorder) Save(path string) error {
	fig := r.figure()
	if len(fig.Lines) == 0 {
		return ErrNoData
	}
	r.Saved = append(r.Saved, SavedFigure{Figure: *fig, Path: path})
	r.current = nil
	return nil
}

// Last returns the most recently saved figure, or nil.
func (r *Recorder) Last() *SavedFigure {
	if len(r.Saved) == 0 {
		return nil
	}
	return &r.Saved[len(r.Saved)-1]
}
