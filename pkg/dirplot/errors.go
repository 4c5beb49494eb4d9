package dirplot

import (
	"errors"
	"fmt"
)

var (
	// ErrDiscovery indicates the input directory could not be enumerated.
	ErrDiscovery = errors.New("discovery failed")
	// ErrParse indicates an input file is not valid numeric tabular data.
	ErrParse = errors.New("parse failed")
	// ErrRender indicates the plotting backend rejected or failed to draw a figure.
	ErrRender = errors.New("render failed")
	// ErrWrite indicates the output file could not be created or written.
	ErrWrite = errors.New("write failed")
	// ErrUnsupportedInput indicates a file name without a supported suffix.
	ErrUnsupportedInput = errors.New("unsupported input")
)

// ProcessError records which stage failed for which path.
// It matches both its stage sentinel and its cause with errors.Is.
type ProcessError struct {
	Path  string
	Stage error // one of the Err* sentinels above
	Err   error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Stage, e.Err)
}

func (e *ProcessError) Unwrap() []error {
	return []error{e.Stage, e.Err}
}

// NewProcessError creates a new ProcessError.
func NewProcessError(path string, stage, err error) *ProcessError {
	return &ProcessError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
