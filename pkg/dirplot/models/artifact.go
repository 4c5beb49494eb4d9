package models

// PlotArtifact describes a rendered polar plot written to disk.
type PlotArtifact struct {
	// Source is the input file path.
	Source string
	// Output is the written PDF path.
	Output string
	// Row is the table row the plotted slice came from.
	Row int
	// Points is the number of (angle, radius) pairs plotted.
	Points int
}
