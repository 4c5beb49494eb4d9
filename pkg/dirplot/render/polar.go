package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// spokeStep is the angular spacing of grid spokes and their labels, in degrees.
const spokeStep = 45

// lineColor matches the first colour of the usual scientific plotting cycle.
var lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// polarChart is a plot.Plotter drawing a Figure in polar coordinates inside
// the data area of a plot with hidden cartesian axes.
type polarChart struct {
	fig Figure

	LineStyle  draw.LineStyle
	GridStyle  draw.LineStyle
	FrameStyle draw.LineStyle
	Label      draw.TextStyle
}

func newPolarChart(fig Figure) *polarChart {
	line := plotter.DefaultLineStyle
	line.Color = lineColor
	line.Width = vg.Points(1.5)

	return &polarChart{
		fig:        fig,
		LineStyle:  line,
		GridStyle:  plotter.DefaultGridLineStyle,
		FrameStyle: plotter.DefaultLineStyle,
		Label: draw.TextStyle{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, vg.Points(9)),
			Handler: plot.DefaultTextHandler,
			XAlign:  draw.XCenter,
			YAlign:  draw.YCenter,
		},
	}
}

// DataRange keeps the hidden cartesian axes at a fixed, symmetric range.
func (pc *polarChart) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

// radialRange returns the radius interval mapped onto the chart, from
// min(0, smallest radius) to the largest radius. Non-finite radii are ignored.
func (pc *polarChart) radialRange() (lo, hi float64) {
	lo, hi = 0, math.Inf(-1)
	for _, l := range pc.fig.Lines {
		for _, r := range l.Radii {
			if math.IsNaN(r) || math.IsInf(r, 0) {
				continue
			}
			lo = math.Min(lo, r)
			hi = math.Max(hi, r)
		}
	}
	if math.IsInf(hi, -1) || !(hi > lo) {
		// Widen relative to magnitude; lo+1 is lost to rounding for |lo| > 2^53.
		hi = lo + math.Max(1, math.Abs(lo))
	}
	return lo, hi
}

// radialTicks returns the labelled ticks strictly inside (lo, hi].
func radialTicks(lo, hi float64) []plot.Tick {
	if !(hi > lo) || math.IsInf(hi-lo, 0) {
		return nil
	}
	var ticks []plot.Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.IsMinor() || t.Value <= lo || t.Value > hi {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// Plot implements plot.Plotter.
func (pc *polarChart) Plot(c draw.Canvas, _ *plot.Plot) {
	lo, hi := pc.radialRange()

	center := vg.Point{
		X: (c.Min.X + c.Max.X) / 2,
		Y: (c.Min.Y + c.Max.Y) / 2,
	}
	pad := 2.5 * pc.Label.Font.Size
	radius := vg.Length(math.Min(float64(c.Max.X-c.Min.X), float64(c.Max.Y-c.Min.Y)))/2 - pad
	if radius <= 0 {
		return
	}

	at := func(theta, r float64) vg.Point {
		d := radius * vg.Length((r-lo)/(hi-lo))
		return vg.Point{
			X: center.X + d*vg.Length(math.Cos(theta)),
			Y: center.Y + d*vg.Length(math.Sin(theta)),
		}
	}

	ticks := radialTicks(lo, hi)

	if pc.fig.Grid {
		for _, t := range ticks {
			pc.ring(c, pc.GridStyle, center, radius*vg.Length((t.Value-lo)/(hi-lo)))
		}
		for deg := 0; deg < 360; deg += spokeStep {
			end := at(float64(deg)*math.Pi/180, hi)
			c.StrokeLine2(pc.GridStyle, center.X, center.Y, end.X, end.Y)
		}
	}
	pc.ring(c, pc.FrameStyle, center, radius)

	for deg := 0; deg < 360; deg += spokeStep {
		theta := float64(deg) * math.Pi / 180
		pos := vg.Point{
			X: center.X + (radius+pad/2)*vg.Length(math.Cos(theta)),
			Y: center.Y + (radius+pad/2)*vg.Length(math.Sin(theta)),
		}
		c.FillText(pc.Label, pos, fmt.Sprintf("%d°", deg))
	}

	labelTheta := pc.fig.RadialLabelAngle * math.Pi / 180
	radial := pc.Label
	radial.XAlign = draw.XLeft
	radial.YAlign = draw.YBottom
	for _, t := range ticks {
		c.FillText(radial, at(labelTheta, t.Value), t.Label)
	}

	for _, l := range pc.fig.Lines {
		c.StrokeLines(pc.LineStyle, segments(l, at)...)
	}
}

// ring strokes a circle of radius r around center.
func (pc *polarChart) ring(c draw.Canvas, sty draw.LineStyle, center vg.Point, r vg.Length) {
	if r <= 0 {
		return
	}
	var p vg.Path
	p.Move(vg.Point{X: center.X + r, Y: center.Y})
	p.Arc(center, r, 0, 2*math.Pi)
	p.Close()

	c.SetLineStyle(sty)
	c.Stroke(p)
}

// segments converts a polar line into canvas polylines, breaking it wherever
// a radius is not finite.
func segments(l Line, at func(theta, r float64) vg.Point) [][]vg.Point {
	var out [][]vg.Point
	var cur []vg.Point
	for i, r := range l.Radii {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, at(l.Angles[i], r))
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
