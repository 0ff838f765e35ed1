package plot

import (
	"math"

	"github.com/tdewolff/canvas"
)

// DefaultLineWidth is the stroke width in pixels of lines without a bound stroke-width channel.
const DefaultLineWidth = 2.0

// Line draws one connected, stroked path per dataset through the scaled x/y positions in data order. The reset phase flattens the path onto the scaled baseline so the main phase animates it up into place. The baseline itself is exposed as the y0 property channel; it is a baseline-only channel and never widens the y domain beyond the data.
type Line struct {
	// Baseline is the y domain value the reset phase flattens to and the y0 channel reports.
	Baseline float64
}

// NewLine returns a line geometry with a zero baseline.
func NewLine() *Line {
	return &Line{}
}

// Position returns the scaled x/y position of one datum.
func (g *Line) Position(p *Plot, d Datum, i int, ds *Dataset) Point {
	return p.positionPoint(d, i, ds)
}

// DrawSteps returns the reset and main phases: the reset phase replaces y with the scaled baseline, the main phase restores the bound y.
func (g *Line) DrawSteps(p *Plot) []DrawStep {
	main := p.ValueFunctions()
	// a line is stroked, never filled; without this the open path would be painted as a closed polygon
	if _, ok := main[ChannelFill]; !ok {
		main[ChannelFill] = constantValueFunc(canvas.Transparent)
	}
	if _, ok := main[ChannelStroke]; !ok {
		main[ChannelStroke] = constantValueFunc(canvas.Black)
	}
	if _, ok := main[ChannelStrokeWidth]; !ok {
		main[ChannelStrokeWidth] = constantValueFunc(DefaultLineWidth)
	}
	reset := make(map[string]ValueFunc, len(main))
	for name, fn := range main {
		reset[name] = fn
	}
	reset[ChannelY] = constantValueFunc(g.scaledBaseline(p))
	return []DrawStep{
		{ValueFuncs: reset, Animator: p.AnimatorFor(AnimatorReset)},
		{ValueFuncs: main, Animator: p.AnimatorFor(AnimatorMain)},
	}
}

// scaledBaseline returns the baseline in pixels, through the y scale when one is bound.
func (g *Line) scaledBaseline(p *Plot) float64 {
	if b, ok := p.PropertyBinding(ChannelY); ok && b.Scale != nil {
		return toFloat(b.Scale.Scale(g.Baseline))
	}
	return g.Baseline
}

// PropertyFilter excludes every data point from the y0 channel's extent: the baseline is not data and must not stretch a shared y scale's domain.
func (g *Line) PropertyFilter(channel string) DatumFilter {
	if channel == ChannelY0 {
		return func(Datum, int, *Dataset) bool {
			return false
		}
	}
	return nil
}

// Shape returns the connected path renderer.
func (g *Line) Shape() ShapeRenderer {
	return lineShape{}
}

type lineShape struct{}

func (lineShape) WholeDataset() bool {
	return true
}

// Path builds the connected path through all finite positions, or nil when fewer than two remain.
func (lineShape) Path(vals []map[string]Value) *canvas.Path {
	path := &canvas.Path{}
	n := 0
	for _, m := range vals {
		x, y := toFloat(m[ChannelX]), toFloat(m[ChannelY])
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		if n == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
		n++
	}
	if n < 2 {
		return nil
	}
	return path
}
