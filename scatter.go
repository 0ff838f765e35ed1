package plot

import (
	"github.com/tdewolff/canvas"
)

// DefaultSymbolSize is the diameter in pixels of scatter symbols without a bound size channel.
const DefaultSymbolSize = 6.0

// Scatter draws one circle per datum at the scaled x/y position, with an optional size channel for the diameter. Symbols animate in from size zero at their final position.
type Scatter struct{}

// NewScatter returns a scatter geometry.
func NewScatter() *Scatter {
	return &Scatter{}
}

// Position returns the scaled x/y position of one datum.
func (g *Scatter) Position(p *Plot, d Datum, i int, ds *Dataset) Point {
	return p.positionPoint(d, i, ds)
}

// DrawSteps returns the reset and main phases: the reset phase places symbols at their final position with size zero, the main phase grows them to their bound size.
func (g *Scatter) DrawSteps(p *Plot) []DrawStep {
	main := p.ValueFunctions()
	if _, ok := main[ChannelSize]; !ok {
		main[ChannelSize] = constantValueFunc(DefaultSymbolSize)
	}
	reset := make(map[string]ValueFunc, len(main))
	for name, fn := range main {
		reset[name] = fn
	}
	reset[ChannelSize] = constantValueFunc(0.0)
	return []DrawStep{
		{ValueFuncs: reset, Animator: p.AnimatorFor(AnimatorReset)},
		{ValueFuncs: main, Animator: p.AnimatorFor(AnimatorMain)},
	}
}

// Shape returns the circle renderer.
func (g *Scatter) Shape() ShapeRenderer {
	return symbolShape{}
}

type symbolShape struct{}

func (symbolShape) WholeDataset() bool {
	return false
}

// Path builds the circle for one datum, or nil for a non-finite position or size.
func (symbolShape) Path(vals []map[string]Value) *canvas.Path {
	if len(vals) != 1 {
		return nil
	}
	pt := Point{toFloat(vals[0][ChannelX]), toFloat(vals[0][ChannelY])}
	size := toFloat(vals[0][ChannelSize])
	if !pt.IsFinite() || !(0.0 < size) {
		return nil
	}
	return canvas.Circle(size / 2.0).Translate(pt.X, pt.Y)
}
