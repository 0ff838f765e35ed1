package plot

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestLinePath(t *testing.T) {
	vals := []map[string]Value{
		{ChannelX: 0.0, ChannelY: 0.0},
		{ChannelX: 1.0, ChannelY: math.NaN()},
		{ChannelX: 2.0, ChannelY: 2.0},
	}
	path := lineShape{}.Path(vals)
	test.That(t, path != nil)
	b := path.Bounds()
	test.Float(t, b.W(), 2.0) // the non-finite point is skipped, not drawn at zero

	// fewer than two finite points draw nothing
	test.That(t, lineShape{}.Path(vals[:1]) == nil)
	test.That(t, lineShape{}.Path(nil) == nil)
}

func TestLineWholeDataset(t *testing.T) {
	sched := &manualScheduler{}
	p := New(NewLine()).SetScheduler(sched)
	p.BindProperty(ChannelX, field("x"), nil)
	p.BindProperty(ChannelY, field("y"), nil)
	ds := NewDataset(record{"x": 0.0, "y": 0.0}, record{"x": 5.0, "y": 5.0}, record{"x": 10.0, "y": 0.0})
	p.AddDataset(ds)
	p.Anchor(NewSurface(20.0, 20.0))
	sched.run()

	nodes := p.drawers[ds].Nodes()
	test.T(t, len(nodes), 1)
	test.That(t, nodes[0].Path != nil)
	test.Float(t, nodes[0].StrokeWidth, DefaultLineWidth)
	_, _, _, a := nodes[0].Fill.RGBA()
	test.T(t, a, uint32(0)) // stroked, never filled

	// every datum resolves to the shared drawn element
	entities := p.Entities()
	test.T(t, len(entities), 3)
	for _, e := range entities {
		test.That(t, e.Node == nodes[0])
	}
}

func TestLineRasterFill(t *testing.T) {
	sched := &manualScheduler{}
	p := New(NewLine()).SetScheduler(sched)
	p.BindProperty(ChannelX, field("x"), nil)
	p.BindProperty(ChannelY, field("y"), nil)
	p.AddDataset(NewDataset(record{"x": 2.0, "y": 2.0}, record{"x": 10.0, "y": 10.0}, record{"x": 18.0, "y": 2.0}))
	surface := NewSurface(20.0, 20.0)
	p.Anchor(surface)
	p.SetRenderer(RendererRaster)
	sched.run()

	img := surface.Image()
	// the stroke paints
	test.That(t, img.RGBAAt(6, 14).A != 0)
	// the hull under the open path stays unpainted
	test.T(t, img.RGBAAt(10, 16).A, uint8(0))
}

func TestLineResetStep(t *testing.T) {
	p := New(NewLine()).SetScheduler(&manualScheduler{})
	s := NewLinear().SetDomain(0.0, 10.0).SetRange(0.0, 100.0)
	p.BindProperty(ChannelX, field("x"), nil)
	p.BindProperty(ChannelY, field("y"), s)
	g := p.Geometry().(*Line)
	g.Baseline = 5.0

	steps := g.DrawSteps(p)
	test.T(t, len(steps), 2)
	d := record{"x": 1.0, "y": 2.0}
	test.Float(t, toFloat(steps[0].ValueFuncs[ChannelY](d, 0, nil)), 50.0) // baseline through the y scale
	test.Float(t, toFloat(steps[1].ValueFuncs[ChannelY](d, 0, nil)), 20.0)
}

func TestLineBaselineExcludedFromExtent(t *testing.T) {
	sched := &manualScheduler{}
	p := New(NewLine()).SetScheduler(sched)
	s := NewLinear()
	p.BindProperty(ChannelX, field("x"), nil)
	p.BindProperty(ChannelY, field("y"), s)
	p.BindProperty(ChannelY0, Constant(-100.0), s)
	p.AddDataset(NewDataset(record{"x": 0.0, "y": 1.0}, record{"x": 1.0, "y": 5.0}))
	p.Anchor(NewSurface(10.0, 10.0))

	ext := p.Extent(ChannelY0)
	test.T(t, len(ext), 1)
	test.T(t, len(ext[0]), 0)

	// the baseline never widens the shared y domain
	min, max := s.Domain()
	test.Float(t, min, 1.0)
	test.Float(t, max, 5.0)
}
