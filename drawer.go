package plot

import (
	"image/color"
	"time"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// Standard channel names. Channels x and y are positional; geometries may define further channels such as y0 for baselines.
const (
	ChannelX           = "x"
	ChannelY           = "y"
	ChannelY0          = "y0"
	ChannelSize        = "size"
	ChannelFill        = "fill"
	ChannelStroke      = "stroke"
	ChannelStrokeWidth = "stroke-width"
)

// RendererMode selects the rendering backend of a plot.
type RendererMode int

const (
	// RendererVector retains one drawn node per element and flushes them to a canvas context.
	RendererVector RendererMode = iota

	// RendererRaster paints immediately onto the surface's raster image and retains no per-element handles.
	RendererRaster
)

// DrawStep is one phase of a paint: finalized per-channel value functions paired with the animator driving the phase.
type DrawStep struct {
	ValueFuncs map[string]ValueFunc
	Animator   Animator
}

// applyStep evaluates a step's value functions for every datum, returning one value map per datum.
func applyStep(step DrawStep, data []Datum, ds *Dataset) []map[string]Value {
	vals := make([]map[string]Value, len(data))
	for i, d := range data {
		m := make(map[string]Value, len(step.ValueFuncs))
		for name, fn := range step.ValueFuncs {
			m[name] = fn(d, i, ds)
		}
		vals[i] = m
	}
	return vals
}

////////////////////////////////////////////////////////////////

// Node is one retained drawn element on the vector backend. Animators write the final channel values into Attrs; the resolved style fields are what the flush to a canvas context uses.
type Node struct {
	Path        *canvas.Path
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
	Attrs       map[string]Value
}

func newNode() *Node {
	return &Node{Fill: canvas.Black}
}

// apply stores the final channel values and resolves the common style channels.
func (n *Node) apply(vals map[string]Value) {
	n.Attrs = vals
	if c, ok := vals[ChannelFill].(color.Color); ok {
		n.Fill = c
	}
	if c, ok := vals[ChannelStroke].(color.Color); ok {
		n.Stroke = c
	}
	if v, ok := vals[ChannelStrokeWidth]; ok {
		n.StrokeWidth = toFloat(v)
	}
}

////////////////////////////////////////////////////////////////

// ShapeRenderer builds the drawn paths of one geometry from finalized channel values.
type ShapeRenderer interface {
	// WholeDataset reports whether a single drawn element covers the whole dataset, as for lines and areas.
	WholeDataset() bool

	// Path builds the path for one drawn element. Whole-dataset shapes receive one value map per datum; per-datum shapes receive a single map. A nil path draws nothing.
	Path(vals []map[string]Value) *canvas.Path
}

// Drawer paints one dataset's elements for one plot. Every (plot, dataset) pair owns exactly one drawer; it holds the backend resources for that dataset's drawn elements and is removed when the dataset is detached.
type Drawer struct {
	dataset *Dataset
	shape   ShapeRenderer
	mode    RendererMode
	surface *Surface
	nodes   []*Node
}

func newDrawer(ds *Dataset, shape ShapeRenderer) *Drawer {
	return &Drawer{dataset: ds, shape: shape}
}

// Dataset returns the dataset this drawer paints.
func (d *Drawer) Dataset() *Dataset {
	return d.dataset
}

// UseVectorSurface switches the drawer to the retained vector backend.
func (d *Drawer) UseVectorSurface() {
	d.mode = RendererVector
	d.surface = nil
}

// UseRasterSurface switches the drawer to paint immediately onto the surface's raster image.
func (d *Drawer) UseRasterSurface(s *Surface) {
	d.mode = RendererRaster
	d.surface = s
	d.nodes = nil
}

// Draw applies each step's value functions to the data and paints. Data must already be filtered to drawable points; the element at index i corresponds to valid datum index i. It returns the summed duration of all step transitions.
func (d *Drawer) Draw(data []Datum, steps []DrawStep) time.Duration {
	total := time.Duration(0)
	for _, step := range steps {
		vals := applyStep(step, data, d.dataset)
		if step.Animator == nil {
			step.Animator = Instant{}
		}
		if d.shape == nil {
			// bare plot without a geometry retains value-only nodes
			d.ensureNodes(len(vals))
			total += step.Animator.Animate(d.nodes, vals)
		} else if d.shape.WholeDataset() {
			d.ensureNodes(1)
			d.nodes[0].Path = d.shape.Path(vals)
			if 0 < len(vals) {
				total += step.Animator.Animate(d.nodes, vals[:1])
			}
		} else {
			d.ensureNodes(len(vals))
			for i := range vals {
				d.nodes[i].Path = d.shape.Path(vals[i : i+1])
			}
			total += step.Animator.Animate(d.nodes, vals)
		}
	}
	if d.mode == RendererRaster {
		d.rasterize()
	}
	return total
}

func (d *Drawer) ensureNodes(n int) {
	for len(d.nodes) < n {
		d.nodes = append(d.nodes, newNode())
	}
	d.nodes = d.nodes[:n]
}

// Nodes returns the retained drawn elements. On the raster backend there are none; a warning is logged and the result is empty.
func (d *Drawer) Nodes() []*Node {
	if d.mode == RendererRaster {
		Warning.Println("node queries are not supported on the raster backend")
		return []*Node{}
	}
	return d.nodes
}

// NodeAt returns the drawn element at valid datum index i, or nil if it does not exist.
func (d *Drawer) NodeAt(i int) *Node {
	if d.mode == RendererRaster || i < 0 || len(d.nodes) <= i {
		return nil
	}
	return d.nodes[i]
}

// Remove releases the drawer's backend resources.
func (d *Drawer) Remove() {
	d.nodes = nil
	d.surface = nil
}

// renderTo flushes the retained nodes to a canvas context.
func (d *Drawer) renderTo(ctx *canvas.Context) {
	for _, n := range d.nodes {
		if n.Path == nil {
			continue
		}
		ctx.Push()
		if n.Fill != nil {
			ctx.SetFillColor(n.Fill)
		}
		if n.Stroke != nil && 0.0 < n.StrokeWidth {
			ctx.SetStrokeColor(n.Stroke)
			ctx.SetStrokeWidth(n.StrokeWidth)
		}
		ctx.DrawPath(0.0, 0.0, n.Path)
		ctx.Pop()
	}
}

// rasterize paints the nodes immediately onto the surface's raster image. A missing or zero-sized raster context skips the paint with a diagnostic instead of failing.
func (d *Drawer) rasterize() {
	if d.surface == nil || !d.surface.hasRaster() {
		Warning.Println("no raster context available, skipping paint")
		return
	}
	ras := rasterizer.FromImage(d.surface.img, d.surface.resolution, canvas.DefaultColorSpace)
	for _, n := range d.nodes {
		if n.Path == nil {
			continue
		}
		style := canvas.DefaultStyle
		if n.Fill != nil {
			style.Fill.Color = toRGBA(n.Fill)
		}
		if n.Stroke != nil && 0.0 < n.StrokeWidth {
			style.Stroke.Color = toRGBA(n.Stroke)
			style.StrokeWidth = n.StrokeWidth
		}
		ras.RenderPath(n.Path, style, canvas.Identity)
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
