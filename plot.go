package plot

import (
	"log"
	"os"
	"time"

	"github.com/tdewolff/canvas"
)

// Warning is a logger for conditions that don't prevent a paint but may lead to unexpected results, such as node queries on the raster backend or a paint onto a missing raster context.
var Warning = log.New(os.Stderr, "[plot] ", log.Lshortfile)

// storeInvalidationDelay is the trailing delay that coalesces a burst of scale updates into a single entity-store rebuild.
const storeInvalidationDelay = 200 * time.Millisecond

////////////////////////////////////////////////////////////////

// Geometry supplies the shape-specific parts of a plot: the pixel position per datum, the draw phases, and the path renderer. Geometries may additionally implement propertyFilterer or additionalPainter to hook into extents and the draw cycle.
type Geometry interface {
	// Position returns the pixel position for one datum. Data with non-finite positions are excluded from drawing and entity queries.
	Position(p *Plot, d Datum, i int, ds *Dataset) Point

	// DrawSteps returns the draw phases for one paint.
	DrawSteps(p *Plot) []DrawStep

	// Shape returns the renderer building drawn paths from finalized channel values.
	Shape() ShapeRenderer
}

// propertyFilterer lets a geometry select which data points count towards a property channel's extent, e.g. to exclude a baseline-only channel.
type propertyFilterer interface {
	PropertyFilter(channel string) DatumFilter
}

// additionalPainter lets a geometry paint non-primitive extras such as labels after the main paint, with the longest dispatched animation duration.
type additionalPainter interface {
	AdditionalPaint(p *Plot, t time.Duration)
}

////////////////////////////////////////////////////////////////

type scaleRegistration struct {
	providerID ProviderID
	callbackID CallbackID
	refs       int
}

// extentCell memoizes one channel's per-dataset extents, keyed by the generation counters of its inputs.
type extentCell struct {
	datasetGen uint64
	channelGen uint64
	filterGen  uint64
	extents    [][]Value
	valid      bool
}

// Plot binds datasets to visual channels through scales, derives drawable spatially indexed entities, and orchestrates the two-phase animated draw cycle across the vector and raster backends. A plot owns its binding tables, extent cache, entity store and one drawer per attached dataset; datasets and scales are shared and only registered with for update notifications.
type Plot struct {
	geometry Geometry

	datasets   []*Dataset
	drawers    map[*Dataset]*Drawer
	datasetCBs map[*Dataset]CallbackID

	attrBindings map[string]Binding
	propBindings map[string]Binding
	scaleRegs    map[Scale]*scaleRegistration

	surface   *Surface
	anchored  bool
	destroyed bool
	mode      RendererMode

	animated    bool
	animators   map[string]Animator
	dataChanged bool

	datasetGen  uint64
	filterGen   uint64
	bindingGen  uint64
	channelGens map[string]uint64

	extents         map[string]*extentCell
	valueFuncs      map[string]ValueFunc
	valueFuncsGen   uint64
	valueFuncsValid bool

	store *entityStore

	scheduler         Scheduler
	renderPending     bool
	cancelRender      func()
	storeInvalidation *debouncer
}

// New returns a new plot drawing its data with the given geometry. A nil geometry yields a bare plot that can bind and compute extents but panics on entity queries.
func New(geometry Geometry) *Plot {
	p := &Plot{
		geometry:     geometry,
		drawers:      map[*Dataset]*Drawer{},
		datasetCBs:   map[*Dataset]CallbackID{},
		attrBindings: map[string]Binding{},
		propBindings: map[string]Binding{},
		scaleRegs:    map[Scale]*scaleRegistration{},
		animators: map[string]Animator{
			AnimatorReset: Instant{},
			AnimatorMain:  NewEasing(),
		},
		channelGens: map[string]uint64{},
		extents:     map[string]*extentCell{},
		scheduler:   timerScheduler{},
	}
	p.storeInvalidation = newDebouncer(p.scheduler, storeInvalidationDelay, p.invalidateStore)
	return p
}

// SetScheduler substitutes the scheduler used for deferred renders and the debounced entity-store rebuild.
func (p *Plot) SetScheduler(s Scheduler) *Plot {
	p.scheduler = s
	p.storeInvalidation = newDebouncer(s, storeInvalidationDelay, p.invalidateStore)
	return p
}

// invalidateStore tears the entity store down so the next query rebuilds it. A debounced invalidation firing after destruction or detach is a no-op.
func (p *Plot) invalidateStore() {
	if p.destroyed || !p.anchored {
		return
	}
	p.store = nil
}

// Geometry returns the plot's geometry.
func (p *Plot) Geometry() Geometry {
	return p.geometry
}

// SetGeometry replaces the plot's geometry and invalidates all geometry-derived state.
func (p *Plot) SetGeometry(g Geometry) *Plot {
	p.geometry = g
	p.filterGen++
	p.store = nil
	for _, ds := range p.datasets {
		p.drawers[ds].shape = shapeOf(g)
	}
	p.dataChanged = true
	p.RenderLowPriority()
	return p
}

func shapeOf(g Geometry) ShapeRenderer {
	if g == nil {
		return nil
	}
	return g.Shape()
}

////////////////////////////////////////////////////////////////

// BindAttribute binds a visual channel such as fill or stroke. A non-function value is wrapped as a constant accessor; a nil scale passes values through unscaled. An attribute binding always takes precedence over a property binding of the same name.
func (p *Plot) BindAttribute(name string, value interface{}, scale Scale) *Plot {
	p.bind(p.attrBindings, attrKey(name), name, Binding{Accessor: makeAccessor(value), Scale: scale})
	return p
}

// BindAttributeAs binds a visual channel with full control over accessor, scale and post-scale transform.
func (p *Plot) BindAttributeAs(name string, b Binding) *Plot {
	p.bind(p.attrBindings, attrKey(name), name, b)
	return p
}

// BindProperty binds a plot-semantic channel such as x or y. Properties participate in extent and scale machinery identically to attributes but are layered beneath them when generating value functions.
func (p *Plot) BindProperty(name string, value interface{}, scale Scale) *Plot {
	p.bind(p.propBindings, propKey(name), name, Binding{Accessor: makeAccessor(value), Scale: scale})
	return p
}

// BindPropertyAs binds a plot-semantic channel with full control over accessor, scale and post-scale transform.
func (p *Plot) BindPropertyAs(name string, b Binding) *Plot {
	p.bind(p.propBindings, propKey(name), name, b)
	return p
}

// attrKey and propKey key the extent cells and their generation counters per table, so that an attribute and a property of the same name invalidate independently.
func attrKey(name string) string {
	return "a:" + name
}

func propKey(name string) string {
	return "p:" + name
}

// AttributeBinding returns the binding of an attribute channel.
func (p *Plot) AttributeBinding(name string) (Binding, bool) {
	b, ok := p.attrBindings[name]
	return b, ok
}

// PropertyBinding returns the binding of a property channel.
func (p *Plot) PropertyBinding(name string) (Binding, bool) {
	b, ok := p.propBindings[name]
	return b, ok
}

// bind installs a binding, moving the scale registration when the channel's scale changes so no dangling registration remains on the old scale.
func (p *Plot) bind(table map[string]Binding, key, name string, b Binding) {
	old, had := table[name]
	if !had || old.Scale != b.Scale {
		if had {
			p.releaseScale(old.Scale)
		}
		p.acquireScale(b.Scale)
	}
	table[name] = b
	p.bindingGen++
	p.channelGens[key]++
	p.valueFuncsValid = false
	if positionalChannel(name) {
		p.store = nil
		p.dataChanged = true
	}
	p.updateScales()
	p.RenderLowPriority()
}

// positionalChannel returns true for channels that determine pixel positions.
func positionalChannel(name string) bool {
	return name == ChannelX || name == ChannelY || name == ChannelY0
}

func (p *Plot) acquireScale(s Scale) {
	if s == nil {
		return
	}
	reg := p.scaleRegs[s]
	if reg == nil {
		reg = &scaleRegistration{}
		reg.callbackID = s.OnUpdate(p.onScaleUpdate)
		reg.providerID = s.AddIncludedValuesProvider(p.includedValuesFor(s))
		p.scaleRegs[s] = reg
	}
	reg.refs++
}

func (p *Plot) releaseScale(s Scale) {
	if s == nil {
		return
	}
	reg := p.scaleRegs[s]
	if reg == nil {
		return
	}
	reg.refs--
	if reg.refs <= 0 {
		s.RemoveIncludedValuesProvider(reg.providerID)
		s.OffUpdate(reg.callbackID)
		delete(p.scaleRegs, s)
	}
}

// includedValuesFor returns the provider contributing this plot's bound extents to one scale's automatic domain. A detached plot contributes nothing unless the query forces inclusion.
func (p *Plot) includedValuesFor(s Scale) IncludedValuesProvider {
	return func(force bool) []Value {
		if p.destroyed || (!p.anchored && !force) {
			return nil
		}
		vs := []Value{}
		for name, b := range p.propBindings {
			if b.Scale == s {
				for _, extent := range p.extentsFor(name, b, true) {
					vs = append(vs, extent...)
				}
			}
		}
		for name, b := range p.attrBindings {
			if b.Scale == s {
				for _, extent := range p.extentsFor(name, b, false) {
					vs = append(vs, extent...)
				}
			}
		}
		return vs
	}
}

func (p *Plot) onScaleUpdate(s Scale) {
	if p.destroyed {
		return
	}
	for name, b := range p.propBindings {
		if b.Scale == s && positionalChannel(name) {
			p.dataChanged = true
			break
		}
	}
	p.storeInvalidation.Trigger()
	p.RenderLowPriority()
}

// updateScales re-domains every registered scale in automatic mode. Extent invalidation has already happened synchronously by the time this runs, so scales always see fresh extents.
func (p *Plot) updateScales() {
	for s := range p.scaleRegs {
		if ad, ok := s.(autoDomainer); ok {
			ad.AutoDomainIfAutomatic()
		}
	}
}

////////////////////////////////////////////////////////////////

// Extent returns the memoized per-dataset extents of a bound channel: each attached dataset's (filtered) data mapped through the channel's accessor and the scale's ExtentOfValues. A channel without an accessor or scale yields an empty result. Recomputation happens only when the dataset list, the binding, or the applicable filter changed since the last call.
func (p *Plot) Extent(channel string) [][]Value {
	if b, ok := p.attrBindings[channel]; ok {
		return p.extentsFor(channel, b, false)
	}
	if b, ok := p.propBindings[channel]; ok {
		return p.extentsFor(channel, b, true)
	}
	return [][]Value{}
}

func (p *Plot) extentsFor(channel string, b Binding, isProperty bool) [][]Value {
	if b.Accessor == nil || b.Scale == nil {
		return [][]Value{}
	}
	key := attrKey(channel)
	if isProperty {
		key = propKey(channel)
	}
	cell := p.extents[key]
	if cell == nil {
		cell = &extentCell{}
		p.extents[key] = cell
	}
	if cell.valid && cell.datasetGen == p.datasetGen && cell.channelGen == p.channelGens[key] && cell.filterGen == p.filterGen {
		return cell.extents
	}

	var filter DatumFilter
	if isProperty {
		if pf, ok := p.geometry.(propertyFilterer); ok {
			filter = pf.PropertyFilter(channel)
		}
	}
	extents := make([][]Value, 0, len(p.datasets))
	for _, ds := range p.datasets {
		vs := []Value{}
		for i, d := range ds.Data() {
			if filter == nil || filter(d, i, ds) {
				vs = append(vs, b.Accessor(d, i, ds))
			}
		}
		extents = append(extents, b.Scale.ExtentOfValues(vs))
	}
	cell.datasetGen = p.datasetGen
	cell.channelGen = p.channelGens[key]
	cell.filterGen = p.filterGen
	cell.extents = extents
	cell.valid = true
	return extents
}

// ValueFunctions returns the final per-channel value functions: every bound attribute composed as accessor, scale, post-scale, with property-derived functions merged underneath so an attribute of the same name always wins. The result is memoized until any binding changes; callers receive a shallow copy so mutation cannot corrupt the cache.
func (p *Plot) ValueFunctions() map[string]ValueFunc {
	if !p.valueFuncsValid || p.valueFuncsGen != p.bindingGen {
		m := map[string]ValueFunc{}
		for name, b := range p.propBindings {
			if fn := b.valueFunc(); fn != nil {
				m[name] = fn
			}
		}
		for name, b := range p.attrBindings {
			if fn := b.valueFunc(); fn != nil {
				m[name] = fn
			}
		}
		p.valueFuncs = m
		p.valueFuncsGen = p.bindingGen
		p.valueFuncsValid = true
	}
	vfs := make(map[string]ValueFunc, len(p.valueFuncs))
	for name, fn := range p.valueFuncs {
		vfs[name] = fn
	}
	return vfs
}

// cachedValueFuncs returns the memoized value functions without copying; for per-datum hot paths inside geometries.
func (p *Plot) cachedValueFuncs() map[string]ValueFunc {
	if !p.valueFuncsValid || p.valueFuncsGen != p.bindingGen {
		p.ValueFunctions()
	}
	return p.valueFuncs
}

// positionPoint computes the pixel position of one datum from the x and y channel value functions. A missing channel yields a non-finite position.
func (p *Plot) positionPoint(d Datum, i int, ds *Dataset) Point {
	vfs := p.cachedValueFuncs()
	pt := Point{nan, nan}
	if fn, ok := vfs[ChannelX]; ok {
		pt.X = toFloat(fn(d, i, ds))
	}
	if fn, ok := vfs[ChannelY]; ok {
		pt.Y = toFloat(fn(d, i, ds))
	}
	return pt
}

////////////////////////////////////////////////////////////////

// AddDataset attaches a dataset to the plot, creating its drawer and registering for its update notifications. Adding an attached dataset moves it to the end.
func (p *Plot) AddDataset(ds *Dataset) *Plot {
	p.RemoveDataset(ds)
	p.datasets = append(p.datasets, ds)
	p.datasetCBs[ds] = ds.OnUpdate(p.onDatasetUpdate)
	drawer := newDrawer(ds, shapeOf(p.geometry))
	if p.mode == RendererRaster {
		drawer.UseRasterSurface(p.surface)
	}
	p.drawers[ds] = drawer
	p.onDatasetUpdate(ds)
	return p
}

// RemoveDataset detaches a dataset, removing its drawer and update registration.
func (p *Plot) RemoveDataset(ds *Dataset) *Plot {
	for i, have := range p.datasets {
		if have == ds {
			p.datasets = append(p.datasets[:i], p.datasets[i+1:]...)
			ds.OffUpdate(p.datasetCBs[ds])
			delete(p.datasetCBs, ds)
			p.drawers[ds].Remove()
			delete(p.drawers, ds)
			p.onDatasetUpdate(ds)
			return p
		}
	}
	return p
}

// SetDatasets replaces all attached datasets.
func (p *Plot) SetDatasets(datasets []*Dataset) *Plot {
	for _, ds := range append([]*Dataset{}, p.datasets...) {
		p.RemoveDataset(ds)
	}
	for _, ds := range datasets {
		p.AddDataset(ds)
	}
	return p
}

// Datasets returns the attached datasets in order.
func (p *Plot) Datasets() []*Dataset {
	return append([]*Dataset{}, p.datasets...)
}

// onDatasetUpdate reacts to any dataset-level change: extents and the entity store are invalidated synchronously before the scales re-domain, so dependent scales never see stale extents.
func (p *Plot) onDatasetUpdate(*Dataset) {
	if p.destroyed {
		return
	}
	p.datasetGen++
	p.store = nil
	p.dataChanged = true
	p.updateScales()
	p.RenderLowPriority()
}

////////////////////////////////////////////////////////////////

// Animated returns whether draw phases animate on data change.
func (p *Plot) Animated() bool {
	return p.animated
}

// SetAnimated enables or disables animated draw phases.
func (p *Plot) SetAnimated(animated bool) *Plot {
	p.animated = animated
	return p
}

// SetAnimator sets the animator driving the draw phase registered under key.
func (p *Plot) SetAnimator(key string, a Animator) *Plot {
	p.animators[key] = a
	return p
}

// AnimatorFor returns the animator for a draw phase. Phases only actually animate when animation is enabled and data changed since the last paint; otherwise they run instantaneously.
func (p *Plot) AnimatorFor(key string) Animator {
	if p.animated && p.dataChanged {
		if a, ok := p.animators[key]; ok {
			return a
		}
	}
	return Instant{}
}

////////////////////////////////////////////////////////////////

// Anchor attaches the plot to a drawing surface. Once anchored the plot contributes its extents to shared scale domains and can paint and answer entity queries.
func (p *Plot) Anchor(s *Surface) *Plot {
	p.surface = s
	p.anchored = true
	p.store = nil
	if p.mode == RendererRaster {
		s.ensureRaster()
		for _, d := range p.drawers {
			d.UseRasterSurface(s)
		}
	}
	p.updateScales()
	return p
}

// Detach removes the plot from its surface. Pending deferred work is cancelled and shared scales stop seeing this plot's extents; scale and dataset registrations stay in place so re-anchoring resumes them.
func (p *Plot) Detach() *Plot {
	p.anchored = false
	if p.cancelRender != nil {
		p.cancelRender()
		p.cancelRender = nil
		p.renderPending = false
	}
	p.storeInvalidation.Cancel()
	p.store = nil
	p.updateScales()
	return p
}

// Anchored returns whether the plot is attached to a surface.
func (p *Plot) Anchored() bool {
	return p.anchored
}

// Surface returns the surface the plot is anchored to, or nil.
func (p *Plot) Surface() *Surface {
	return p.surface
}

// Destroy detaches the plot and deregisters every scale and dataset callback, making further invalidation notifications impossible. A destroyed plot must not be used again.
func (p *Plot) Destroy() {
	p.Detach()
	for _, ds := range p.datasets {
		ds.OffUpdate(p.datasetCBs[ds])
		p.drawers[ds].Remove()
	}
	p.datasets = nil
	p.datasetCBs = map[*Dataset]CallbackID{}
	p.drawers = map[*Dataset]*Drawer{}
	for s, reg := range p.scaleRegs {
		s.RemoveIncludedValuesProvider(reg.providerID)
		s.OffUpdate(reg.callbackID)
	}
	p.scaleRegs = map[Scale]*scaleRegistration{}
	p.destroyed = true
}

// Resize resizes the anchored surface. Layout bounds are part of the entity positions, so the store is torn down and a full redraw scheduled; on the raster backend the surface blits through its buffer to avoid a flash.
func (p *Plot) Resize(width, height float64) *Plot {
	if p.surface == nil {
		return p
	}
	p.surface.Resize(width, height)
	p.store = nil
	p.RenderLowPriority()
	return p
}

////////////////////////////////////////////////////////////////

// Renderer returns the current rendering backend.
func (p *Plot) Renderer() RendererMode {
	return p.mode
}

// SetRenderer switches the rendering backend. Switching to the raster backend lazily constructs the surface's raster image and buffer and migrates every dataset's drawer; switching back releases them and migrates the drawers to the vector surface. Both directions schedule a render.
func (p *Plot) SetRenderer(mode RendererMode) *Plot {
	switch mode {
	case RendererVector, RendererRaster:
	default:
		panic("plot: unknown renderer mode")
	}
	if mode == p.mode {
		return p
	}
	p.mode = mode
	if mode == RendererRaster {
		if p.surface != nil {
			p.surface.ensureRaster()
		}
		for _, d := range p.drawers {
			d.UseRasterSurface(p.surface)
		}
	} else {
		if p.surface != nil {
			p.surface.releaseRaster()
		}
		for _, d := range p.drawers {
			d.UseVectorSurface()
		}
	}
	p.RenderLowPriority()
	return p
}

// RenderLowPriority schedules a render at low priority. Multiple requests before the next paint opportunity collapse into a single paint.
func (p *Plot) RenderLowPriority() *Plot {
	if p.renderPending || p.destroyed {
		return p
	}
	p.renderPending = true
	p.cancelRender = p.scheduler.Schedule(0, func() {
		p.renderPending = false
		p.cancelRender = nil
		if !p.destroyed && p.anchored {
			p.RenderImmediately()
		}
	})
	return p
}

// RenderImmediately synchronously paints the plot: it regenerates the draw steps, clears the raster target, dispatches every dataset's drawable data and steps to its drawer, invokes the additional-paint hook with the longest dispatched duration, and clears the data-changed flag. Without an anchored surface it does nothing.
func (p *Plot) RenderImmediately() *Plot {
	if !p.anchored || p.destroyed {
		return p
	}
	steps := p.drawSteps()
	if p.mode == RendererRaster {
		if p.surface.hasRaster() {
			p.surface.clearRaster()
		} else {
			Warning.Println("no raster context available, skipping clear")
		}
	}
	maxTime := time.Duration(0)
	for _, ds := range p.datasets {
		if t := p.drawers[ds].Draw(p.drawableData(ds), steps); maxTime < t {
			maxTime = t
		}
	}
	if p.mode == RendererRaster {
		p.surface.markBufferValid()
	}
	if ap, ok := p.geometry.(additionalPainter); ok {
		ap.AdditionalPaint(p, maxTime)
	}
	p.dataChanged = false
	return p
}

func (p *Plot) drawSteps() []DrawStep {
	if p.geometry != nil {
		return p.geometry.DrawSteps(p)
	}
	return p.DefaultDrawSteps()
}

// DefaultDrawSteps returns the single main draw phase used by geometries without a reset phase.
func (p *Plot) DefaultDrawSteps() []DrawStep {
	return []DrawStep{{ValueFuncs: p.ValueFunctions(), Animator: p.AnimatorFor(AnimatorMain)}}
}

// drawableData filters a dataset down to the data points with a finite pixel position. Sparse data is expected input; excluded points are not an error.
func (p *Plot) drawableData(ds *Dataset) []Datum {
	if p.geometry == nil {
		return ds.Data()
	}
	data := make([]Datum, 0, ds.Len())
	for i, d := range ds.Data() {
		if p.geometry.Position(p, d, i, ds).IsFinite() {
			data = append(data, d)
		}
	}
	return data
}

// Draw flushes the retained vector nodes of all drawers to a canvas context. On the raster backend there is nothing to flush; use the surface's image instead.
func (p *Plot) Draw(ctx *canvas.Context) {
	if p.mode != RendererVector {
		Warning.Println("vector flush is not supported on the raster backend")
		return
	}
	for _, ds := range p.datasets {
		p.drawers[ds].renderTo(ctx)
	}
}

////////////////////////////////////////////////////////////////

// lightweightEntities derives the queryable records from the current data: one per data point with a finite position, with validDatumIndex counting only such points within one dataset.
func (p *Plot) lightweightEntities() []lightweightEntity {
	entities := []lightweightEntity{}
	for di, ds := range p.datasets {
		valid := 0
		drawer := p.drawers[ds]
		for i, d := range ds.Data() {
			pos := p.geometry.Position(p, d, i, ds)
			if !pos.IsFinite() {
				continue
			}
			entities = append(entities, lightweightEntity{d, i, valid, ds, di, drawer, pos})
			valid++
		}
	}
	return entities
}

// entityStore returns the spatial index, rebuilding it lazily if it was torn down. It returns nil when the store cannot be constructed because the plot is not anchored.
func (p *Plot) entityStore() *entityStore {
	if p.destroyed || !p.anchored {
		return nil
	}
	if p.geometry == nil {
		panic("plot: entity queries require a geometry")
	}
	if p.store == nil {
		p.store = newEntityStore(p.lightweightEntities(), p.surface.Bounds())
	}
	return p.store
}

// resolveEntity derives a full entity from its cached lightweight form, resolving the drawn element handle and pixel bounds on demand.
func (p *Plot) resolveEntity(le lightweightEntity) Entity {
	e := Entity{
		Datum:        le.datum,
		Index:        le.index,
		ValidIndex:   le.validIndex,
		Dataset:      le.dataset,
		DatasetIndex: le.datasetIndex,
		Position:     le.position,
		Bounds:       RectFromPoint(le.position),
		Plot:         p,
	}
	if le.drawer != nil {
		i := le.validIndex
		if le.drawer.shape != nil && le.drawer.shape.WholeDataset() {
			i = 0
		}
		if n := le.drawer.NodeAt(i); n != nil {
			e.Node = n
			if n.Path != nil {
				b := n.Path.Bounds()
				e.Bounds = Rect{b.X0, b.Y0, b.W(), b.H()}
			}
		}
	}
	return e
}

func (p *Plot) resolveEntities(les []lightweightEntity) []Entity {
	entities := make([]Entity, len(les))
	for i, le := range les {
		entities[i] = p.resolveEntity(le)
	}
	return entities
}

// Entities returns all queryable entities, or nil when the plot is not anchored.
func (p *Plot) Entities() []Entity {
	s := p.entityStore()
	if s == nil {
		return nil
	}
	return p.resolveEntities(s.all())
}

// FilterEntities returns all entities matching the predicate.
func (p *Plot) FilterEntities(pred func(Entity) bool) []Entity {
	s := p.entityStore()
	if s == nil {
		return nil
	}
	entities := []Entity{}
	for _, le := range s.all() {
		if e := p.resolveEntity(le); pred(e) {
			entities = append(entities, e)
		}
	}
	return entities
}

// EntityNearest returns the entity closest to pt by Euclidean distance, with ties broken by insertion order; ok is false when there are no entities.
func (p *Plot) EntityNearest(pt Point) (Entity, bool) {
	s := p.entityStore()
	if s == nil {
		return Entity{}, false
	}
	le, ok := s.nearest(pt)
	if !ok {
		return Entity{}, false
	}
	return p.resolveEntity(le), true
}

// EntitiesIn returns all entities whose box overlaps r on both axes. The result is empty but non-nil when the store is built and nothing matches, and nil when the store could not be constructed.
func (p *Plot) EntitiesIn(r Rect) []Entity {
	s := p.entityStore()
	if s == nil {
		return nil
	}
	return p.resolveEntities(s.inBounds(r))
}

// EntitiesInXRange returns all entities whose box overlaps r on the x axis only.
func (p *Plot) EntitiesInXRange(r Rect) []Entity {
	s := p.entityStore()
	if s == nil {
		return nil
	}
	return p.resolveEntities(s.inXBounds(r))
}

// EntitiesInYRange returns all entities whose box overlaps r on the y axis only.
func (p *Plot) EntitiesInYRange(r Rect) []Entity {
	s := p.entityStore()
	if s == nil {
		return nil
	}
	return p.resolveEntities(s.inYBounds(r))
}
