package plot

import (
	"math"
)

// ProviderID identifies a registered included-values provider.
type ProviderID int

// IncludedValuesProvider returns all values that must fit in a scale's domain. When force is false, detached providers return nothing so that hidden plots do not affect shared scale domains.
type IncludedValuesProvider func(force bool) []Value

// Scale maps domain values to visual range values. A scale is shared between plots; every plot contributes its bound extents to the scale's automatic domain through an included-values provider and must remove its provider when unbound.
type Scale interface {
	// Scale maps a domain value to a range value.
	Scale(v Value) Value

	// ExtentOfValues returns the extent spanned by the given domain values, or an empty slice if none apply.
	ExtentOfValues(vs []Value) []Value

	// AddIncludedValuesProvider registers a provider contributing values to the automatic domain.
	AddIncludedValuesProvider(fn IncludedValuesProvider) ProviderID

	// RemoveIncludedValuesProvider removes the provider registered under id.
	RemoveIncludedValuesProvider(id ProviderID)

	// OnUpdate registers a callback invoked after every domain or range change.
	OnUpdate(cb func(Scale)) CallbackID

	// OffUpdate removes the callback registered under id.
	OffUpdate(id CallbackID)
}

// autoDomainer is implemented by scales that recompute their domain from the registered included-values providers while in automatic mode.
type autoDomainer interface {
	AutoDomainIfAutomatic()
}

// toFloat converts a numeric domain value to float64, or NaN if it is not numeric.
func toFloat(v Value) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	}
	return math.NaN()
}

////////////////////////////////////////////////////////////////

// scaleCallbacks holds the provider and update-callback registrations shared by the concrete scales.
type scaleCallbacks struct {
	nextProviderID ProviderID
	providers      []providerEntry
	nextCallbackID CallbackID
	callbacks      []scaleCallback
}

type providerEntry struct {
	id ProviderID
	fn IncludedValuesProvider
}

type scaleCallback struct {
	id CallbackID
	cb func(Scale)
}

// AddIncludedValuesProvider registers a provider contributing values to the automatic domain.
func (s *scaleCallbacks) AddIncludedValuesProvider(fn IncludedValuesProvider) ProviderID {
	s.nextProviderID++
	s.providers = append(s.providers, providerEntry{s.nextProviderID, fn})
	return s.nextProviderID
}

// RemoveIncludedValuesProvider removes the provider registered under id.
func (s *scaleCallbacks) RemoveIncludedValuesProvider(id ProviderID) {
	for i, p := range s.providers {
		if p.id == id {
			s.providers = append(s.providers[:i], s.providers[i+1:]...)
			return
		}
	}
}

// OnUpdate registers a callback invoked after every domain or range change.
func (s *scaleCallbacks) OnUpdate(cb func(Scale)) CallbackID {
	s.nextCallbackID++
	s.callbacks = append(s.callbacks, scaleCallback{s.nextCallbackID, cb})
	return s.nextCallbackID
}

// OffUpdate removes the callback registered under id.
func (s *scaleCallbacks) OffUpdate(id CallbackID) {
	for i, c := range s.callbacks {
		if c.id == id {
			s.callbacks = append(s.callbacks[:i], s.callbacks[i+1:]...)
			return
		}
	}
}

// includedValues returns the flattened union of all providers' values.
func (s *scaleCallbacks) includedValues(force bool) []Value {
	vs := []Value{}
	for _, p := range s.providers {
		vs = append(vs, p.fn(force)...)
	}
	return vs
}

func (s *scaleCallbacks) notify(scale Scale) {
	for _, c := range s.callbacks {
		c.cb(scale)
	}
}

////////////////////////////////////////////////////////////////

// Linear is a linear quantitative scale mapping a numeric domain onto a numeric range. While in automatic mode it domains itself to the union of all included values; setting an explicit domain leaves automatic mode.
type Linear struct {
	scaleCallbacks

	domainMin, domainMax float64
	rangeMin, rangeMax   float64
	auto                 bool
}

// NewLinear returns a new linear scale with domain and range [0,1] in automatic mode.
func NewLinear() *Linear {
	return &Linear{
		domainMin: 0.0,
		domainMax: 1.0,
		rangeMin:  0.0,
		rangeMax:  1.0,
		auto:      true,
	}
}

// Scale maps a domain value to a range value.
func (s *Linear) Scale(v Value) Value {
	x := toFloat(v)
	if s.domainMax == s.domainMin {
		return s.rangeMin
	}
	return s.rangeMin + (x-s.domainMin)/(s.domainMax-s.domainMin)*(s.rangeMax-s.rangeMin)
}

// Invert maps a range value back to a domain value.
func (s *Linear) Invert(v Value) Value {
	x := toFloat(v)
	if s.rangeMax == s.rangeMin {
		return s.domainMin
	}
	return s.domainMin + (x-s.rangeMin)/(s.rangeMax-s.rangeMin)*(s.domainMax-s.domainMin)
}

// Domain returns the current domain.
func (s *Linear) Domain() (float64, float64) {
	return s.domainMin, s.domainMax
}

// SetDomain sets an explicit domain and leaves automatic mode. It panics when the domain is inverted.
func (s *Linear) SetDomain(min, max float64) *Linear {
	if max < min {
		panic("plot: inverted domain passed to linear scale")
	}
	s.auto = false
	s.setDomain(min, max)
	return s
}

func (s *Linear) setDomain(min, max float64) {
	if min == s.domainMin && max == s.domainMax {
		return
	}
	s.domainMin = min
	s.domainMax = max
	s.notify(s)
}

// Range returns the current range.
func (s *Linear) Range() (float64, float64) {
	return s.rangeMin, s.rangeMax
}

// SetRange sets the output range.
func (s *Linear) SetRange(min, max float64) *Linear {
	if min != s.rangeMin || max != s.rangeMax {
		s.rangeMin = min
		s.rangeMax = max
		s.notify(s)
	}
	return s
}

// ExtentOfValues returns the [min,max] extent of the finite numeric values, or an empty slice if there are none.
func (s *Linear) ExtentOfValues(vs []Value) []Value {
	min, max, ok := floatExtent(vs)
	if !ok {
		return []Value{}
	}
	return []Value{min, max}
}

// AutoDomain recomputes the domain from the union of all included values and puts the scale back in automatic mode.
func (s *Linear) AutoDomain() *Linear {
	s.auto = true
	s.AutoDomainIfAutomatic()
	return s
}

// AutoDomainIfAutomatic recomputes the domain from the included-values providers if the scale is in automatic mode.
func (s *Linear) AutoDomainIfAutomatic() {
	if !s.auto {
		return
	}
	min, max, ok := floatExtent(s.includedValues(false))
	if !ok {
		min, max = 0.0, 1.0
	}
	s.setDomain(min, max)
}

// AddIncludedValuesProvider registers a provider and immediately re-domains the scale in automatic mode.
func (s *Linear) AddIncludedValuesProvider(fn IncludedValuesProvider) ProviderID {
	id := s.scaleCallbacks.AddIncludedValuesProvider(fn)
	s.AutoDomainIfAutomatic()
	return id
}

// RemoveIncludedValuesProvider removes a provider and immediately re-domains the scale in automatic mode.
func (s *Linear) RemoveIncludedValuesProvider(id ProviderID) {
	s.scaleCallbacks.RemoveIncludedValuesProvider(id)
	s.AutoDomainIfAutomatic()
}

// floatExtent returns the minimum and maximum of the finite numeric values, with ok false if there are none.
func floatExtent(vs []Value) (float64, float64, bool) {
	min, max := math.Inf(1), math.Inf(-1)
	ok := false
	for _, v := range vs {
		x := toFloat(v)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		min = math.Min(min, x)
		max = math.Max(max, x)
		ok = true
	}
	if !ok {
		return 0.0, 0.0, false
	}
	return min, max, ok
}
