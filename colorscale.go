package plot

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorScale maps a numeric domain onto perceptually interpolated colors. Interpolation happens in CIE-Lab space so that the midpoint between two colors looks halfway between them.
type ColorScale struct {
	scaleCallbacks

	domainMin, domainMax float64
	from, to             colorful.Color
	auto                 bool
}

// NewColorScale returns a new color scale interpolating between from and to, with domain [0,1] in automatic mode.
func NewColorScale(from, to color.Color) *ColorScale {
	f, _ := colorful.MakeColor(from)
	t, _ := colorful.MakeColor(to)
	return &ColorScale{
		domainMin: 0.0,
		domainMax: 1.0,
		from:      f,
		to:        t,
		auto:      true,
	}
}

// Scale maps a domain value to a color. Values outside the domain clamp to the end colors.
func (s *ColorScale) Scale(v Value) Value {
	x := toFloat(v)
	t := 0.0
	if s.domainMax != s.domainMin {
		t = (x - s.domainMin) / (s.domainMax - s.domainMin)
	}
	if t < 0.0 {
		t = 0.0
	} else if 1.0 < t {
		t = 1.0
	}
	return s.from.BlendLab(s.to, t).Clamped()
}

// Domain returns the current domain.
func (s *ColorScale) Domain() (float64, float64) {
	return s.domainMin, s.domainMax
}

// SetDomain sets an explicit domain and leaves automatic mode. It panics when the domain is inverted.
func (s *ColorScale) SetDomain(min, max float64) *ColorScale {
	if max < min {
		panic("plot: inverted domain passed to color scale")
	}
	s.auto = false
	s.setDomain(min, max)
	return s
}

func (s *ColorScale) setDomain(min, max float64) {
	if min == s.domainMin && max == s.domainMax {
		return
	}
	s.domainMin = min
	s.domainMax = max
	s.notify(s)
}

// ExtentOfValues returns the [min,max] extent of the finite numeric values, or an empty slice if there are none.
func (s *ColorScale) ExtentOfValues(vs []Value) []Value {
	min, max, ok := floatExtent(vs)
	if !ok {
		return []Value{}
	}
	return []Value{min, max}
}

// AutoDomainIfAutomatic recomputes the domain from the included-values providers if the scale is in automatic mode.
func (s *ColorScale) AutoDomainIfAutomatic() {
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
func (s *ColorScale) AddIncludedValuesProvider(fn IncludedValuesProvider) ProviderID {
	id := s.scaleCallbacks.AddIncludedValuesProvider(fn)
	s.AutoDomainIfAutomatic()
	return id
}

// RemoveIncludedValuesProvider removes a provider and immediately re-domains the scale in automatic mode.
func (s *ColorScale) RemoveIncludedValuesProvider(id ProviderID) {
	s.scaleCallbacks.RemoveIncludedValuesProvider(id)
	s.AutoDomainIfAutomatic()
}
