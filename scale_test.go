package plot

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestLinearScale(t *testing.T) {
	s := NewLinear().SetDomain(0.0, 10.0).SetRange(0.0, 100.0)
	test.Float(t, toFloat(s.Scale(5.0)), 50.0)
	test.Float(t, toFloat(s.Scale(0.0)), 0.0)
	test.Float(t, toFloat(s.Invert(50.0)), 5.0)
}

func TestLinearInvertedDomainPanics(t *testing.T) {
	defer func() {
		test.That(t, recover() != nil)
	}()
	NewLinear().SetDomain(10.0, 0.0)
}

func TestLinearExtentOfValues(t *testing.T) {
	s := NewLinear()
	test.T(t, s.ExtentOfValues([]Value{1.0, 5.0, 3.0}), []Value{1.0, 5.0})
	test.T(t, len(s.ExtentOfValues([]Value{})), 0)
	test.T(t, len(s.ExtentOfValues([]Value{"n/a"})), 0)
}

func TestLinearAutoDomain(t *testing.T) {
	s := NewLinear()
	id := s.AddIncludedValuesProvider(func(bool) []Value {
		return []Value{2.0, 8.0}
	})
	min, max := s.Domain()
	test.Float(t, min, 2.0)
	test.Float(t, max, 8.0)

	s.AddIncludedValuesProvider(func(bool) []Value {
		return []Value{-1.0}
	})
	min, max = s.Domain()
	test.Float(t, min, -1.0)
	test.Float(t, max, 8.0)

	s.RemoveIncludedValuesProvider(id)
	min, max = s.Domain()
	test.Float(t, min, -1.0)
	test.Float(t, max, -1.0)
}

func TestLinearExplicitDomainStopsAuto(t *testing.T) {
	s := NewLinear()
	s.AddIncludedValuesProvider(func(bool) []Value {
		return []Value{2.0, 8.0}
	})
	s.SetDomain(0.0, 1.0)
	s.AddIncludedValuesProvider(func(bool) []Value {
		return []Value{100.0}
	})
	min, max := s.Domain()
	test.Float(t, min, 0.0)
	test.Float(t, max, 1.0)

	s.AutoDomain()
	min, max = s.Domain()
	test.Float(t, min, 2.0)
	test.Float(t, max, 100.0)
}

func TestLinearUpdateCallback(t *testing.T) {
	s := NewLinear()
	calls := 0
	id := s.OnUpdate(func(Scale) { calls++ })
	s.SetDomain(0.0, 5.0)
	test.T(t, calls, 1)
	s.SetDomain(0.0, 5.0) // unchanged, no notification
	test.T(t, calls, 1)
	s.SetRange(0.0, 10.0)
	test.T(t, calls, 2)
	s.OffUpdate(id)
	s.SetDomain(0.0, 6.0)
	test.T(t, calls, 2)
}

func TestColorScale(t *testing.T) {
	s := NewColorScale(color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255}).SetDomain(0.0, 1.0)
	lo := s.Scale(0.0).(color.Color)
	hi := s.Scale(1.0).(color.Color)
	r0, g0, b0, _ := lo.RGBA()
	r1, _, _, _ := hi.RGBA()
	test.That(t, r0 < 0x1000 && g0 < 0x1000 && b0 < 0x1000)
	test.That(t, 0xf000 < r1)

	// out-of-domain values clamp to the end colors
	under := s.Scale(-5.0).(color.Color)
	ru, _, _, _ := under.RGBA()
	test.T(t, ru, r0)
}

func TestColorScaleAutoDomain(t *testing.T) {
	s := NewColorScale(color.RGBA{0, 0, 0, 255}, color.RGBA{255, 0, 0, 255})
	s.AddIncludedValuesProvider(func(bool) []Value {
		return []Value{10.0, 20.0}
	})
	min, max := s.Domain()
	test.Float(t, min, 10.0)
	test.Float(t, max, 20.0)
}
