package plot

import (
	"testing"

	"github.com/tdewolff/test"
)

func storeOf(positions ...Point) *entityStore {
	entities := make([]lightweightEntity, len(positions))
	for i, pos := range positions {
		entities[i] = lightweightEntity{index: i, validIndex: i, position: pos}
	}
	return newEntityStore(entities, Rect{0.0, 0.0, 100.0, 100.0})
}

func TestEntityStoreInBounds(t *testing.T) {
	s := storeOf(Point{10.0, 10.0}, Point{50.0, 50.0}, Point{90.0, 90.0})
	matches := s.inBounds(Rect{0.0, 0.0, 60.0, 60.0})
	test.T(t, len(matches), 2)
	test.T(t, matches[0].index, 0)
	test.T(t, matches[1].index, 1)

	matches = s.inBounds(Rect{95.0, 95.0, 5.0, 5.0})
	test.That(t, matches != nil)
	test.T(t, len(matches), 0)
}

func TestEntityStoreAxisBounds(t *testing.T) {
	s := storeOf(Point{10.0, 90.0}, Point{50.0, 10.0}, Point{90.0, 50.0})

	// x overlap only, any y
	matches := s.inXBounds(Rect{0.0, 0.0, 20.0, 0.0})
	test.T(t, len(matches), 1)
	test.T(t, matches[0].index, 0)

	// y overlap only, any x
	matches = s.inYBounds(Rect{0.0, 40.0, 0.0, 20.0})
	test.T(t, len(matches), 1)
	test.T(t, matches[0].index, 2)
}

func TestEntityStoreOutsideLocalBounds(t *testing.T) {
	// entities outside the local frame are still indexed
	s := storeOf(Point{150.0, 150.0})
	matches := s.inBounds(Rect{140.0, 140.0, 20.0, 20.0})
	test.T(t, len(matches), 1)
}

func TestEntityStoreNearest(t *testing.T) {
	s := storeOf(Point{10.0, 10.0}, Point{50.0, 50.0})
	e, ok := s.nearest(Point{40.0, 40.0})
	test.That(t, ok)
	test.T(t, e.index, 1)

	// equidistant: first indexed wins
	e, ok = s.nearest(Point{30.0, 30.0})
	test.That(t, ok)
	test.T(t, e.index, 0)
}

func TestEntityStoreEmpty(t *testing.T) {
	s := newEntityStore(nil, Rect{0.0, 0.0, 100.0, 100.0})
	_, ok := s.nearest(Point{0.0, 0.0})
	test.That(t, !ok)
	matches := s.inBounds(Rect{0.0, 0.0, 100.0, 100.0})
	test.That(t, matches != nil)
	test.T(t, len(matches), 0)
}

func TestEntityStoreAll(t *testing.T) {
	s := storeOf(Point{1.0, 1.0}, Point{2.0, 2.0}, Point{3.0, 3.0})
	all := s.all()
	test.T(t, len(all), 3)
	for i, e := range all {
		test.T(t, e.index, i)
	}
}
