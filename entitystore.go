package plot

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
)

// entityStore is a spatial index over the current set of lightweight entities. Entities are indexed by their position as point boxes, scoped to the plot's own coordinate frame. The store is torn down on invalidation and rebuilt lazily on the next query, never eagerly.
type entityStore struct {
	entries []*storeEntry
	tree    *quadtree.Quadtree
	bound   orb.Bound
	local   Rect
}

// storeEntry implements orb.Pointer so entries can live in the quadtree. The insertion order breaks distance ties deterministically.
type storeEntry struct {
	entity lightweightEntity
	order  int
}

func (e *storeEntry) Point() orb.Point {
	return orb.Point{e.entity.position.X, e.entity.position.Y}
}

// newEntityStore indexes the entities within localBounds. Entities outside localBounds are still indexed; the quadtree bound grows to cover them.
func newEntityStore(entities []lightweightEntity, localBounds Rect) *entityStore {
	s := &entityStore{local: localBounds}
	if len(entities) == 0 {
		return s
	}

	bound := Rect{localBounds.X, localBounds.Y, localBounds.W, localBounds.H}
	for _, e := range entities {
		bound = bound.AddPoint(e.position)
	}
	// pad so edge points always fit the quadtree bound
	s.bound = orb.Bound{
		Min: orb.Point{bound.X - 1.0, bound.Y - 1.0},
		Max: orb.Point{bound.X + bound.W + 1.0, bound.Y + bound.H + 1.0},
	}
	s.tree = quadtree.New(s.bound)
	for i, e := range entities {
		entry := &storeEntry{e, i}
		s.entries = append(s.entries, entry)
		if err := s.tree.Add(entry); err != nil {
			panic("plot: entity position outside the computed store bound: " + err.Error())
		}
	}
	return s
}

// inBounds returns all entities whose point box overlaps r on both axes, in insertion order. The result is empty but non-nil when nothing matches.
func (s *entityStore) inBounds(r Rect) []lightweightEntity {
	return s.query(orb.Bound{
		Min: orb.Point{r.X, r.Y},
		Max: orb.Point{r.X + r.W, r.Y + r.H},
	})
}

// inXBounds returns all entities whose point box overlaps r on the x axis only.
func (s *entityStore) inXBounds(r Rect) []lightweightEntity {
	return s.query(orb.Bound{
		Min: orb.Point{r.X, math.Inf(-1)},
		Max: orb.Point{r.X + r.W, math.Inf(1)},
	})
}

// inYBounds returns all entities whose point box overlaps r on the y axis only.
func (s *entityStore) inYBounds(r Rect) []lightweightEntity {
	return s.query(orb.Bound{
		Min: orb.Point{math.Inf(-1), r.Y},
		Max: orb.Point{math.Inf(1), r.Y + r.H},
	})
}

func (s *entityStore) query(b orb.Bound) []lightweightEntity {
	matches := []lightweightEntity{}
	if s.tree == nil {
		return matches
	}
	// clamp the query to the indexed bound; the quadtree cannot be searched outside it
	qb := orb.Bound{
		Min: orb.Point{math.Max(b.Min[0], s.bound.Min[0]), math.Max(b.Min[1], s.bound.Min[1])},
		Max: orb.Point{math.Min(b.Max[0], s.bound.Max[0]), math.Min(b.Max[1], s.bound.Max[1])},
	}
	if qb.Max[0] < qb.Min[0] || qb.Max[1] < qb.Min[1] {
		return matches
	}
	found := s.tree.InBound(nil, qb)
	entries := make([]*storeEntry, 0, len(found))
	for _, ptr := range found {
		entry := ptr.(*storeEntry)
		p := entry.Point()
		if b.Min[0] <= p[0] && p[0] <= b.Max[0] && b.Min[1] <= p[1] && p[1] <= b.Max[1] {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].order < entries[j].order
	})
	for _, entry := range entries {
		matches = append(matches, entry.entity)
	}
	return matches
}

// nearest returns the entity closest to p by Euclidean distance. Ties are broken by insertion order; ok is false when the store is empty.
func (s *entityStore) nearest(p Point) (lightweightEntity, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, entry := range s.entries {
		if d := entry.entity.position.Dist(p); d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return lightweightEntity{}, false
	}
	return s.entries[best].entity, true
}

// all returns every indexed entity in insertion order.
func (s *entityStore) all() []lightweightEntity {
	entities := make([]lightweightEntity, len(s.entries))
	for i, entry := range s.entries {
		entities[i] = entry.entity
	}
	return entities
}
