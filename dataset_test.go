package plot

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestDatasetUpdate(t *testing.T) {
	ds := NewDataset(1.0, 2.0)
	calls := 0
	id := ds.OnUpdate(func(*Dataset) {
		calls++
	})

	ds.SetData([]Datum{3.0})
	test.T(t, calls, 1)
	test.T(t, ds.Len(), 1)

	ds.SetMetadata("name", "measurements")
	test.T(t, calls, 2)
	test.T(t, ds.Metadata("name"), "measurements")

	ds.OffUpdate(id)
	ds.SetData([]Datum{4.0})
	test.T(t, calls, 2)
}

func TestDatasetMultipleCallbacks(t *testing.T) {
	ds := NewDataset()
	a, b := 0, 0
	ds.OnUpdate(func(*Dataset) { a++ })
	idB := ds.OnUpdate(func(*Dataset) { b++ })
	ds.OffUpdate(idB)
	ds.SetData([]Datum{1.0})
	test.T(t, a, 1)
	test.T(t, b, 0)
}
