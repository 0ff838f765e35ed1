package plot

// Entity is one renderable, queryable record derived from one (dataset, datum) pair. It is resolved on demand from the plot's spatially indexed records; Node is nil on the raster backend, which retains no per-element handles.
type Entity struct {
	Datum        Datum
	Index        int
	ValidIndex   int
	Dataset      *Dataset
	DatasetIndex int
	Position     Point
	Bounds       Rect
	Node         *Node
	Plot         *Plot
}

// lightweightEntity is the cached form of an entity: everything needed to index and resolve it, without the drawn element handle. ValidIndex counts only data points with a finite position within one dataset and maps back to the physical drawn element, which may differ from the raw data index when some points were excluded.
type lightweightEntity struct {
	datum        Datum
	index        int
	validIndex   int
	dataset      *Dataset
	datasetIndex int
	drawer       *Drawer
	position     Point
}
