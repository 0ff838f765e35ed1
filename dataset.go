package plot

// Value is a domain or visual value flowing through a binding. Positional channels carry float64, color channels carry color.Color.
type Value = interface{}

// Datum is one data record of a dataset.
type Datum = interface{}

// Accessor extracts the bound value from one datum of a dataset.
type Accessor func(d Datum, i int, ds *Dataset) Value

// PostScale transforms a scaled value into the final visual value.
type PostScale func(scaled Value, d Datum, i int, ds *Dataset) Value

// DatumFilter selects which data points of a dataset count towards an extent.
type DatumFilter func(d Datum, i int, ds *Dataset) bool

// CallbackID identifies a registered update callback.
type CallbackID int

////////////////////////////////////////////////////////////////

// Dataset is an ordered sequence of data records with key/value metadata. It notifies registered callbacks when its data or metadata change. Datasets are owned by the caller and may be attached to multiple plots.
type Dataset struct {
	data     []Datum
	metadata map[string]Value

	nextID    CallbackID
	callbacks []datasetCallback
}

type datasetCallback struct {
	id CallbackID
	cb func(*Dataset)
}

// NewDataset returns a new dataset holding the given data.
func NewDataset(data ...Datum) *Dataset {
	return &Dataset{data: data, metadata: map[string]Value{}}
}

// Data returns the ordered data records.
func (ds *Dataset) Data() []Datum {
	return ds.data
}

// Len returns the number of data records.
func (ds *Dataset) Len() int {
	return len(ds.data)
}

// SetData replaces the data records and notifies all registered callbacks.
func (ds *Dataset) SetData(data []Datum) *Dataset {
	ds.data = data
	ds.notify()
	return ds
}

// Metadata returns the metadata value for key, or nil if absent.
func (ds *Dataset) Metadata(key string) Value {
	return ds.metadata[key]
}

// SetMetadata sets the metadata value for key and notifies all registered callbacks.
func (ds *Dataset) SetMetadata(key string, v Value) *Dataset {
	ds.metadata[key] = v
	ds.notify()
	return ds
}

// OnUpdate registers a callback invoked after every data or metadata change and returns its registration id.
func (ds *Dataset) OnUpdate(cb func(*Dataset)) CallbackID {
	ds.nextID++
	ds.callbacks = append(ds.callbacks, datasetCallback{ds.nextID, cb})
	return ds.nextID
}

// OffUpdate removes the callback registered under id.
func (ds *Dataset) OffUpdate(id CallbackID) {
	for i, c := range ds.callbacks {
		if c.id == id {
			ds.callbacks = append(ds.callbacks[:i], ds.callbacks[i+1:]...)
			return
		}
	}
}

func (ds *Dataset) notify() {
	for _, c := range ds.callbacks {
		c.cb(ds)
	}
}
