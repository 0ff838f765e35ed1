package plot

// ValueFunc computes the final visual value for one datum: accessor, then scale, then post-scale transform.
type ValueFunc func(d Datum, i int, ds *Dataset) Value

// Binding routes data to one visual channel: an accessor extracting the bound value, an optional scale mapping it to a visual value, and an optional post-scale transform.
type Binding struct {
	Accessor  Accessor
	Scale     Scale
	PostScale PostScale
}

// Constant returns an accessor that returns v for every datum.
func Constant(v Value) Accessor {
	return func(Datum, int, *Dataset) Value {
		return v
	}
}

// constantValueFunc returns a value function that returns v for every datum.
func constantValueFunc(v Value) ValueFunc {
	return func(Datum, int, *Dataset) Value {
		return v
	}
}

// makeAccessor promotes a bound value to an accessor: accessors and compatible functions are used directly, anything else is wrapped as a constant.
func makeAccessor(value interface{}) Accessor {
	switch fn := value.(type) {
	case Accessor:
		return fn
	case func(Datum, int, *Dataset) Value:
		return fn
	case func(Datum, int, *Dataset) float64:
		return func(d Datum, i int, ds *Dataset) Value {
			return fn(d, i, ds)
		}
	}
	return Constant(value)
}

// valueFunc returns the composed value function for the binding, or nil if the binding has no accessor. A binding without a scale passes the accessed value through unscaled.
func (b Binding) valueFunc() ValueFunc {
	if b.Accessor == nil {
		return nil
	}
	return func(d Datum, i int, ds *Dataset) Value {
		v := b.Accessor(d, i, ds)
		if b.Scale != nil {
			v = b.Scale.Scale(v)
		}
		if b.PostScale != nil {
			v = b.PostScale(v, d, i, ds)
		}
		return v
	}
}
