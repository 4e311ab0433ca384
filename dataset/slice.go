package dataset

// VSliceAt returns the value of every dimension of every instance at
// time index t, flattened in instance order, substituting NaN for
// positions that are out of range or not finite.
func (d *Dataset) VSliceAt(t int) []float64 {
	out := make([]float64, 0, len(d.instances)*d.MaxNumDimensions())
	for _, inst := range d.instances {
		out = append(out, inst.VSliceAt(t)...)
	}
	return out
}

// VSlice returns, per instance and dimension, the values at the given
// time indexes with NaN padding.
func (d *Dataset) VSlice(indexes []int) [][][]float64 {
	out := make([][][]float64, len(d.instances))
	for i, inst := range d.instances {
		out[i] = inst.VSlice(indexes)
	}
	return out
}

// HSliceAt returns, per instance, a copy of the values of dimension
// dim. Every instance must have that dimension.
func (d *Dataset) HSliceAt(dim int) ([][]float64, error) {
	out := make([][]float64, len(d.instances))
	for i, inst := range d.instances {
		vals, err := inst.HSliceAt(dim)
		if err != nil {
			return nil, err
		}
		out[i] = vals
	}
	return out, nil
}

// HSlice returns, per instance, copies of the values of the given
// dimensions.
func (d *Dataset) HSlice(dims []int) ([][][]float64, error) {
	out := make([][][]float64, len(d.instances))
	for i, inst := range d.instances {
		vals, err := inst.HSlice(dims)
		if err != nil {
			return nil, err
		}
		out[i] = vals
	}
	return out, nil
}

// ToValueArray returns a deep copy of all values, indexed by instance,
// dimension, and time.
func (d *Dataset) ToValueArray() [][][]float64 {
	out := make([][][]float64, len(d.instances))
	for i, inst := range d.instances {
		out[i] = inst.ToValueArray()
	}
	return out
}
