package instance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// VSliceAt returns the value of every dimension at time index t,
// substituting NaN for dimensions shorter than t+1.
func (inst *Instance) VSliceAt(t int) []float64 {
	out := make([]float64, len(inst.dims))
	for i, d := range inst.dims {
		out[i] = d.AtOrNaN(t)
	}
	return out
}

// VSlice returns, per dimension, the values at the given time indexes
// with NaN padding for out-of-range positions.
func (inst *Instance) VSlice(indexes []int) [][]float64 {
	out := make([][]float64, len(inst.dims))
	for i, d := range inst.dims {
		out[i] = d.ValuesAt(indexes)
	}
	return out
}

// HSliceAt returns a copy of the values of dimension dim.
func (inst *Instance) HSliceAt(dim int) ([]float64, error) {
	if dim < 0 || dim >= len(inst.dims) {
		return nil, fmt.Errorf("dimension %d with %d dimensions, %w", dim, len(inst.dims), ErrIndexOutOfRange)
	}
	return inst.dims[dim].Values(), nil
}

// HSlice returns copies of the values of the given dimensions in order.
func (inst *Instance) HSlice(dims []int) ([][]float64, error) {
	out := make([][]float64, len(dims))
	for i, dim := range dims {
		vals, err := inst.HSliceAt(dim)
		if err != nil {
			return nil, err
		}
		out[i] = vals
	}
	return out, nil
}

// HSliceInstance extracts the given dimensions into a new instance,
// deep-copying the series and carrying over label state and the
// vocabulary reference.
func (inst *Instance) HSliceInstance(dims []int) (*Instance, error) {
	out := New()
	for _, dim := range dims {
		if dim < 0 || dim >= len(inst.dims) {
			return nil, fmt.Errorf("dimension %d with %d dimensions, %w", dim, len(inst.dims), ErrIndexOutOfRange)
		}
		out.Add(inst.dims[dim].Clone())
	}
	out.vocab = inst.vocab
	out.kind = inst.kind
	out.classIndex = inst.classIndex
	out.target = inst.target
	return out, nil
}

// ToValueArray returns a deep copy of all dimension values.
func (inst *Instance) ToValueArray() [][]float64 {
	out := make([][]float64, len(inst.dims))
	for i, d := range inst.dims {
		out[i] = d.Values()
	}
	return out
}

// ToTransposedArray returns the values as rows of vertical slices, one
// per time index up to the longest dimension, with NaN padding for
// shorter dimensions.
func (inst *Instance) ToTransposedArray() [][]float64 {
	n := inst.MaxLength()
	out := make([][]float64, n)
	for t := 0; t < n; t++ {
		out[t] = inst.VSliceAt(t)
	}
	return out
}

// Matrix returns the instance as a dense matrix with one row per time
// index and one column per dimension, NaN padded for shorter
// dimensions. Returns nil when the instance holds no data.
func (inst *Instance) Matrix() *mat.Dense {
	m := inst.MaxLength()
	n := len(inst.dims)
	if m == 0 || n == 0 {
		return nil
	}
	obs := make([]float64, 0, m*n)
	for t := 0; t < m; t++ {
		obs = append(obs, inst.VSliceAt(t)...)
	}
	return mat.NewDense(m, n, obs)
}
