package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var ErrNoFiniteValues = errors.New("no finite values in series")

// finite filters NaN and Inf values so statistics over series with
// missing observations stay meaningful.
func finite(y []float64) []float64 {
	out := make([]float64, 0, len(y))
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Mean returns the mean of the finite values of y.
func Mean(y []float64) (float64, error) {
	vals := finite(y)
	if len(vals) == 0 {
		return 0, ErrNoFiniteValues
	}
	return stat.Mean(vals, nil), nil
}

// StdDev returns the population standard deviation of the finite
// values of y.
func StdDev(y []float64) (float64, error) {
	vals := finite(y)
	if len(vals) == 0 {
		return 0, ErrNoFiniteValues
	}
	mean := stat.Mean(vals, nil)
	var variance float64
	for _, v := range vals {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(vals))), nil
}

// Normalize z-normalises y, preserving NaN positions. A zero standard
// deviation yields a zero series.
func Normalize(y []float64) ([]float64, error) {
	mean, err := Mean(y)
	if err != nil {
		return nil, err
	}
	std, err := StdDev(y)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(y))
	for i, v := range y {
		if math.IsNaN(v) {
			out[i] = v
			continue
		}
		if std == 0 {
			out[i] = 0
			continue
		}
		out[i] = (v - mean) / std
	}
	return out, nil
}

// MinMaxScale scales the finite values of y into [0, 1], preserving
// NaN positions. A constant series maps to zeros.
func MinMaxScale(y []float64) ([]float64, error) {
	vals := finite(y)
	if len(vals) == 0 {
		return nil, ErrNoFiniteValues
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(y))
	for i, v := range y {
		if math.IsNaN(v) {
			out[i] = v
			continue
		}
		if max == min {
			out[i] = 0
			continue
		}
		out[i] = (v - min) / (max - min)
	}
	return out, nil
}

// DetectOutliers returns the indexes of values outside the Tukey fences
// derived from the given percentile window. NaN values are never
// flagged.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	vals := finite(y)
	if len(vals) == 0 {
		return nil
	}
	sort.Float64s(vals)
	lowerIdx := int(math.Floor(float64(len(vals)-1) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(vals)-1) * upperPerc))

	lower := vals[lowerIdx]
	upper := vals[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if math.IsNaN(y[i]) {
			continue
		}
		if y[i] >= upper || y[i] <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}
