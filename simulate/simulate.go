// Package simulate generates synthetic time-series datasets for tests,
// benchmarks, and examples.
package simulate

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rickar/cal/v2"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoClasses    = errors.New("no class labels")
	ErrNoInstances  = errors.New("number of instances must be positive")
	ErrNoDimensions = errors.New("number of dimensions must be positive")
	ErrZeroLength   = errors.New("series length must be positive")
	ErrMissingRate  = errors.New("missing rate must be within [0, 1]")
)

// Values is a mutable slice of generated observations.
type Values []float64

// Add sums src into v in place.
func (v Values) Add(src Values) Values {
	floats.Add(v, src)
	return v
}

// WithMissing replaces roughly rate of the values with NaN.
func (v Values) WithMissing(rate float64, rng *rand.Rand) Values {
	for i := range v {
		if rng.Float64() < rate {
			v[i] = math.NaN()
		}
	}
	return v
}

// Constant returns n copies of val.
func Constant(n int, val float64) Values {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = val
	}
	return y
}

// Wave returns a sinusoid sampled at unit steps.
func Wave(n int, amp, period, phase float64) Values {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = amp * math.Sin(2.0*math.Pi/period*(float64(i)+phase))
	}
	return y
}

// Noise returns gaussian noise scaled by scale.
func Noise(n int, scale float64, rng *rand.Rand) Values {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = rng.NormFloat64() * scale
	}
	return y
}

// Drift returns a linear trend with the given slope.
func Drift(n int, slope float64) Values {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = slope * float64(i)
	}
	return y
}

// Timestamps returns n strictly ascending timestamps starting at 0 with
// the given step.
func Timestamps(n int, step float64) []float64 {
	t := make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = float64(i) * step
	}
	return t
}

// DateTimestamps returns n wall-clock times starting at start with the
// given interval.
func DateTimestamps(start time.Time, n int, interval time.Duration) []time.Time {
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, start.Add(interval*time.Duration(i)))
	}
	return t
}

// ToEpoch converts wall-clock times to float seconds for use as series
// timestamps.
func ToEpoch(t []time.Time) []float64 {
	out := make([]float64, len(t))
	for i, ts := range t {
		out[i] = float64(ts.UnixNano()) / float64(time.Second)
	}
	return out
}

// WeekendMask returns 1.0 where t falls on a weekend and 0.0 elsewhere.
func WeekendMask(t []time.Time) Values {
	y := make([]float64, len(t))
	for i := 0; i < len(t); i++ {
		switch t[i].Weekday() {
		case time.Saturday, time.Sunday:
			y[i] = 1.0
		}
	}
	return y
}

// HolidayMask returns 1.0 where t falls on the observed date of the
// given holiday and 0.0 elsewhere.
func HolidayMask(t []time.Time, hol *cal.Holiday) Values {
	y := make([]float64, len(t))
	observedDays := make(map[string]struct{})
	if len(t) > 0 {
		for year := t[0].Year(); year <= t[len(t)-1].Year(); year++ {
			_, observed := hol.Calc(year)
			observedDays[observed.Format("2006-01-02")] = struct{}{}
		}
	}
	for i := 0; i < len(t); i++ {
		if _, ok := observedDays[t[i].Format("2006-01-02")]; ok {
			y[i] = 1.0
		}
	}
	return y
}
