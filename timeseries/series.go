package timeseries

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/tsmlgo/go-tsdata/memo"
)

var (
	ErrIndexOutOfRange        = errors.New("series index out of range")
	ErrNonAscendingTimestamps = errors.New("timestamps are not strictly ascending")
	ErrNonFiniteTimestamp     = errors.New("timestamp is not finite")
	ErrTimestampLenMismatch   = errors.New("timestamps have a different length than values")
	ErrInvalidSliceBounds     = errors.New("invalid slice bounds")
)

// Series is a mutable ordered sequence of float64 values where NaN
// marks a missing observation. A series may carry timestamps, one per
// value, which must be strictly ascending. A series without timestamps
// is treated as regularly sampled.
//
// The has-missing and equally-spaced flags are computed lazily and
// memoized until the next mutation. Mutations notify subscribed
// listeners synchronously before returning. Series assume a single
// writer and are not safe for concurrent use.
type Series struct {
	values     []float64
	timestamps []float64

	hasMissing    memo.Cell[bool]
	equallySpaced memo.Cell[bool]

	listeners []*Listener
}

// New returns a series holding a copy of the given values.
func New(values ...float64) *Series {
	s := &Series{}
	s.SetValues(values)
	return s
}

// NewWithTimestamps returns a series holding copies of the given values
// and timestamps. The timestamps must match the values in length and be
// strictly ascending.
func NewWithTimestamps(values, timestamps []float64) (*Series, error) {
	s := New(values...)
	if err := s.SetTimestamps(timestamps); err != nil {
		return nil, err
	}
	return s, nil
}

// SetValues replaces the series contents with a copy of values. Any
// previously set timestamps are dropped when the new length differs.
func (s *Series) SetValues(values []float64) {
	vals := make([]float64, len(values))
	copy(vals, values)
	s.values = vals
	if s.timestamps != nil && len(s.timestamps) != len(s.values) {
		s.timestamps = nil
		s.invalidateTimestamps()
		defer s.notifyTimestampChange()
	}
	s.invalidateValues()
	s.notifyValueChange()
}

// Add appends a value to the series. It fails when timestamps are set
// since the new value would have no paired timestamp.
func (s *Series) Add(v float64) error {
	return s.Insert(len(s.values), v)
}

// Insert places a value at position i, shifting subsequent values. It
// fails when timestamps are set since the new value would have no
// paired timestamp.
func (s *Series) Insert(i int, v float64) error {
	if s.timestamps != nil {
		return fmt.Errorf("cannot insert into a timestamped series, %w", ErrTimestampLenMismatch)
	}
	if i < 0 || i > len(s.values) {
		return fmt.Errorf("index %d with length %d, %w", i, len(s.values), ErrIndexOutOfRange)
	}
	s.values = append(s.values, 0)
	copy(s.values[i+1:], s.values[i:])
	s.values[i] = v
	s.invalidateValues()
	s.notifyValueChange()
	return nil
}

// Remove deletes the value at position i and returns it. When
// timestamps are set the paired timestamp is removed as well.
func (s *Series) Remove(i int) (float64, error) {
	if i < 0 || i >= len(s.values) {
		return 0, fmt.Errorf("index %d with length %d, %w", i, len(s.values), ErrIndexOutOfRange)
	}
	v := s.values[i]
	s.values = append(s.values[:i], s.values[i+1:]...)
	s.invalidateValues()
	if s.timestamps != nil {
		s.timestamps = append(s.timestamps[:i], s.timestamps[i+1:]...)
		s.invalidateTimestamps()
		defer s.notifyTimestampChange()
	}
	s.notifyValueChange()
	return v, nil
}

// Set replaces the value at position i.
func (s *Series) Set(i int, v float64) error {
	if i < 0 || i >= len(s.values) {
		return fmt.Errorf("index %d with length %d, %w", i, len(s.values), ErrIndexOutOfRange)
	}
	s.values[i] = v
	s.invalidateValues()
	s.notifyValueChange()
	return nil
}

// SetTimestamps replaces the series timestamps with a copy of ts. The
// timestamps must match the values in length, be finite, and be
// strictly ascending; all are validated before any state changes.
func (s *Series) SetTimestamps(ts []float64) error {
	if len(ts) != len(s.values) {
		return fmt.Errorf(
			"timestamps have length of %d, but values has a length of %d, %w",
			len(ts), len(s.values), ErrTimestampLenMismatch,
		)
	}
	for i := 0; i < len(ts); i++ {
		if math.IsNaN(ts[i]) || math.IsInf(ts[i], 0) {
			return fmt.Errorf("timestamp %g at %d, %w", ts[i], i, ErrNonFiniteTimestamp)
		}
		if i > 0 && ts[i] <= ts[i-1] {
			return fmt.Errorf("non-ascending at %d, %w", i, ErrNonAscendingTimestamps)
		}
	}
	stamps := make([]float64, len(ts))
	copy(stamps, ts)
	s.timestamps = stamps
	s.invalidateTimestamps()
	s.notifyTimestampChange()
	return nil
}

// ClearTimestamps drops the series timestamps, reverting to regular
// sampling.
func (s *Series) ClearTimestamps() {
	if s.timestamps == nil {
		return
	}
	s.timestamps = nil
	s.invalidateTimestamps()
	s.notifyTimestampChange()
}

func (s *Series) Len() int {
	return len(s.values)
}

// At returns the value at position i.
func (s *Series) At(i int) (float64, error) {
	if i < 0 || i >= len(s.values) {
		return 0, fmt.Errorf("index %d with length %d, %w", i, len(s.values), ErrIndexOutOfRange)
	}
	return s.values[i], nil
}

// AtOrNaN returns the value at position i, or NaN when the position is
// out of range or the value is not finite.
func (s *Series) AtOrNaN(i int) float64 {
	if !s.HasValidValueAt(i) {
		return math.NaN()
	}
	return s.values[i]
}

// HasValidValueAt reports whether position i holds a finite value.
func (s *Series) HasValidValueAt(i int) bool {
	if i < 0 || i >= len(s.values) {
		return false
	}
	v := s.values[i]
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Values returns a copy of the series values.
func (s *Series) Values() []float64 {
	vals := make([]float64, len(s.values))
	copy(vals, s.values)
	return vals
}

// Timestamps returns a copy of the series timestamps and whether any
// are set.
func (s *Series) Timestamps() ([]float64, bool) {
	if s.timestamps == nil {
		return nil, false
	}
	stamps := make([]float64, len(s.timestamps))
	copy(stamps, s.timestamps)
	return stamps, true
}

func (s *Series) HasTimestamps() bool {
	return s.timestamps != nil
}

// HasMissing reports whether any value is NaN. The result is memoized
// until the next value mutation.
func (s *Series) HasMissing() bool {
	return s.hasMissing.Get(func() bool {
		return floats.HasNaN(s.values)
	})
}

// IsEquallySpaced reports whether consecutive timestamp deltas are
// uniform. A series without timestamps is regularly sampled and reports
// true. The result is memoized until the next timestamp mutation.
func (s *Series) IsEquallySpaced() bool {
	return s.equallySpaced.Get(func() bool {
		if len(s.timestamps) < 3 {
			return true
		}
		delta := s.timestamps[1] - s.timestamps[0]
		for i := 2; i < len(s.timestamps); i++ {
			if s.timestamps[i]-s.timestamps[i-1] != delta {
				return false
			}
		}
		return true
	})
}

// Spacing returns the uniform timestamp delta. It reports false when
// the series has no timestamps, fewer than two points, or unequal
// spacing.
func (s *Series) Spacing() (float64, bool) {
	if len(s.timestamps) < 2 || !s.IsEquallySpaced() {
		return 0, false
	}
	return s.timestamps[1] - s.timestamps[0], true
}

// Slice returns a copy of the value window [start, end).
func (s *Series) Slice(start, end int) ([]float64, error) {
	if start < 0 || end > len(s.values) || start > end {
		return nil, fmt.Errorf("bounds [%d, %d) with length %d, %w", start, end, len(s.values), ErrInvalidSliceBounds)
	}
	out := make([]float64, end-start)
	copy(out, s.values[start:end])
	return out, nil
}

// ValuesAt returns the values at the given positions in order,
// substituting NaN for out-of-range or non-finite positions.
func (s *Series) ValuesAt(indexes []int) []float64 {
	out := make([]float64, len(indexes))
	for i, idx := range indexes {
		out[i] = s.AtOrNaN(idx)
	}
	return out
}

// ValuesExcluding returns a copy of the values with the given positions
// dropped.
func (s *Series) ValuesExcluding(indexes []int) []float64 {
	drop := make(map[int]struct{}, len(indexes))
	for _, idx := range indexes {
		drop[idx] = struct{}{}
	}
	out := make([]float64, 0, len(s.values)-len(drop))
	for i, v := range s.values {
		if _, ok := drop[i]; ok {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Clone returns a deep copy of the series data. Listeners are not
// carried over.
func (s *Series) Clone() *Series {
	clone := New(s.values...)
	if s.timestamps != nil {
		stamps := make([]float64, len(s.timestamps))
		copy(stamps, s.timestamps)
		clone.timestamps = stamps
	}
	return clone
}

// Equal compares values and timestamps, treating NaN values as equal to
// each other.
func (s *Series) Equal(other *Series) bool {
	if s == other {
		return true
	}
	if other == nil {
		return false
	}
	if (s.timestamps == nil) != (other.timestamps == nil) {
		return false
	}
	if s.timestamps != nil && !sameFloats(s.timestamps, other.timestamps) {
		return false
	}
	return sameFloats(s.values, other.values)
}

func sameFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && !(math.IsNaN(a[i]) && math.IsNaN(b[i])) {
			return false
		}
	}
	return true
}

func (s *Series) String() string {
	var sb strings.Builder
	for i, v := range s.values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return sb.String()
}
