package instance

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tsmlgo/go-tsdata/label"
	"github.com/tsmlgo/go-tsdata/memo"
	"github.com/tsmlgo/go-tsdata/timeseries"
)

var (
	ErrIndexOutOfRange      = errors.New("dimension index out of range")
	ErrNoVocabulary         = errors.New("instance has no label vocabulary")
	ErrNilVocabulary        = errors.New("nil label vocabulary")
	ErrClassIndexOutOfRange = errors.New("class index outside vocabulary bounds")
	ErrNotClassified        = errors.New("instance has no class label")
)

// Instance is a mutable ordered collection of series, one per
// dimension. An instance owns its series; the same series must not be
// shared between instances. Each contained series carries an internal
// listener so that child mutations invalidate exactly the dependent
// aggregate group and re-emit a notification to the instance's own
// subscribers.
//
// Label state is one of unlabeled, classified (an index into a shared
// vocabulary), or a regression target. Setting one clears the other.
//
// Instances assume a single writer and are not safe for concurrent use.
type Instance struct {
	dims         []*timeseries.Series
	dimListeners []*timeseries.Listener

	vocab *label.Vocabulary

	kind       labelKind
	classIndex int
	target     float64

	minLength     memo.Cell[int]
	maxLength     memo.Cell[int]
	equalLength   memo.Cell[bool]
	hasMissing    memo.Cell[bool]
	equallySpaced memo.Cell[bool]
	hasTimestamps memo.Cell[bool]

	listeners []*Listener
}

// New returns an empty unlabeled instance.
func New() *Instance {
	return &Instance{}
}

// FromValues returns an instance with one dimension per row of vals.
func FromValues(vals [][]float64) *Instance {
	inst := New()
	for _, v := range vals {
		inst.Add(timeseries.New(v...))
	}
	return inst
}

// FromSeries returns an instance owning the given series as its
// dimensions.
func FromSeries(dims []*timeseries.Series) *Instance {
	inst := New()
	for _, s := range dims {
		inst.Add(s)
	}
	return inst
}

// FromClassifiedValues returns an instance built from vals, classified
// with the given index into vocab.
func FromClassifiedValues(vals [][]float64, classIndex int, vocab *label.Vocabulary) (*Instance, error) {
	inst := FromValues(vals)
	inst.vocab = vocab
	if err := inst.SetClassIndex(classIndex); err != nil {
		return nil, err
	}
	return inst, nil
}

// FromRegressionValues returns an instance built from vals with a
// regression target.
func FromRegressionValues(vals [][]float64, target float64) *Instance {
	inst := FromValues(vals)
	inst.SetTarget(target)
	return inst
}

// Add appends a series as the last dimension and subscribes an internal
// listener to it.
func (inst *Instance) Add(s *timeseries.Series) {
	// Insert at the tail cannot fail.
	_ = inst.Insert(len(inst.dims), s)
}

// Insert places a series at dimension position i, shifting subsequent
// dimensions.
func (inst *Instance) Insert(i int, s *timeseries.Series) error {
	if i < 0 || i > len(inst.dims) {
		return fmt.Errorf("index %d with %d dimensions, %w", i, len(inst.dims), ErrIndexOutOfRange)
	}
	l := inst.newDimListener()
	s.Subscribe(l)

	inst.dims = append(inst.dims, nil)
	copy(inst.dims[i+1:], inst.dims[i:])
	inst.dims[i] = s

	inst.dimListeners = append(inst.dimListeners, nil)
	copy(inst.dimListeners[i+1:], inst.dimListeners[i:])
	inst.dimListeners[i] = l

	inst.invalidateValues()
	inst.invalidateTimestamps()
	inst.notifyDimensionChange()
	return nil
}

// Remove deletes the dimension at position i, unsubscribing its
// internal listener, and returns the removed series.
func (inst *Instance) Remove(i int) (*timeseries.Series, error) {
	if i < 0 || i >= len(inst.dims) {
		return nil, fmt.Errorf("index %d with %d dimensions, %w", i, len(inst.dims), ErrIndexOutOfRange)
	}
	removed := inst.dims[i]
	removed.Unsubscribe(inst.dimListeners[i])

	inst.dims = append(inst.dims[:i], inst.dims[i+1:]...)
	inst.dimListeners = append(inst.dimListeners[:i], inst.dimListeners[i+1:]...)

	inst.invalidateValues()
	inst.invalidateTimestamps()
	inst.notifyDimensionChange()
	return removed, nil
}

// Set replaces the dimension at position i, unsubscribing the previous
// series' listener before subscribing to the new one, and returns the
// previous series.
func (inst *Instance) Set(i int, s *timeseries.Series) (*timeseries.Series, error) {
	if i < 0 || i >= len(inst.dims) {
		return nil, fmt.Errorf("index %d with %d dimensions, %w", i, len(inst.dims), ErrIndexOutOfRange)
	}
	previous := inst.dims[i]
	previous.Unsubscribe(inst.dimListeners[i])

	l := inst.newDimListener()
	s.Subscribe(l)
	inst.dims[i] = s
	inst.dimListeners[i] = l

	inst.invalidateValues()
	inst.invalidateTimestamps()
	inst.notifyDimensionChange()
	return previous, nil
}

// SetSeries replaces all dimensions with the given series.
func (inst *Instance) SetSeries(dims []*timeseries.Series) {
	for i, s := range inst.dims {
		s.Unsubscribe(inst.dimListeners[i])
	}
	inst.dims = inst.dims[:0]
	inst.dimListeners = inst.dimListeners[:0]
	for _, s := range dims {
		l := inst.newDimListener()
		s.Subscribe(l)
		inst.dims = append(inst.dims, s)
		inst.dimListeners = append(inst.dimListeners, l)
	}
	inst.invalidateValues()
	inst.invalidateTimestamps()
	inst.notifyDimensionChange()
}

// Dimension returns the series at dimension position i.
func (inst *Instance) Dimension(i int) (*timeseries.Series, error) {
	if i < 0 || i >= len(inst.dims) {
		return nil, fmt.Errorf("index %d with %d dimensions, %w", i, len(inst.dims), ErrIndexOutOfRange)
	}
	return inst.dims[i], nil
}

func (inst *Instance) NumDimensions() int {
	return len(inst.dims)
}

func (inst *Instance) IsUnivariate() bool {
	return len(inst.dims) == 1
}

func (inst *Instance) IsMultivariate() bool {
	return len(inst.dims) > 1
}

// MinLength returns the shortest dimension length, 0 when empty.
func (inst *Instance) MinLength() int {
	return inst.minLength.Get(func() int {
		var min int
		for i, d := range inst.dims {
			if i == 0 || d.Len() < min {
				min = d.Len()
			}
		}
		return min
	})
}

// MaxLength returns the longest dimension length, 0 when empty.
func (inst *Instance) MaxLength() int {
	return inst.maxLength.Get(func() int {
		var max int
		for _, d := range inst.dims {
			if d.Len() > max {
				max = d.Len()
			}
		}
		return max
	})
}

// IsEqualLength reports whether all dimensions have identical length.
// An empty instance reports false.
func (inst *Instance) IsEqualLength() bool {
	return inst.equalLength.Get(func() bool {
		if len(inst.dims) == 0 {
			return false
		}
		length := inst.dims[0].Len()
		for _, d := range inst.dims[1:] {
			if d.Len() != length {
				return false
			}
		}
		return true
	})
}

// HasMissing reports whether any dimension holds a NaN value.
func (inst *Instance) HasMissing() bool {
	return inst.hasMissing.Get(func() bool {
		for _, d := range inst.dims {
			if d.HasMissing() {
				return true
			}
		}
		return false
	})
}

// IsEquallySpaced reports whether every dimension is equally spaced
// and, when several dimensions carry timestamps, that they agree on a
// single spacing value.
func (inst *Instance) IsEquallySpaced() bool {
	return inst.equallySpaced.Get(func() bool {
		spacing := math.NaN()
		for _, d := range inst.dims {
			if !d.IsEquallySpaced() {
				return false
			}
			sp, ok := d.Spacing()
			if !ok {
				continue
			}
			if !math.IsNaN(spacing) && sp != spacing {
				return false
			}
			spacing = sp
		}
		return true
	})
}

// HasTimestamps reports whether every dimension carries timestamps.
func (inst *Instance) HasTimestamps() bool {
	return inst.hasTimestamps.Get(func() bool {
		for _, d := range inst.dims {
			if !d.HasTimestamps() {
				return false
			}
		}
		return len(inst.dims) > 0
	})
}

// Clone returns a deep copy of the instance, carrying label state and
// the vocabulary reference. Listeners are not carried over.
func (inst *Instance) Clone() *Instance {
	clone := New()
	for _, d := range inst.dims {
		clone.Add(d.Clone())
	}
	clone.vocab = inst.vocab
	clone.kind = inst.kind
	clone.classIndex = inst.classIndex
	clone.target = inst.target
	return clone
}

// Equal compares dimensions and label state. The vocabulary reference
// is not compared.
func (inst *Instance) Equal(other *Instance) bool {
	if inst == other {
		return true
	}
	if other == nil {
		return false
	}
	if len(inst.dims) != len(other.dims) {
		return false
	}
	for i, d := range inst.dims {
		if !d.Equal(other.dims[i]) {
			return false
		}
	}
	if inst.kind != other.kind {
		return false
	}
	switch inst.kind {
	case classified:
		return inst.classIndex == other.classIndex
	case regression:
		return inst.target == other.target ||
			(math.IsNaN(inst.target) && math.IsNaN(other.target))
	}
	return true
}

func (inst *Instance) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Num Dimensions: %d", len(inst.dims))
	switch inst.kind {
	case classified:
		fmt.Fprintf(&sb, " Class Index: %d", inst.classIndex)
	case regression:
		fmt.Fprintf(&sb, " Target: %g", inst.target)
	}
	for _, d := range inst.dims {
		sb.WriteByte('\n')
		sb.WriteString(d.String())
	}
	return sb.String()
}
