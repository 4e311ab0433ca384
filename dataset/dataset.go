package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsmlgo/go-tsdata/instance"
	"github.com/tsmlgo/go-tsdata/label"
	"github.com/tsmlgo/go-tsdata/memo"
)

var (
	ErrIndexOutOfRange       = errors.New("instance index out of range")
	ErrVocabularyMismatch    = errors.New("instance vocabulary does not match dataset vocabulary")
	ErrLabelNotInVocabulary  = errors.New("label missing from new vocabulary")
	ErrNilVocabulary         = errors.New("nil label vocabulary")
	ErrClassIndexLenMismatch = errors.New("class indexes have a different length than values")
)

// Dataset is a mutable ordered collection of instances sharing one
// label vocabulary by reference. Instances whose vocabulary reference
// differs are rejected rather than re-encoded, preventing silent index
// corruption when merging datasets with different label sets.
//
// Dataset-wide aggregates are computed lazily and memoized; per-instance
// listeners invalidate exactly the aggregate group affected by a child
// mutation. Datasets assume a single writer and are not safe for
// concurrent use.
type Dataset struct {
	name        string
	description string

	vocab         *label.Vocabulary
	instances     []*instance.Instance
	instListeners []*instance.Listener

	minLength     memo.Cell[int]
	maxLength     memo.Cell[int]
	minDims       memo.Cell[int]
	maxDims       memo.Cell[int]
	hasMissing    memo.Cell[bool]
	equallySpaced memo.Cell[bool]
	multivariate  memo.Cell[bool]
	hasTimestamps memo.Cell[bool]
	classCounts   memo.Cell[[]int]
}

// New returns an empty dataset sharing the given vocabulary. A nil
// vocabulary builds a regression or unlabeled dataset.
func New(vocab *label.Vocabulary) *Dataset {
	return &Dataset{vocab: vocab}
}

// FromValues builds a dataset from raw nested arrays, one [][]float64
// per instance. A nil classIndexes leaves instances unlabeled;
// otherwise it must hold one class index per instance.
func FromValues(vals [][][]float64, classIndexes []int, vocab *label.Vocabulary) (*Dataset, error) {
	if classIndexes != nil && len(classIndexes) != len(vals) {
		return nil, fmt.Errorf(
			"%d class indexes with %d instances, %w",
			len(classIndexes), len(vals), ErrClassIndexLenMismatch,
		)
	}
	d := New(vocab)
	for i, instVals := range vals {
		inst := instance.FromValues(instVals)
		if vocab != nil {
			if err := inst.SetVocabulary(vocab); err != nil {
				return nil, err
			}
		}
		if classIndexes != nil {
			if err := inst.SetClassIndex(classIndexes[i]); err != nil {
				return nil, err
			}
		}
		if err := d.Add(inst); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// FromInstances builds a dataset from prebuilt instances, all of which
// must already share vocab.
func FromInstances(instances []*instance.Instance, vocab *label.Vocabulary) (*Dataset, error) {
	d := New(vocab)
	for _, inst := range instances {
		if err := d.Add(inst); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Add appends an instance. The instance's vocabulary reference must
// match the dataset's.
func (d *Dataset) Add(inst *instance.Instance) error {
	return d.Insert(len(d.instances), inst)
}

// Insert places an instance at position i, shifting subsequent
// instances.
func (d *Dataset) Insert(i int, inst *instance.Instance) error {
	if i < 0 || i > len(d.instances) {
		return fmt.Errorf("index %d with %d instances, %w", i, len(d.instances), ErrIndexOutOfRange)
	}
	if inst.Vocabulary() != d.vocab {
		return ErrVocabularyMismatch
	}
	l := d.newInstListener()
	inst.Subscribe(l)

	d.instances = append(d.instances, nil)
	copy(d.instances[i+1:], d.instances[i:])
	d.instances[i] = inst

	d.instListeners = append(d.instListeners, nil)
	copy(d.instListeners[i+1:], d.instListeners[i:])
	d.instListeners[i] = l

	d.invalidateAll()
	return nil
}

// Remove deletes the instance at position i, unsubscribing its internal
// listener, and returns the removed instance.
func (d *Dataset) Remove(i int) (*instance.Instance, error) {
	if i < 0 || i >= len(d.instances) {
		return nil, fmt.Errorf("index %d with %d instances, %w", i, len(d.instances), ErrIndexOutOfRange)
	}
	removed := d.instances[i]
	removed.Unsubscribe(d.instListeners[i])

	d.instances = append(d.instances[:i], d.instances[i+1:]...)
	d.instListeners = append(d.instListeners[:i], d.instListeners[i+1:]...)

	d.invalidateAll()
	return removed, nil
}

// Set replaces the instance at position i, unsubscribing the previous
// instance's listener first, and returns the previous instance.
func (d *Dataset) Set(i int, inst *instance.Instance) (*instance.Instance, error) {
	if i < 0 || i >= len(d.instances) {
		return nil, fmt.Errorf("index %d with %d instances, %w", i, len(d.instances), ErrIndexOutOfRange)
	}
	if inst.Vocabulary() != d.vocab {
		return nil, ErrVocabularyMismatch
	}
	previous := d.instances[i]
	previous.Unsubscribe(d.instListeners[i])

	l := d.newInstListener()
	inst.Subscribe(l)
	d.instances[i] = inst
	d.instListeners[i] = l

	d.invalidateAll()
	return previous, nil
}

// At returns the instance at position i.
func (d *Dataset) At(i int) (*instance.Instance, error) {
	if i < 0 || i >= len(d.instances) {
		return nil, fmt.Errorf("index %d with %d instances, %w", i, len(d.instances), ErrIndexOutOfRange)
	}
	return d.instances[i], nil
}

func (d *Dataset) NumInstances() int {
	return len(d.instances)
}

// Vocabulary returns the shared label vocabulary, which may be nil.
func (d *Dataset) Vocabulary() *label.Vocabulary {
	return d.vocab
}

// SetVocabulary swaps the shared vocabulary, re-mapping every
// classified instance's index so each keeps its current label under the
// new vocabulary order. The swap is all-or-nothing: when any current
// label is absent from the new vocabulary the dataset is left unchanged.
func (d *Dataset) SetVocabulary(v *label.Vocabulary) error {
	if v == nil {
		return ErrNilVocabulary
	}
	// validate every label first so a failure leaves all instances
	// untouched
	for _, inst := range d.instances {
		lbl, err := inst.ClassLabel()
		if errors.Is(err, instance.ErrNotClassified) {
			continue
		}
		if err != nil {
			return err
		}
		if !v.Contains(lbl) {
			return fmt.Errorf("label %q, %w", lbl, ErrLabelNotInVocabulary)
		}
	}
	for _, inst := range d.instances {
		if err := inst.SetVocabulary(v); err != nil {
			return err
		}
	}
	d.vocab = v
	d.classCounts.Invalidate()
	return nil
}

func (d *Dataset) Name() string               { return d.name }
func (d *Dataset) SetName(name string)        { d.name = name }
func (d *Dataset) Description() string        { return d.description }
func (d *Dataset) SetDescription(desc string) { d.description = desc }

func (d *Dataset) String() string {
	var sb strings.Builder
	if d.vocab != nil {
		sb.WriteString("Labels: ")
		sb.WriteString(d.vocab.String())
		sb.WriteByte('\n')
	}
	for _, inst := range d.instances {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// newInstListener builds the internal listener subscribed to a
// contained instance, classing invalidation by notification kind.
func (d *Dataset) newInstListener() *instance.Listener {
	return &instance.Listener{
		OnClassChange: func() {
			d.classCounts.Invalidate()
		},
		OnValueChange: func() {
			d.invalidateValues()
		},
		OnTimestampChange: func() {
			d.invalidateTimestamps()
		},
		OnDimensionChange: func() {
			// dimension changes move lengths, spacing, and missing
			// values along with dimensionality
			d.invalidateValues()
			d.invalidateTimestamps()
			d.invalidateDimensions()
		},
	}
}

func (d *Dataset) invalidateValues() {
	d.hasMissing.Invalidate()
	d.minLength.Invalidate()
	d.maxLength.Invalidate()
}

func (d *Dataset) invalidateTimestamps() {
	d.equallySpaced.Invalidate()
	d.hasTimestamps.Invalidate()
}

func (d *Dataset) invalidateDimensions() {
	d.minDims.Invalidate()
	d.maxDims.Invalidate()
	d.multivariate.Invalidate()
}

func (d *Dataset) invalidateAll() {
	d.invalidateValues()
	d.invalidateTimestamps()
	d.invalidateDimensions()
	d.classCounts.Invalidate()
}
