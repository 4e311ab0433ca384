package label

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrNotFitted       = errors.New("vocabulary has not been fit")
	ErrLabelNotFound   = errors.New("label not in vocabulary")
	ErrIndexOutOfRange = errors.New("label index out of range")
	ErrDuplicateLabel  = errors.New("label already in vocabulary")
)

// Vocabulary is an ordered set of unique label strings with a stable
// bidirectional label/index mapping. The index map is derived from the
// label order; two vocabularies are equal when their label sequences
// are equal. A Vocabulary is shared by reference between a dataset and
// its instances.
type Vocabulary struct {
	labels []string
	index  map[string]int
}

// New returns a vocabulary fit on the given labels. Unlike the zero
// value, which reports ErrNotFitted until Fit is called, a vocabulary
// built with New counts as fit even when given no labels and reports
// ErrLabelNotFound for unknown lookups.
func New(labels ...string) *Vocabulary {
	v := &Vocabulary{}
	v.Fit(labels)
	return v
}

// Fit rebuilds the vocabulary from a raw label sequence, keeping the
// first-seen order of each unique label. Callers wanting a sorted
// vocabulary should sort the input beforehand.
func (v *Vocabulary) Fit(labels []string) {
	v.labels = v.labels[:0]
	v.index = make(map[string]int, len(labels))
	for _, l := range labels {
		if _, ok := v.index[l]; ok {
			continue
		}
		v.index[l] = len(v.labels)
		v.labels = append(v.labels, l)
	}
}

// FitTransform fits on labels and returns the index of every input
// label in the resulting vocabulary.
func (v *Vocabulary) FitTransform(labels []string) []int {
	v.Fit(labels)
	out := make([]int, len(labels))
	for i, l := range labels {
		out[i] = v.index[l]
	}
	return out
}

// Transform returns the index assigned to label.
func (v *Vocabulary) Transform(lbl string) (int, error) {
	if v.index == nil {
		return 0, ErrNotFitted
	}
	i, ok := v.index[lbl]
	if !ok {
		return 0, fmt.Errorf("label %q, %w", lbl, ErrLabelNotFound)
	}
	return i, nil
}

// TransformAll maps every label to its index, failing on the first
// unknown label.
func (v *Vocabulary) TransformAll(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		idx, err := v.Transform(l)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// InverseTransform returns the label assigned to index i.
func (v *Vocabulary) InverseTransform(i int) (string, error) {
	if v.index == nil {
		return "", ErrNotFitted
	}
	if i < 0 || i >= len(v.labels) {
		return "", fmt.Errorf("index %d with %d labels, %w", i, len(v.labels), ErrIndexOutOfRange)
	}
	return v.labels[i], nil
}

// InverseTransformAll maps every index back to its label, failing on
// the first out-of-range index.
func (v *Vocabulary) InverseTransformAll(indexes []int) ([]string, error) {
	out := make([]string, len(indexes))
	for i, idx := range indexes {
		l, err := v.InverseTransform(idx)
		if err != nil {
			return nil, err
		}
		out[i] = l
	}
	return out, nil
}

func (v *Vocabulary) Len() int {
	return len(v.labels)
}

func (v *Vocabulary) Contains(lbl string) bool {
	_, ok := v.index[lbl]
	return ok
}

// Labels returns a copy of the label sequence.
func (v *Vocabulary) Labels() []string {
	labels := make([]string, len(v.labels))
	copy(labels, v.labels)
	return labels
}

// Insert adds a label at position i, shifting the indices of all
// subsequent labels up by one.
func (v *Vocabulary) Insert(i int, lbl string) error {
	if v.index == nil {
		v.index = make(map[string]int)
	}
	if i < 0 || i > len(v.labels) {
		return fmt.Errorf("index %d with %d labels, %w", i, len(v.labels), ErrIndexOutOfRange)
	}
	if _, ok := v.index[lbl]; ok {
		return fmt.Errorf("label %q, %w", lbl, ErrDuplicateLabel)
	}
	v.labels = slices.Insert(v.labels, i, lbl)
	for j := i; j < len(v.labels); j++ {
		v.index[v.labels[j]] = j
	}
	return nil
}

// Add appends a label at the end of the vocabulary.
func (v *Vocabulary) Add(lbl string) error {
	return v.Insert(len(v.labels), lbl)
}

// Remove deletes the label at position i, shifting the indices of all
// subsequent labels down by one.
func (v *Vocabulary) Remove(i int) (string, error) {
	if i < 0 || i >= len(v.labels) {
		return "", fmt.Errorf("index %d with %d labels, %w", i, len(v.labels), ErrIndexOutOfRange)
	}
	lbl := v.labels[i]
	v.labels = slices.Delete(v.labels, i, i+1)
	delete(v.index, lbl)
	for j := i; j < len(v.labels); j++ {
		v.index[v.labels[j]] = j
	}
	return lbl, nil
}

// Equal compares vocabularies by label sequence only.
func (v *Vocabulary) Equal(other *Vocabulary) bool {
	if v == other {
		return true
	}
	if other == nil {
		return false
	}
	return slices.Equal(v.labels, other.labels)
}

func (v *Vocabulary) Clone() *Vocabulary {
	if v.index == nil {
		return &Vocabulary{}
	}
	return New(v.labels...)
}

func (v *Vocabulary) String() string {
	return "[" + strings.Join(v.labels, ",") + "]"
}
