package instance

import (
	"fmt"

	"github.com/tsmlgo/go-tsdata/label"
)

// labelKind tags the mutually exclusive label states of an instance.
type labelKind int

const (
	unlabeled labelKind = iota
	classified
	regression
)

// SetClassIndex classifies the instance with an index into its
// vocabulary, clearing any regression target. The instance must hold a
// vocabulary and the index must be within its bounds.
func (inst *Instance) SetClassIndex(i int) error {
	if inst.vocab == nil {
		return ErrNoVocabulary
	}
	if i < 0 || i >= inst.vocab.Len() {
		return fmt.Errorf("class index %d with %d labels, %w", i, inst.vocab.Len(), ErrClassIndexOutOfRange)
	}
	inst.kind = classified
	inst.classIndex = i
	inst.target = 0
	inst.notifyClassChange()
	return nil
}

// SetTarget sets a regression target, clearing any class label.
func (inst *Instance) SetTarget(v float64) {
	inst.kind = regression
	inst.target = v
	inst.classIndex = 0
	inst.notifyClassChange()
}

// ClearLabel reverts the instance to the unlabeled state.
func (inst *Instance) ClearLabel() {
	if inst.kind == unlabeled {
		return
	}
	inst.kind = unlabeled
	inst.classIndex = 0
	inst.target = 0
	inst.notifyClassChange()
}

// ClassIndex returns the class index and whether the instance is
// classified.
func (inst *Instance) ClassIndex() (int, bool) {
	if inst.kind != classified {
		return 0, false
	}
	return inst.classIndex, true
}

// ClassLabel resolves the class index in the shared vocabulary.
func (inst *Instance) ClassLabel() (string, error) {
	if inst.kind != classified {
		return "", ErrNotClassified
	}
	if inst.vocab == nil {
		return "", ErrNoVocabulary
	}
	return inst.vocab.InverseTransform(inst.classIndex)
}

// Target returns the regression target and whether one is set.
func (inst *Instance) Target() (float64, bool) {
	if inst.kind != regression {
		return 0, false
	}
	return inst.target, true
}

func (inst *Instance) IsClassified() bool {
	return inst.kind == classified
}

func (inst *Instance) IsRegression() bool {
	return inst.kind == regression
}

// Vocabulary returns the shared label vocabulary reference, which may
// be nil for unlabeled or regression data.
func (inst *Instance) Vocabulary() *label.Vocabulary {
	return inst.vocab
}

// SetVocabulary swaps the shared vocabulary reference. A classified
// instance keeps its current label: the class index is re-mapped
// against the new vocabulary, failing without any state change when the
// label is absent. A classified instance whose current vocabulary is
// nil (e.g. freshly decoded) keeps its index, which must be within the
// new vocabulary's bounds.
func (inst *Instance) SetVocabulary(v *label.Vocabulary) error {
	if v == nil && inst.kind == classified {
		return ErrNilVocabulary
	}
	if inst.kind == classified {
		if inst.vocab == nil {
			if inst.classIndex < 0 || inst.classIndex >= v.Len() {
				return fmt.Errorf("class index %d with %d labels, %w", inst.classIndex, v.Len(), ErrClassIndexOutOfRange)
			}
		} else {
			lbl, err := inst.vocab.InverseTransform(inst.classIndex)
			if err != nil {
				return err
			}
			idx, err := v.Transform(lbl)
			if err != nil {
				return err
			}
			inst.classIndex = idx
		}
	}
	inst.vocab = v
	inst.notifyClassChange()
	return nil
}
