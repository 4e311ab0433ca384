package instance

import (
	"encoding/json"
	"fmt"

	"github.com/tsmlgo/go-tsdata/timeseries"
)

// instanceJSON is the wire form of an instance. The vocabulary is
// shared dataset state and is not serialized here; decoding a
// classified instance leaves the vocabulary reference nil until
// SetVocabulary reattaches one.
type instanceJSON struct {
	Dimensions []*timeseries.Series `json:"dimensions"`
	ClassIndex *int                 `json:"class_index,omitempty"`
	Target     *float64             `json:"target,omitempty"`
}

func (inst *Instance) MarshalJSON() ([]byte, error) {
	ij := instanceJSON{
		Dimensions: inst.dims,
	}
	switch inst.kind {
	case classified:
		idx := inst.classIndex
		ij.ClassIndex = &idx
	case regression:
		target := inst.target
		ij.Target = &target
	}
	return json.Marshal(ij)
}

func (inst *Instance) UnmarshalJSON(data []byte) error {
	var ij instanceJSON
	if err := json.Unmarshal(data, &ij); err != nil {
		return err
	}
	inst.SetSeries(ij.Dimensions)
	inst.ClearLabel()
	switch {
	case ij.ClassIndex != nil:
		if *ij.ClassIndex < 0 {
			return fmt.Errorf("class index %d, %w", *ij.ClassIndex, ErrClassIndexOutOfRange)
		}
		inst.kind = classified
		inst.classIndex = *ij.ClassIndex
	case ij.Target != nil:
		inst.SetTarget(*ij.Target)
	}
	return nil
}
