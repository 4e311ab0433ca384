package dataset

import (
	"encoding/json"

	"github.com/tsmlgo/go-tsdata/instance"
	"github.com/tsmlgo/go-tsdata/label"
)

// datasetJSON is the wire form of a dataset. The vocabulary is stored
// once as its label sequence and reattached to every instance on
// decode.
type datasetJSON struct {
	Name        string               `json:"name,omitempty"`
	Description string               `json:"description,omitempty"`
	Labels      []string             `json:"labels,omitempty"`
	Instances   []*instance.Instance `json:"instances"`
}

func (d *Dataset) MarshalJSON() ([]byte, error) {
	dj := datasetJSON{
		Name:        d.name,
		Description: d.description,
		Instances:   d.instances,
	}
	if d.vocab != nil {
		dj.Labels = d.vocab.Labels()
	}
	return json.Marshal(dj)
}

func (d *Dataset) UnmarshalJSON(data []byte) error {
	var dj datasetJSON
	if err := json.Unmarshal(data, &dj); err != nil {
		return err
	}

	var vocab *label.Vocabulary
	if dj.Labels != nil {
		vocab = label.New(dj.Labels...)
	}

	// reset in place so the internal listeners bind to this dataset
	for i, inst := range d.instances {
		inst.Unsubscribe(d.instListeners[i])
	}
	d.instances = nil
	d.instListeners = nil
	d.vocab = vocab
	d.name = dj.Name
	d.description = dj.Description
	d.invalidateAll()

	for _, inst := range dj.Instances {
		if vocab != nil {
			if err := inst.SetVocabulary(vocab); err != nil {
				return err
			}
		}
		if err := d.Add(inst); err != nil {
			return err
		}
	}
	return nil
}
