package timeseries

import (
	"encoding/json"
	"math"
)

// seriesJSON is the wire form of a series. NaN has no JSON encoding so
// missing values round-trip as null.
type seriesJSON struct {
	Values     []*float64 `json:"values"`
	Timestamps []float64  `json:"timestamps,omitempty"`
}

func (s *Series) MarshalJSON() ([]byte, error) {
	sj := seriesJSON{
		Values:     toNullable(s.values),
		Timestamps: s.timestamps,
	}
	return json.Marshal(sj)
}

func (s *Series) UnmarshalJSON(data []byte) error {
	var sj seriesJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	s.SetValues(fromNullable(sj.Values))
	if sj.Timestamps != nil {
		return s.SetTimestamps(sj.Timestamps)
	}
	s.ClearTimestamps()
	return nil
}

func toNullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if !math.IsNaN(values[i]) {
			out[i] = &values[i]
		}
	}
	return out
}

func fromNullable(values []*float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	return out
}
