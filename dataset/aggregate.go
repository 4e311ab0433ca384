package dataset

import (
	"fmt"
)

// MinLength returns the shortest series length across all instances,
// 0 when the dataset is empty.
func (d *Dataset) MinLength() int {
	return d.minLength.Get(func() int {
		var min int
		for i, inst := range d.instances {
			if i == 0 || inst.MinLength() < min {
				min = inst.MinLength()
			}
		}
		return min
	})
}

// MaxLength returns the longest series length across all instances,
// 0 when the dataset is empty.
func (d *Dataset) MaxLength() int {
	return d.maxLength.Get(func() int {
		var max int
		for _, inst := range d.instances {
			if inst.MaxLength() > max {
				max = inst.MaxLength()
			}
		}
		return max
	})
}

// IsEqualLength reports whether every series across every instance has
// the same length. An empty dataset reports false.
func (d *Dataset) IsEqualLength() bool {
	return len(d.instances) > 0 && d.MinLength() == d.MaxLength()
}

// MinNumDimensions returns the smallest instance dimensionality, 0 when
// the dataset is empty.
func (d *Dataset) MinNumDimensions() int {
	return d.minDims.Get(func() int {
		var min int
		for i, inst := range d.instances {
			if i == 0 || inst.NumDimensions() < min {
				min = inst.NumDimensions()
			}
		}
		return min
	})
}

// MaxNumDimensions returns the largest instance dimensionality, 0 when
// the dataset is empty.
func (d *Dataset) MaxNumDimensions() int {
	return d.maxDims.Get(func() int {
		var max int
		for _, inst := range d.instances {
			if inst.NumDimensions() > max {
				max = inst.NumDimensions()
			}
		}
		return max
	})
}

// HasMissing reports whether every instance holds missing values.
func (d *Dataset) HasMissing() bool {
	return d.hasMissing.Get(func() bool {
		for _, inst := range d.instances {
			if !inst.HasMissing() {
				return false
			}
		}
		return len(d.instances) > 0
	})
}

// IsEquallySpaced reports whether every instance is equally spaced.
func (d *Dataset) IsEquallySpaced() bool {
	return d.equallySpaced.Get(func() bool {
		for _, inst := range d.instances {
			if !inst.IsEquallySpaced() {
				return false
			}
		}
		return true
	})
}

// IsMultivariate reports whether every instance is multivariate.
func (d *Dataset) IsMultivariate() bool {
	return d.multivariate.Get(func() bool {
		for _, inst := range d.instances {
			if !inst.IsMultivariate() {
				return false
			}
		}
		return len(d.instances) > 0
	})
}

// HasTimestamps reports whether every instance carries timestamps.
func (d *Dataset) HasTimestamps() bool {
	return d.hasTimestamps.Get(func() bool {
		for _, inst := range d.instances {
			if !inst.HasTimestamps() {
				return false
			}
		}
		return len(d.instances) > 0
	})
}

// NumClasses returns the vocabulary size, 0 without a vocabulary.
func (d *Dataset) NumClasses() int {
	if d.vocab == nil {
		return 0
	}
	return d.vocab.Len()
}

// ClassCounts returns a histogram of class indexes sized to the current
// vocabulary. Unclassified instances are not counted.
func (d *Dataset) ClassCounts() []int {
	counts := d.classCounts.Get(func() []int {
		if d.vocab == nil {
			return nil
		}
		counts := make([]int, d.vocab.Len())
		for _, inst := range d.instances {
			if i, ok := inst.ClassIndex(); ok && i >= 0 && i < len(counts) {
				counts[i]++
			}
		}
		return counts
	})
	out := make([]int, len(counts))
	copy(out, counts)
	return out
}

// ClassIndexes returns the class index of every instance in order, -1
// for unclassified instances.
func (d *Dataset) ClassIndexes() []int {
	out := make([]int, len(d.instances))
	for i, inst := range d.instances {
		idx, ok := inst.ClassIndex()
		if !ok {
			idx = -1
		}
		out[i] = idx
	}
	return out
}

// ClassLabels resolves every classified instance's label, -1 indexes
// excluded, failing if any index cannot be resolved.
func (d *Dataset) ClassLabels() ([]string, error) {
	out := make([]string, 0, len(d.instances))
	for _, inst := range d.instances {
		if !inst.IsClassified() {
			continue
		}
		lbl, err := inst.ClassLabel()
		if err != nil {
			return nil, fmt.Errorf("instance label, %w", err)
		}
		out = append(out, lbl)
	}
	return out, nil
}

// LengthHistogram returns a histogram of series lengths across every
// dimension of every instance.
func (d *Dataset) LengthHistogram() map[int]int {
	out := make(map[int]int)
	for _, inst := range d.instances {
		for i := 0; i < inst.NumDimensions(); i++ {
			dim, err := inst.Dimension(i)
			if err != nil {
				continue
			}
			out[dim.Len()]++
		}
	}
	return out
}
