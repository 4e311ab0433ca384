package simulate

import (
	"math/rand/v2"

	"github.com/tsmlgo/go-tsdata/dataset"
	"github.com/tsmlgo/go-tsdata/instance"
	"github.com/tsmlgo/go-tsdata/label"
	"github.com/tsmlgo/go-tsdata/timeseries"
)

// Options configures synthetic dataset generation. Each class gets a
// sinusoid with a class-specific period so generated datasets remain
// separable by distance-based classifiers.
type Options struct {
	NumInstances  int
	NumDimensions int
	Length        int
	Classes       []string
	NoiseScale    float64
	MissingRate   float64
	Seed          uint64
}

func NewDefaultOptions() *Options {
	return &Options{
		NumInstances:  20,
		NumDimensions: 1,
		Length:        64,
		Classes:       []string{"a", "b"},
		NoiseScale:    0.1,
		MissingRate:   0,
		Seed:          42,
	}
}

func (opt *Options) validate() error {
	switch {
	case len(opt.Classes) == 0:
		return ErrNoClasses
	case opt.NumInstances <= 0:
		return ErrNoInstances
	case opt.NumDimensions <= 0:
		return ErrNoDimensions
	case opt.Length <= 0:
		return ErrZeroLength
	case opt.MissingRate < 0 || opt.MissingRate > 1:
		return ErrMissingRate
	}
	return nil
}

// Dataset builds a labeled synthetic dataset. Instances cycle through
// the configured classes.
func Dataset(opt *Options) (*dataset.Dataset, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if err := opt.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(opt.Seed, opt.Seed))
	vocab := label.New(opt.Classes...)
	d := dataset.New(vocab)
	d.SetName("simulated")

	for i := 0; i < opt.NumInstances; i++ {
		classIndex := i % len(opt.Classes)

		inst := instance.New()
		if err := inst.SetVocabulary(vocab); err != nil {
			return nil, err
		}
		for dim := 0; dim < opt.NumDimensions; dim++ {
			period := float64(8 * (classIndex + 1) * (dim + 1))
			y := Wave(opt.Length, 1.0, period, rng.Float64()*period).
				Add(Noise(opt.Length, opt.NoiseScale, rng)).
				WithMissing(opt.MissingRate, rng)
			inst.Add(timeseries.New(y...))
		}
		if err := inst.SetClassIndex(classIndex); err != nil {
			return nil, err
		}
		if err := d.Add(inst); err != nil {
			return nil, err
		}
	}
	return d, nil
}
