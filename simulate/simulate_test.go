package simulate

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rickar/cal/v2/us"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWave(t *testing.T) {
	y := Wave(8, 2.0, 8, 0)
	require.Len(t, y, 8)
	assert.InDelta(t, 0.0, y[0], 1e-12)
	assert.InDelta(t, 2.0, y[2], 1e-12)
}

func TestAdd(t *testing.T) {
	y := Constant(3, 1).Add(Drift(3, 2))
	assert.Equal(t, Values{1, 3, 5}, y)
}

func TestWithMissing(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	y := Constant(100, 1).WithMissing(1.0, rng)
	for _, v := range y {
		assert.True(t, math.IsNaN(v))
	}

	y = Constant(100, 1).WithMissing(0.0, rng)
	for _, v := range y {
		assert.Equal(t, 1.0, v)
	}
}

func TestTimestamps(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, Timestamps(3, 0.5))
}

func TestWeekendMask(t *testing.T) {
	// 2024-01-05 is a Friday
	days := DateTimestamps(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 4, 24*time.Hour)
	assert.Equal(t, Values{0, 1, 1, 0}, WeekendMask(days))
}

func TestHolidayMask(t *testing.T) {
	days := DateTimestamps(time.Date(2023, 12, 23, 0, 0, 0, 0, time.UTC), 5, 24*time.Hour)
	mask := HolidayMask(days, us.ChristmasDay)
	assert.Equal(t, 1.0, mask[2])
	assert.Equal(t, 0.0, mask[0])
}

func TestDataset(t *testing.T) {
	opt := NewDefaultOptions()
	opt.NumInstances = 6
	opt.NumDimensions = 2
	opt.Length = 32
	opt.Classes = []string{"a", "b", "c"}

	ds, err := Dataset(opt)
	require.NoError(t, err)

	assert.Equal(t, 6, ds.NumInstances())
	assert.Equal(t, []int{2, 2, 2}, ds.ClassCounts())
	assert.Equal(t, 32, ds.MinLength())
	assert.Equal(t, 32, ds.MaxLength())
	assert.True(t, ds.IsEqualLength())
	assert.True(t, ds.IsMultivariate())
	assert.False(t, ds.HasMissing())
}

func TestDatasetWithMissing(t *testing.T) {
	opt := NewDefaultOptions()
	opt.MissingRate = 1.0

	ds, err := Dataset(opt)
	require.NoError(t, err)
	assert.True(t, ds.HasMissing())
}

func TestDatasetValidation(t *testing.T) {
	testData := map[string]struct {
		modify func(*Options)
		err    error
	}{
		"no classes": {
			modify: func(o *Options) { o.Classes = nil },
			err:    ErrNoClasses,
		},
		"no instances": {
			modify: func(o *Options) { o.NumInstances = 0 },
			err:    ErrNoInstances,
		},
		"no dimensions": {
			modify: func(o *Options) { o.NumDimensions = -1 },
			err:    ErrNoDimensions,
		},
		"zero length": {
			modify: func(o *Options) { o.Length = 0 },
			err:    ErrZeroLength,
		},
		"bad missing rate": {
			modify: func(o *Options) { o.MissingRate = 1.5 },
			err:    ErrMissingRate,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt := NewDefaultOptions()
			td.modify(opt)
			_, err := Dataset(opt)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestDatasetDeterministic(t *testing.T) {
	a, err := Dataset(nil)
	require.NoError(t, err)
	b, err := Dataset(nil)
	require.NoError(t, err)

	instA, err := a.At(0)
	require.NoError(t, err)
	instB, err := b.At(0)
	require.NoError(t, err)
	assert.True(t, instA.Equal(instB))
}
