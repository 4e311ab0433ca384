package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		expected float64
		err      error
	}{
		"plain": {
			y:        []float64{1, 2, 3},
			expected: 2,
		},
		"skips missing": {
			y:        []float64{1, math.NaN(), 3},
			expected: 2,
		},
		"all missing": {
			y:   []float64{math.NaN()},
			err: ErrNoFiniteValues,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got, err := Mean(td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, td.expected, got, 1e-12)
		})
	}
}

func TestStdDev(t *testing.T) {
	got, err := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)

	_, err = StdDev(nil)
	assert.ErrorIs(t, err, ErrNoFiniteValues)
}

func TestNormalize(t *testing.T) {
	got, err := Normalize([]float64{1, math.NaN(), 3})
	require.NoError(t, err)

	assert.InDelta(t, -1.0, got[0], 1e-12)
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 1.0, got[2], 1e-12)

	// constant series maps to zeros
	got, err = Normalize([]float64{5, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, got)
}

func TestMinMaxScale(t *testing.T) {
	got, err := MinMaxScale([]float64{0, math.NaN(), 5, 10})
	require.NoError(t, err)

	assert.Equal(t, 0.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 0.5, got[2])
	assert.Equal(t, 1.0, got[3])

	got, err = MinMaxScale([]float64{3, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, got)
}

func TestDetectOutliers(t *testing.T) {
	y := []float64{1, 1.1, 0.9, 1.05, 0.95, 12, math.NaN()}
	got := DetectOutliers(y, 0.25, 0.75, 1.5)
	assert.Equal(t, []int{5}, got)

	assert.Nil(t, DetectOutliers([]float64{math.NaN()}, 0.25, 0.75, 1.5))
}
