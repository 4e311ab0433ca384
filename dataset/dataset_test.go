package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsmlgo/go-tsdata/instance"
	"github.com/tsmlgo/go-tsdata/label"
	"github.com/tsmlgo/go-tsdata/timeseries"
)

func buildDataset(t *testing.T) (*Dataset, *label.Vocabulary) {
	t.Helper()
	vocab := label.New("a", "b")
	d, err := FromValues(
		[][][]float64{
			{{1, 2, 3}, {4, 5, 6}},
			{{7, 8}, {9, 10}},
		},
		[]int{0, 1},
		vocab,
	)
	require.NoError(t, err)
	return d, vocab
}

func TestFromValues(t *testing.T) {
	d, _ := buildDataset(t)

	assert.Equal(t, 2, d.NumInstances())
	assert.Equal(t, []int{0, 1}, d.ClassIndexes())
	assert.Equal(t, 2, d.MinLength())
	assert.Equal(t, 3, d.MaxLength())
	assert.Equal(t, 2, d.MinNumDimensions())
	assert.Equal(t, 2, d.MaxNumDimensions())
	assert.False(t, d.IsEqualLength())
	assert.True(t, d.IsMultivariate())
}

func TestFromValuesClassIndexLenMismatch(t *testing.T) {
	_, err := FromValues([][][]float64{{{1}}}, []int{0, 1}, label.New("a"))
	assert.ErrorIs(t, err, ErrClassIndexLenMismatch)
}

func TestAddVocabularyMismatch(t *testing.T) {
	d, _ := buildDataset(t)

	other, err := instance.FromClassifiedValues([][]float64{{1}}, 0, label.New("a", "b"))
	require.NoError(t, err)

	// equal labels but a different vocabulary reference is rejected
	assert.ErrorIs(t, d.Add(other), ErrVocabularyMismatch)
	_, err = d.Set(0, other)
	assert.ErrorIs(t, err, ErrVocabularyMismatch)
	assert.Equal(t, 2, d.NumInstances())
}

func TestAddRemoveSet(t *testing.T) {
	d, vocab := buildDataset(t)

	inst, err := instance.FromClassifiedValues([][]float64{{1}}, 0, vocab)
	require.NoError(t, err)
	require.NoError(t, d.Insert(0, inst))
	assert.Equal(t, 3, d.NumInstances())
	assert.Equal(t, 1, d.MinLength())
	assert.Equal(t, 1, d.MinNumDimensions())

	removed, err := d.Remove(0)
	require.NoError(t, err)
	assert.Same(t, inst, removed)
	assert.Equal(t, 2, d.MinLength())

	replacement, err := instance.FromClassifiedValues([][]float64{{1, 2, 3, 4}}, 1, vocab)
	require.NoError(t, err)
	previous, err := d.Set(1, replacement)
	require.NoError(t, err)
	assert.NotNil(t, previous)
	assert.Equal(t, 4, d.MaxLength())
}

func TestIndexOutOfRange(t *testing.T) {
	d, vocab := buildDataset(t)
	inst := instance.New()
	require.NoError(t, inst.SetVocabulary(vocab))

	assert.ErrorIs(t, d.Insert(5, inst), ErrIndexOutOfRange)
	_, err := d.Remove(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = d.Set(-1, inst)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = d.At(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestClassCounts(t *testing.T) {
	d, vocab := buildDataset(t)
	assert.Equal(t, []int{1, 1}, d.ClassCounts())

	inst, err := instance.FromClassifiedValues([][]float64{{1}}, 0, vocab)
	require.NoError(t, err)
	require.NoError(t, d.Add(inst))
	assert.Equal(t, []int{2, 1}, d.ClassCounts())

	// relabeling an instance invalidates the histogram
	require.NoError(t, inst.SetClassIndex(1))
	assert.Equal(t, []int{1, 2}, d.ClassCounts())

	// returned histogram is a copy
	counts := d.ClassCounts()
	counts[0] = 99
	assert.Equal(t, []int{1, 2}, d.ClassCounts())
}

func TestDeepListenerPropagation(t *testing.T) {
	vocab := label.New("a")
	d, err := FromValues(
		[][][]float64{{{1, 2}}, {{3, 4}}},
		[]int{0, 0},
		vocab,
	)
	require.NoError(t, err)
	require.False(t, d.HasMissing())

	// mutate a series nested two levels down; the dataset aggregate
	// must recompute on next read without a manual refresh
	inst, err := d.At(0)
	require.NoError(t, err)
	dim, err := inst.Dimension(0)
	require.NoError(t, err)
	require.NoError(t, dim.Set(1, math.NaN()))

	other, err := d.At(1)
	require.NoError(t, err)
	otherDim, err := other.Dimension(0)
	require.NoError(t, err)
	require.NoError(t, otherDim.Set(0, math.NaN()))

	assert.True(t, d.HasMissing())

	require.NoError(t, otherDim.Set(0, 3))
	assert.False(t, d.HasMissing())
}

func TestDeepTimestampPropagation(t *testing.T) {
	d, _ := buildDataset(t)
	require.True(t, d.IsEquallySpaced())

	inst, err := d.At(0)
	require.NoError(t, err)
	dim, err := inst.Dimension(0)
	require.NoError(t, err)
	require.NoError(t, dim.SetTimestamps([]float64{0, 1, 5}))

	assert.False(t, d.IsEquallySpaced())
}

func TestDimensionChangePropagation(t *testing.T) {
	d, _ := buildDataset(t)
	require.Equal(t, 2, d.MinNumDimensions())

	inst, err := d.At(0)
	require.NoError(t, err)
	_, err = inst.Remove(0)
	require.NoError(t, err)

	assert.Equal(t, 1, d.MinNumDimensions())
	assert.False(t, d.IsMultivariate())
}

func TestRemovedInstanceStopsPropagating(t *testing.T) {
	d, _ := buildDataset(t)

	removed, err := d.Remove(1)
	require.NoError(t, err)
	require.Equal(t, 3, d.MinLength())

	// mutations on the removed instance no longer affect the dataset
	dim, err := removed.Dimension(0)
	require.NoError(t, err)
	_, err = dim.Remove(0)
	require.NoError(t, err)

	assert.Equal(t, 3, d.MinLength())
}

func TestSetVocabularyReindexes(t *testing.T) {
	vocab := label.New("a", "b")
	d, err := FromValues([][][]float64{{{1}}}, []int{1}, vocab)
	require.NoError(t, err)

	inst, err := d.At(0)
	require.NoError(t, err)
	lbl, err := inst.ClassLabel()
	require.NoError(t, err)
	require.Equal(t, "b", lbl)

	next := label.New("b", "a")
	require.NoError(t, d.SetVocabulary(next))

	// label preserved, index re-mapped to the new vocabulary order
	lbl, err = inst.ClassLabel()
	require.NoError(t, err)
	assert.Equal(t, "b", lbl)
	idx, ok := inst.ClassIndex()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Same(t, next, d.Vocabulary())
	assert.Same(t, next, inst.Vocabulary())
	assert.Equal(t, []int{1, 0}, d.ClassCounts())
}

func TestSetVocabularyAtomicFailure(t *testing.T) {
	vocab := label.New("a", "b")
	d, err := FromValues([][][]float64{{{1}}, {{2}}}, []int{0, 1}, vocab)
	require.NoError(t, err)

	err = d.SetVocabulary(label.New("a", "c"))
	assert.ErrorIs(t, err, ErrLabelNotInVocabulary)

	// dataset unchanged
	assert.Same(t, vocab, d.Vocabulary())
	assert.Equal(t, []int{0, 1}, d.ClassIndexes())
	inst, err := d.At(0)
	require.NoError(t, err)
	assert.Same(t, vocab, inst.Vocabulary())

	assert.ErrorIs(t, d.SetVocabulary(nil), ErrNilVocabulary)
}

func TestClassCountsResizeOnVocabularyChange(t *testing.T) {
	vocab := label.New("a")
	d, err := FromValues([][][]float64{{{1}}}, []int{0}, vocab)
	require.NoError(t, err)
	require.Equal(t, []int{1}, d.ClassCounts())

	require.NoError(t, d.SetVocabulary(label.New("z", "a")))
	assert.Equal(t, []int{0, 1}, d.ClassCounts())
	assert.Equal(t, 2, d.NumClasses())
}

func TestAggregatesOnEmptyDataset(t *testing.T) {
	d := New(nil)

	assert.Equal(t, 0, d.NumInstances())
	assert.Equal(t, 0, d.MinLength())
	assert.Equal(t, 0, d.MaxLength())
	assert.False(t, d.IsEqualLength())
	assert.False(t, d.HasMissing())
	assert.False(t, d.IsMultivariate())
	assert.True(t, d.IsEquallySpaced())
	assert.Equal(t, 0, d.NumClasses())
	assert.Empty(t, d.ClassCounts())
}

func TestHasMissingAllInstances(t *testing.T) {
	vocab := label.New("a")
	d, err := FromValues(
		[][][]float64{{{math.NaN(), 1}}, {{2, 3}}},
		[]int{0, 0},
		vocab,
	)
	require.NoError(t, err)

	// missing in one instance only is not dataset-wide missing
	assert.False(t, d.HasMissing())

	inst, err := d.At(1)
	require.NoError(t, err)
	dim, err := inst.Dimension(0)
	require.NoError(t, err)
	require.NoError(t, dim.Set(0, math.NaN()))
	assert.True(t, d.HasMissing())
}

func TestVSliceAt(t *testing.T) {
	d, _ := buildDataset(t)

	got := d.VSliceAt(2)
	require.Len(t, got, 4)
	assert.Equal(t, 3.0, got[0])
	assert.Equal(t, 6.0, got[1])
	assert.True(t, math.IsNaN(got[2]))
	assert.True(t, math.IsNaN(got[3]))
}

func TestHSliceAt(t *testing.T) {
	d, _ := buildDataset(t)

	got, err := d.HSliceAt(1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 5, 6}, {9, 10}}, got)

	_, err = d.HSliceAt(2)
	assert.ErrorIs(t, err, instance.ErrIndexOutOfRange)
}

func TestToValueArray(t *testing.T) {
	d, _ := buildDataset(t)

	got := d.ToValueArray()
	require.Len(t, got, 2)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, got[0])

	// deep copy
	got[0][0][0] = 99
	inst, err := d.At(0)
	require.NoError(t, err)
	dim, err := inst.Dimension(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, dim.Values())
}

func TestLengthHistogram(t *testing.T) {
	d, _ := buildDataset(t)
	assert.Equal(t, map[int]int{3: 2, 2: 2}, d.LengthHistogram())
}

func TestAggregateMemoization(t *testing.T) {
	d, _ := buildDataset(t)

	first := d.MinLength()
	assert.Equal(t, first, d.MinLength())
	assert.Equal(t, d.HasMissing(), d.HasMissing())
	assert.Equal(t, d.ClassCounts(), d.ClassCounts())
}

func TestRegressionDataset(t *testing.T) {
	d := New(nil)
	require.NoError(t, d.Add(instance.FromRegressionValues([][]float64{{1, 2}}, 0.5)))
	require.NoError(t, d.Add(instance.FromRegressionValues([][]float64{{3, 4}}, 1.5)))

	assert.Equal(t, []int{-1, -1}, d.ClassIndexes())
	assert.Empty(t, d.ClassCounts())
	assert.Equal(t, 2, d.NumInstances())

	// instances carrying a vocabulary cannot join a nil-vocab dataset
	other, err := instance.FromClassifiedValues([][]float64{{1}}, 0, label.New("a"))
	require.NoError(t, err)
	assert.ErrorIs(t, d.Add(other), ErrVocabularyMismatch)
}

func TestSetSeriesPropagation(t *testing.T) {
	d, _ := buildDataset(t)
	inst, err := d.At(0)
	require.NoError(t, err)

	inst.SetSeries([]*timeseries.Series{timeseries.New(1)})
	assert.Equal(t, 1, d.MinLength())
	assert.Equal(t, 1, d.MinNumDimensions())
}
