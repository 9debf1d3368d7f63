package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/backend/cpu"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

func dataset(t *testing.T, n int) (*tensor.Tensor[float32, *cpu.CPUBackend], *tensor.Tensor[float32, *cpu.CPUBackend]) {
	t.Helper()
	backend := cpu.New()

	// features[i] = (i, i), labels[i] = i
	featData := make([]float32, 2*n)
	labelData := make([]float32, n)
	for i := 0; i < n; i++ {
		featData[2*i] = float32(i)
		featData[2*i+1] = float32(i)
		labelData[i] = float32(i)
	}

	features, err := tensor.FromSlice(featData, tensor.Shape{n, 2}, backend)
	require.NoError(t, err)
	labels, err := tensor.FromSlice(labelData, tensor.Shape{n, 1}, backend)
	require.NoError(t, err)
	return features, labels
}

func TestBatchIteration(t *testing.T) {
	features, labels := dataset(t, 10)

	it, err := NewBatchIterator(features, labels, 3, false, 0)
	require.NoError(t, err)

	assert.Equal(t, 10, it.NumSamples())
	assert.Equal(t, 4, it.NumBatches())

	var sizes []int
	var seen []float32
	for x, y, ok := it.Next(); ok; x, y, ok = it.Next() {
		require.Equal(t, x.Shape()[0], y.Shape()[0])
		assert.Equal(t, 2, x.Shape()[1])
		sizes = append(sizes, x.Shape()[0])
		seen = append(seen, y.Data()...)
	}

	// The final batch carries the remainder.
	assert.Equal(t, []int{3, 3, 3, 1}, sizes)

	// Without shuffle the dataset order is preserved.
	for i, v := range seen {
		assert.Equal(t, float32(i), v)
	}
}

func TestExhaustionAndReset(t *testing.T) {
	features, labels := dataset(t, 4)

	it, err := NewBatchIterator(features, labels, 2, false, 0)
	require.NoError(t, err)

	for _, _, ok := it.Next(); ok; _, _, ok = it.Next() {
	}

	// Exhausted until Reset.
	_, _, ok := it.Next()
	assert.False(t, ok)
	_, _, ok = it.Next()
	assert.False(t, ok)

	it.Reset()
	x, _, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, x.Shape()[0])
}

func TestShuffleCoversAllSamples(t *testing.T) {
	features, labels := dataset(t, 20)

	it, err := NewBatchIterator(features, labels, 6, true, 7)
	require.NoError(t, err)

	seen := make(map[float32]int)
	for _, y, ok := it.Next(); ok; _, y, ok = it.Next() {
		for _, v := range y.Data() {
			seen[v]++
		}
	}

	// Every sample exactly once per epoch.
	require.Len(t, seen, 20)
	for v, count := range seen {
		assert.Equal(t, 1, count, "sample %v", v)
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	features, labels := dataset(t, 50)

	it, err := NewBatchIterator(features, labels, 50, true, 42)
	require.NoError(t, err)

	epoch := func() []float32 {
		_, y, ok := it.Next()
		require.True(t, ok)
		out := append([]float32(nil), y.Data()...)
		it.Reset()
		return out
	}

	first := epoch()
	second := epoch()

	assert.NotEqual(t, first, second, "reset should reshuffle the order")

	// Rows stay aligned with their labels: features[i] = (label, label).
	it2, err := NewBatchIterator(features, labels, 10, true, 42)
	require.NoError(t, err)
	for x, y, ok := it2.Next(); ok; x, y, ok = it2.Next() {
		xd, yd := x.Data(), y.Data()
		for i := 0; i < y.Shape()[0]; i++ {
			assert.Equal(t, yd[i], xd[2*i])
			assert.Equal(t, yd[i], xd[2*i+1])
		}
	}
}

func TestShuffleDeterministicSeed(t *testing.T) {
	features, labels := dataset(t, 30)

	a, err := NewBatchIterator(features, labels, 30, true, 123)
	require.NoError(t, err)
	b, err := NewBatchIterator(features, labels, 30, true, 123)
	require.NoError(t, err)

	_, ya, ok := a.Next()
	require.True(t, ok)
	_, yb, ok := b.Next()
	require.True(t, ok)

	assert.Equal(t, ya.Data(), yb.Data())
}

func TestIteratorValidation(t *testing.T) {
	features, labels := dataset(t, 10)

	_, err := NewBatchIterator(features, labels, 0, false, 0)
	assert.Error(t, err)

	backend := cpu.New()
	shortLabels := tensor.Zeros[float32](tensor.Shape{5, 1}, backend)
	_, err = NewBatchIterator(features, shortLabels, 2, false, 0)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
