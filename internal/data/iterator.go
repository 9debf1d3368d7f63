// Package data provides mini-batch iteration over in-memory datasets.
package data

import (
	"fmt"
	"math/rand"

	"github.com/seehuhn/mt19937"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// BatchIterator walks a dataset of (features, labels) pairs in
// mini-batches. Samples are indexed along dimension 0; the final
// batch may be smaller than batchSize. With shuffle enabled the
// sample order is re-randomized on every Reset, so each epoch sees a
// different order.
//
// Batches are fresh tensors holding copies of the selected rows. They
// carry no producer records, so feeding them into a recording scope
// starts their paths at leaves.
type BatchIterator[T tensor.DType, B tensor.Backend] struct {
	features *tensor.Tensor[T, B]
	labels   *tensor.Tensor[T, B]

	batchSize int
	shuffle   bool
	rng       *rand.Rand

	order []int
	pos   int
}

// NewBatchIterator creates an iterator over features and labels.
// Both tensors must agree on the number of samples (dimension 0).
// The seed drives the shuffle order and is ignored when shuffle is
// off.
func NewBatchIterator[T tensor.DType, B tensor.Backend](
	features, labels *tensor.Tensor[T, B],
	batchSize int,
	shuffle bool,
	seed int64,
) (*BatchIterator[T, B], error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("data: batch size must be positive, got %d", batchSize)
	}
	if len(features.Shape()) == 0 || len(labels.Shape()) == 0 {
		return nil, fmt.Errorf("data: %w: features and labels must have a sample dimension",
			tensor.ErrShapeMismatch)
	}
	if features.Shape()[0] != labels.Shape()[0] {
		return nil, fmt.Errorf("data: %w: %d feature samples vs %d label samples",
			tensor.ErrShapeMismatch, features.Shape()[0], labels.Shape()[0])
	}

	it := &BatchIterator[T, B]{
		features:  features,
		labels:    labels,
		batchSize: batchSize,
		shuffle:   shuffle,
		order:     make([]int, features.Shape()[0]),
	}
	if shuffle {
		mt := mt19937.New()
		mt.Seed(seed)
		it.rng = rand.New(mt)
	}
	for i := range it.order {
		it.order[i] = i
	}
	it.Reset()
	return it, nil
}

// NumSamples returns the dataset size.
func (it *BatchIterator[T, B]) NumSamples() int {
	return len(it.order)
}

// NumBatches returns the number of batches per epoch.
func (it *BatchIterator[T, B]) NumBatches() int {
	return (len(it.order) + it.batchSize - 1) / it.batchSize
}

// Next returns the next (features, labels) batch, or ok=false when
// the epoch is exhausted. Once exhausted it keeps returning ok=false
// until Reset.
func (it *BatchIterator[T, B]) Next() (x, y *tensor.Tensor[T, B], ok bool) {
	if it.pos >= len(it.order) {
		return nil, nil, false
	}

	end := min(it.pos+it.batchSize, len(it.order))
	indices := it.order[it.pos:end]
	it.pos = end

	return gatherRows(it.features, indices), gatherRows(it.labels, indices), true
}

// Reset rewinds the iterator to the start of the epoch, reshuffling
// the sample order when shuffle is enabled.
func (it *BatchIterator[T, B]) Reset() {
	it.pos = 0
	if it.shuffle {
		it.rng.Shuffle(len(it.order), func(i, j int) {
			it.order[i], it.order[j] = it.order[j], it.order[i]
		})
	}
}

// gatherRows copies the selected samples into a fresh tensor.
func gatherRows[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], indices []int) *tensor.Tensor[T, B] {
	shape := t.Shape()
	rowLen := shape.NumElements() / shape[0]

	outShape := shape.Clone()
	outShape[0] = len(indices)

	out := tensor.Zeros[T, B](outShape, t.Backend())
	src := t.Data()
	dst := out.Data()
	for i, idx := range indices {
		copy(dst[i*rowLen:(i+1)*rowLen], src[idx*rowLen:(idx+1)*rowLen])
	}
	return out
}
