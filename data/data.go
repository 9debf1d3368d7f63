// Copyright 2026 The Straight Dope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides mini-batch iteration over in-memory datasets.
//
// Example:
//
//	it, _ := data.NewBatchIterator(features, labels, 4, true, 42)
//	for epoch := 0; epoch < 10; epoch++ {
//	    for x, y, ok := it.Next(); ok; x, y, ok = it.Next() {
//	        // train on (x, y)
//	    }
//	    it.Reset()
//	}
package data

import (
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/data"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// BatchIterator walks a dataset in mini-batches.
type BatchIterator[T tensor.DType, B tensor.Backend] = data.BatchIterator[T, B]

// NewBatchIterator creates an iterator over features and labels.
func NewBatchIterator[T tensor.DType, B tensor.Backend](
	features, labels *tensor.Tensor[T, B],
	batchSize int,
	shuffle bool,
	seed int64,
) (*BatchIterator[T, B], error) {
	return data.NewBatchIterator(features, labels, batchSize, shuffle, seed)
}
