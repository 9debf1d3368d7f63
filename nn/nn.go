// Copyright 2026 The Straight Dope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides building blocks for linear models.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	model := nn.NewLinear[float32](2, 1, backend)
//
//	var loss *tensor.Tensor[float32, *autodiff.Backend[*cpu.Backend]]
//	backend.Record(func() {
//	    pred := model.Forward(x)
//	    loss = nn.MSELoss(pred, y)
//	})
package nn

import (
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/nn"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// Module is a trainable component.
type Module[T tensor.DType, B tensor.Backend] = nn.Module[T, B]

// Linear is a fully-connected layer: y = x @ W + b.
type Linear[T tensor.DType, B tensor.Backend] = nn.Linear[T, B]

// NewLinear creates a linear layer with freshly initialized parameters.
func NewLinear[T tensor.DType, B tensor.Backend](in, out int, b B) *Linear[T, B] {
	return nn.NewLinear[T, B](in, out, b)
}

// SquaredError returns the element-wise squared difference (pred - target)².
func SquaredError[T tensor.DType, B tensor.Backend](pred, target *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.SquaredError(pred, target)
}

// MSELoss returns the mean squared error as a scalar tensor.
func MSELoss[T tensor.DType, B tensor.Backend](pred, target *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.MSELoss(pred, target)
}
