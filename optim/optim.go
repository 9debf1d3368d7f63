// Copyright 2026 The Straight Dope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter optimizers.
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), 0.03)
//	// after Backward:
//	sgd.Step()
//	sgd.ZeroGrad()
package optim

import (
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/optim"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// Optimizer updates trainable parameters from their gradients.
type Optimizer = optim.Optimizer

// SGD is plain stochastic gradient descent.
type SGD[T tensor.DType, B tensor.Backend] = optim.SGD[T, B]

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD[T tensor.DType, B tensor.Backend](params []*tensor.Tensor[T, B], lr float64) *SGD[T, B] {
	return optim.NewSGD(params, lr)
}
