// Copyright 2026 The Straight Dope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// The package wraps any compute backend with a gradient tape. Inside
// a Record scope every differentiable operation is captured; Backward
// replays the captured trace in reverse and accumulates gradients
// into slots attached with AttachGrad.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	x.AttachGrad()
//
//	var z *tensor.Tensor[float32, *autodiff.Backend[*cpu.Backend]]
//	backend.Record(func() {
//	    z = x.Mul(x).MulScalar(2) // z = 2x²
//	})
//
//	backend.Backward(z.Raw())
//	grad, _ := x.Grad() // dz/dx = 4x
package autodiff

import (
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/autodiff"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// Backend is the autodiff-enabled backend decorating an inner
// compute backend B.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}
