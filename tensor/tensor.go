// Copyright 2026 The Straight Dope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations.
//
// The package defines the core types for type-safe array computation:
//   - Tensor[T, B]: high-level generic tensor
//   - RawTensor: low-level flat buffer with shape and dtype
//   - Backend: interface for compute implementations
//   - Shape, DataType, Device: core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
package tensor

import (
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// T is the element type (float32, float64, bool).
// B is the backend implementation.
//
// With an autodiff backend, operations performed inside a recording
// scope are captured for backpropagation; see the autodiff package.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// Backend is the interface compute backends implement.
type Backend = tensor.Backend

// GradBackend is implemented by gradient-capable backends.
type GradBackend = tensor.GradBackend

// Sentinel errors.
var (
	// ErrShapeMismatch reports incompatible operand shapes.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrNotDifferentiable reports a gradient request on a tensor
	// without an attached gradient slot.
	ErrNotDifferentiable = tensor.ErrNotDifferentiable

	// ErrNoGraph reports a backward call on a tensor that was not
	// produced in the current recording scope.
	ErrNoGraph = tensor.ErrNoGraph

	// ErrSeedShapeMismatch reports a head gradient that does not
	// match the result tensor.
	ErrSeedShapeMismatch = tensor.ErrSeedShapeMismatch
)

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Randn creates a tensor with values drawn from N(mean, stddev²).
func Randn[T DType, B Backend](shape Shape, mean, stddev float64, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, mean, stddev, b)
}

// Rand creates a tensor with values uniformly distributed in [lo, hi).
func Rand[T DType, B Backend](shape Shape, lo, hi float64, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, lo, hi, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation
// functions like Zeros, Ones, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Comparison functions (return Bool tensors, outside the gradient graph)

// Greater returns a > b element-wise.
func Greater[T DType, B Backend](a, b *Tensor[T, B]) *Tensor[bool, B] {
	return tensor.Greater(a, b)
}

// Lower returns a < b element-wise.
func Lower[T DType, B Backend](a, b *Tensor[T, B]) *Tensor[bool, B] {
	return tensor.Lower(a, b)
}

// GreaterEqual returns a >= b element-wise.
func GreaterEqual[T DType, B Backend](a, b *Tensor[T, B]) *Tensor[bool, B] {
	return tensor.GreaterEqual(a, b)
}

// LowerEqual returns a <= b element-wise.
func LowerEqual[T DType, B Backend](a, b *Tensor[T, B]) *Tensor[bool, B] {
	return tensor.LowerEqual(a, b)
}

// Equal returns a == b element-wise.
func Equal[T DType, B Backend](a, b *Tensor[T, B]) *Tensor[bool, B] {
	return tensor.Equal(a, b)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes
// following NumPy broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
