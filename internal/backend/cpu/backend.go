// Package cpu implements the pure-Go CPU backend.
// Dense matrix multiplication is delegated to gonum's BLAS
// implementations; everything else is stride arithmetic over flat
// slices.
package cpu

import (
	"fmt"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// CPUBackend implements tensor.Backend on the CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// binaryArgs validates operand dtypes and shapes for an element-wise
// binary operation and allocates the result tensor. Shape errors
// surface before any allocation or trace mutation.
func (cpu *CPUBackend) binaryArgs(op string, a, b *tensor.RawTensor) (*tensor.RawTensor, bool) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}
	return result, needsBroadcast
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, needsBroadcast := cpu.binaryArgs("add", a, b)

	if !needsBroadcast {
		switch a.DType() {
		case tensor.Float32:
			addVec(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
		case tensor.Float64:
			addVec(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		default:
			panic("add: unsupported dtype " + a.DType().String())
		}
		return result
	}

	// Slow path: broadcasting required
	ai := buildBroadcastIndex(a.Shape(), result.Shape())
	bi := buildBroadcastIndex(b.Shape(), result.Shape())
	switch a.DType() {
	case tensor.Float32:
		addGather(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), ai, bi)
	case tensor.Float64:
		addGather(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), ai, bi)
	default:
		panic("add: unsupported dtype " + a.DType().String())
	}
	return result
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, needsBroadcast := cpu.binaryArgs("sub", a, b)

	if !needsBroadcast {
		switch a.DType() {
		case tensor.Float32:
			subVec(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
		case tensor.Float64:
			subVec(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		default:
			panic("sub: unsupported dtype " + a.DType().String())
		}
		return result
	}

	ai := buildBroadcastIndex(a.Shape(), result.Shape())
	bi := buildBroadcastIndex(b.Shape(), result.Shape())
	switch a.DType() {
	case tensor.Float32:
		subGather(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), ai, bi)
	case tensor.Float64:
		subGather(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), ai, bi)
	default:
		panic("sub: unsupported dtype " + a.DType().String())
	}
	return result
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, needsBroadcast := cpu.binaryArgs("mul", a, b)

	if !needsBroadcast {
		switch a.DType() {
		case tensor.Float32:
			mulVec(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
		case tensor.Float64:
			mulVec(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		default:
			panic("mul: unsupported dtype " + a.DType().String())
		}
		return result
	}

	ai := buildBroadcastIndex(a.Shape(), result.Shape())
	bi := buildBroadcastIndex(b.Shape(), result.Shape())
	switch a.DType() {
	case tensor.Float32:
		mulGather(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), ai, bi)
	case tensor.Float64:
		mulGather(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), ai, bi)
	default:
		panic("mul: unsupported dtype " + a.DType().String())
	}
	return result
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, needsBroadcast := cpu.binaryArgs("div", a, b)

	if !needsBroadcast {
		switch a.DType() {
		case tensor.Float32:
			divVec(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
		case tensor.Float64:
			divVec(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		default:
			panic("div: unsupported dtype " + a.DType().String())
		}
		return result
	}

	ai := buildBroadcastIndex(a.Shape(), result.Shape())
	bi := buildBroadcastIndex(b.Shape(), result.Shape())
	switch a.DType() {
	case tensor.Float32:
		divGather(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), ai, bi)
	case tensor.Float64:
		divGather(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), ai, bi)
	default:
		panic("div: unsupported dtype " + a.DType().String())
	}
	return result
}

// Reshape returns a tensor with the same data but a different shape.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Errorf("reshape: %w", err))
	}

	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Errorf("reshape: %w: %v -> %v (different number of elements)",
			tensor.ErrShapeMismatch, t.Shape(), newShape))
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Errorf("reshape: %w", err))
	}
	copy(result.Data(), t.Data())
	return result
}

// Transpose transposes the tensor by permuting its dimensions.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}

	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Errorf("transpose: %w", err))
	}

	switch t.DType() {
	case tensor.Float32:
		transposeData(result.AsFloat32(), t.AsFloat32(), shape, newShape, axes)
	case tensor.Float64:
		transposeData(result.AsFloat64(), t.AsFloat64(), shape, newShape, axes)
	default:
		panic("transpose: unsupported dtype " + t.DType().String())
	}
	return result
}
