package cpu

import (
	"fmt"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// Scalar operations apply one float constant to every element. The
// scalar is passed as float64 and narrowed to the tensor's dtype.

func addScalarVec[T number](dst, src []T, s T) {
	for i := range dst {
		dst[i] = src[i] + s
	}
}

func subScalarVec[T number](dst, src []T, s T) {
	for i := range dst {
		dst[i] = src[i] - s
	}
}

func mulScalarVec[T number](dst, src []T, s T) {
	for i := range dst {
		dst[i] = src[i] * s
	}
}

func divScalarVec[T number](dst, src []T, s T) {
	for i := range dst {
		dst[i] = src[i] / s
	}
}

func (cpu *CPUBackend) scalarResult(op string, x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}
	return result
}

// AddScalar adds a scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := cpu.scalarResult("addscalar", x)
	switch x.DType() {
	case tensor.Float32:
		addScalarVec(result.AsFloat32(), x.AsFloat32(), float32(scalar))
	case tensor.Float64:
		addScalarVec(result.AsFloat64(), x.AsFloat64(), scalar)
	default:
		panic("addscalar: unsupported dtype " + x.DType().String())
	}
	return result
}

// SubScalar subtracts a scalar from every element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := cpu.scalarResult("subscalar", x)
	switch x.DType() {
	case tensor.Float32:
		subScalarVec(result.AsFloat32(), x.AsFloat32(), float32(scalar))
	case tensor.Float64:
		subScalarVec(result.AsFloat64(), x.AsFloat64(), scalar)
	default:
		panic("subscalar: unsupported dtype " + x.DType().String())
	}
	return result
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := cpu.scalarResult("mulscalar", x)
	switch x.DType() {
	case tensor.Float32:
		mulScalarVec(result.AsFloat32(), x.AsFloat32(), float32(scalar))
	case tensor.Float64:
		mulScalarVec(result.AsFloat64(), x.AsFloat64(), scalar)
	default:
		panic("mulscalar: unsupported dtype " + x.DType().String())
	}
	return result
}

// DivScalar divides every element by a scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := cpu.scalarResult("divscalar", x)
	switch x.DType() {
	case tensor.Float32:
		divScalarVec(result.AsFloat32(), x.AsFloat32(), float32(scalar))
	case tensor.Float64:
		divScalarVec(result.AsFloat64(), x.AsFloat64(), scalar)
	default:
		panic("divscalar: unsupported dtype " + x.DType().String())
	}
	return result
}
