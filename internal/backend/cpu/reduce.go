package cpu

import (
	"fmt"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// Sum reduces all elements to a scalar (0-D) tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Errorf("sum: %w", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		var total float32
		for _, v := range src {
			total += v
		}
		result.AsFloat32()[0] = total
	case tensor.Float64:
		src := x.AsFloat64()
		var total float64
		for _, v := range src {
			total += v
		}
		result.AsFloat64()[0] = total
	default:
		panic("sum: unsupported dtype " + x.DType().String())
	}
	return result
}

// SumDim sums along the given dimension. dim supports negative
// indexing (-1 = last). With keepDim the reduced dimension stays as
// size 1, otherwise it is removed.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	dim = normalizeDim("sumdim", dim, len(shape))

	outShape := reducedShape(shape, dim, keepDim)
	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Errorf("sumdim: %w", err))
	}

	// Split the index space around the reduced dimension:
	// flat index = (o*n + k)*inner + i with k running over dim.
	outer, n, inner := splitDims(shape, dim)

	switch x.DType() {
	case tensor.Float32:
		sumDimKernel(result.AsFloat32(), x.AsFloat32(), outer, n, inner)
	case tensor.Float64:
		sumDimKernel(result.AsFloat64(), x.AsFloat64(), outer, n, inner)
	default:
		panic("sumdim: unsupported dtype " + x.DType().String())
	}
	return result
}

// MeanDim computes the mean along the given dimension.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	n := shape[normalizeDim("meandim", dim, len(shape))]
	return cpu.DivScalar(cpu.SumDim(x, dim, keepDim), float64(n))
}

func sumDimKernel[T number](dst, src []T, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			var total T
			base := o*n*inner + i
			for k := 0; k < n; k++ {
				total += src[base+k*inner]
			}
			dst[o*inner+i] = total
		}
	}
}

func normalizeDim(op string, dim, ndim int) int {
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD tensor", op, dim, ndim))
	}
	return dim
}

func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, d := range shape {
		if i != dim {
			out = append(out, d)
		}
	}
	return out
}

func splitDims(shape tensor.Shape, dim int) (outer, n, inner int) {
	outer, inner = 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	n = shape[dim]
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, n, inner
}
