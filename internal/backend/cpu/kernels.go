package cpu

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// number constrains the element types the arithmetic kernels accept.
type number interface {
	~float32 | ~float64
}

// Contiguous same-shape kernels. dst, a and b have identical lengths.

func addVec[T number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subVec[T number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulVec[T number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divVec[T number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// Gather kernels for the broadcast path. ai and bi map each output
// element to its source element, precomputed by buildBroadcastIndex.

func addGather[T number](dst, a, b []T, ai, bi []int) {
	for i := range dst {
		dst[i] = a[ai[i]] + b[bi[i]]
	}
}

func subGather[T number](dst, a, b []T, ai, bi []int) {
	for i := range dst {
		dst[i] = a[ai[i]] - b[bi[i]]
	}
}

func mulGather[T number](dst, a, b []T, ai, bi []int) {
	for i := range dst {
		dst[i] = a[ai[i]] * b[bi[i]]
	}
}

func divGather[T number](dst, a, b []T, ai, bi []int) {
	for i := range dst {
		dst[i] = a[ai[i]] / b[bi[i]]
	}
}

// buildBroadcastIndex precomputes, for every flat index of outShape,
// the flat index of the corresponding element in srcShape. Dimensions
// of size 1 in srcShape repeat their single element; srcShape is
// right-aligned against outShape per the NumPy broadcasting rules
// (both already validated by BroadcastShapes).
func buildBroadcastIndex(srcShape, outShape tensor.Shape) []int {
	outNdim := len(outShape)
	srcNdim := len(srcShape)
	offset := outNdim - srcNdim

	// Source strides with broadcast dimensions zeroed, aligned to the
	// output rank.
	srcStrides := make([]int, outNdim)
	stride := 1
	for i := srcNdim - 1; i >= 0; i-- {
		if srcShape[i] != 1 {
			srcStrides[offset+i] = stride
		}
		stride *= srcShape[i]
	}

	idx := make([]int, outShape.NumElements())
	coords := make([]int, outNdim)
	for i := range idx {
		srcIdx := 0
		for d := 0; d < outNdim; d++ {
			srcIdx += coords[d] * srcStrides[d]
		}
		idx[i] = srcIdx

		// Advance the output coordinates (row-major order).
		for d := outNdim - 1; d >= 0; d-- {
			coords[d]++
			if coords[d] < outShape[d] {
				break
			}
			coords[d] = 0
		}
	}
	return idx
}

// transposeData permutes src's dimensions into dst according to axes.
// dst has shape newShape where newShape[i] == srcShape[axes[i]].
func transposeData[T number](dst, src []T, srcShape, newShape tensor.Shape, axes []int) {
	ndim := len(srcShape)
	srcStrides := srcShape.ComputeStrides()

	coords := make([]int, ndim)
	for i := range dst {
		srcIdx := 0
		for d := 0; d < ndim; d++ {
			srcIdx += coords[d] * srcStrides[axes[d]]
		}
		dst[i] = src[srcIdx]

		for d := ndim - 1; d >= 0; d-- {
			coords[d]++
			if coords[d] < newShape[d] {
				break
			}
			coords[d] = 0
		}
	}
}
