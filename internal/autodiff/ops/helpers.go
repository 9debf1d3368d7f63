package ops

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// reduceBroadcast sums grad down to targetShape, undoing forward
// broadcasting. Broadcasting expands an input along prepended or
// size-1 dimensions; the gradient of an expanded input is the sum
// over every position the element was replicated to.
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad
	}

	// Sum away dimensions that were prepended by broadcasting.
	for len(grad.Shape()) > len(targetShape) {
		grad = backend.SumDim(grad, 0, false)
	}

	// Sum over dimensions the input held as size 1.
	for i, dim := range targetShape {
		if dim == 1 && grad.Shape()[i] != 1 {
			grad = backend.SumDim(grad, i, true)
		}
	}
	return grad
}

// broadcastTo expands grad to the given shape, replicating along
// missing and size-1 dimensions. Relies on the backend's Mul
// broadcasting against an all-ones tensor.
func broadcastTo(grad *tensor.RawTensor, shape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(shape) {
		return grad
	}
	ones := tensor.OnesRaw(shape, grad.DType(), grad.Device())
	return backend.Mul(ones, grad)
}

// negate returns -t.
func negate(t *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	return backend.MulScalar(t, -1)
}
