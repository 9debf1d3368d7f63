package nn

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// SquaredError returns the element-wise squared difference
// (pred - target)², composed from recorded primitives.
func SquaredError[T tensor.DType, B tensor.Backend](pred, target *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	diff := pred.Sub(target)
	return diff.Mul(diff)
}

// MSELoss returns the mean squared error over all elements as a
// scalar tensor. Differentiating it spreads the 1/n factor across the
// batch, which is what makes the learning rate batch-size independent.
func MSELoss[T tensor.DType, B tensor.Backend](pred, target *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	se := SquaredError(pred, target)
	return se.Sum().DivScalar(float64(se.NumElements()))
}
