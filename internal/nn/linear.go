package nn

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// Linear is a fully-connected layer: y = x @ W + b.
//
// Weight has shape (in, out) and is initialized from N(0, 0.01²);
// bias has shape (out) and starts at zero. Both have gradient slots
// attached, so the backend must be gradient-capable.
type Linear[T tensor.DType, B tensor.Backend] struct {
	Weight *tensor.Tensor[T, B]
	Bias   *tensor.Tensor[T, B]
}

// NewLinear creates a linear layer with freshly initialized
// parameters.
func NewLinear[T tensor.DType, B tensor.Backend](in, out int, b B) *Linear[T, B] {
	return &Linear[T, B]{
		Weight: tensor.Randn[T, B](tensor.Shape{in, out}, 0, 0.01, b).AttachGrad(),
		Bias:   tensor.Zeros[T, B](tensor.Shape{out}, b).AttachGrad(),
	}
}

// Forward computes x @ W + b. x has shape (batch, in).
func (l *Linear[T, B]) Forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return x.MatMul(l.Weight).Add(l.Bias)
}

// Parameters returns the layer's trainable tensors.
func (l *Linear[T, B]) Parameters() []*tensor.Tensor[T, B] {
	return []*tensor.Tensor[T, B]{l.Weight, l.Bias}
}
