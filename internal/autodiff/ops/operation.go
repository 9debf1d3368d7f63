// Package ops defines the differentiable operations recorded on the
// gradient tape. Each operation captures its input and output tensors
// during the forward pass and knows how to turn the gradient of its
// output into gradients of its inputs.
package ops

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// Operation is one record of the computation trace.
//
// Backward receives the gradient of the loss with respect to the
// operation's output and returns the gradients with respect to each
// input, in the same order as Inputs(). A nil entry means the input
// receives no gradient from this operation.
type Operation interface {
	// Name returns the operation name for debugging.
	Name() string

	// Inputs returns the operation's input tensors.
	Inputs() []*tensor.RawTensor

	// Output returns the operation's output tensor.
	Output() *tensor.RawTensor

	// Backward computes input gradients from the output gradient.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor
}
