// Package nn provides minimal neural-network building blocks for
// linear models trained with the autodiff engine.
package nn

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// Module is a trainable component: a forward function plus the
// parameters the optimizer should update.
type Module[T tensor.DType, B tensor.Backend] interface {
	Forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B]
	Parameters() []*tensor.Tensor[T, B]
}
