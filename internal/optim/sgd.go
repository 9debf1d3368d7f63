package optim

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// SGD is plain stochastic gradient descent: p ← p - lr·∂L/∂p.
//
// Updates write the parameter buffers in place through a BLAS Axpy,
// so every tensor that aliased the parameter sees the new values.
// Step must run outside a recording scope; the update itself is not
// part of any differentiable graph.
type SGD[T tensor.DType, B tensor.Backend] struct {
	params []*tensor.Tensor[T, B]
	lr     float64
}

// NewSGD creates an optimizer over the given parameters. Each
// parameter needs an attached gradient slot before the first Step.
func NewSGD[T tensor.DType, B tensor.Backend](params []*tensor.Tensor[T, B], lr float64) *SGD[T, B] {
	return &SGD[T, B]{
		params: params,
		lr:     lr,
	}
}

// Step applies p ← p - lr·grad to every parameter.
func (s *SGD[T, B]) Step() error {
	for _, p := range s.params {
		grad, err := p.Grad()
		if err != nil {
			return fmt.Errorf("sgd: parameter %v has no gradient slot: %w", p.Shape(), err)
		}

		n := p.NumElements()
		switch p.DType() {
		case tensor.Float32:
			blas32.Axpy(float32(-s.lr),
				blas32.Vector{N: n, Inc: 1, Data: grad.Raw().AsFloat32()},
				blas32.Vector{N: n, Inc: 1, Data: p.Raw().AsFloat32()})
		case tensor.Float64:
			blas64.Axpy(-s.lr,
				blas64.Vector{N: n, Inc: 1, Data: grad.Raw().AsFloat64()},
				blas64.Vector{N: n, Inc: 1, Data: p.Raw().AsFloat64()})
		default:
			return fmt.Errorf("sgd: unsupported parameter dtype %s", p.DType())
		}
	}
	return nil
}

// ZeroGrad resets every parameter's gradient slot. Call between
// training steps; gradients accumulate otherwise.
func (s *SGD[T, B]) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}
