package ops

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// MatMulOp records z = a @ b for 2D operands.
type MatMulOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *MatMulOp) Name() string { return "matmul" }
func (op *MatMulOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *MatMulOp) Output() *tensor.RawTensor { return op.Out }

// Backward: dz/da = g @ bᵀ, dz/db = aᵀ @ g.
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		backend.MatMul(outputGrad, backend.Transpose(op.B)),
		backend.MatMul(backend.Transpose(op.A), outputGrad),
	}
}
