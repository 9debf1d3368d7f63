package ops

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// AddScalarOp records z = x + c. Also covers x - c with a negated
// constant: the backward rule is the identity either way.
type AddScalarOp struct {
	X   *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *AddScalarOp) Name() string { return "addscalar" }
func (op *AddScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *AddScalarOp) Output() *tensor.RawTensor { return op.Out }

func (op *AddScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad}
}

// MulScalarOp records z = x * c. Also covers x / c with Scale = 1/c.
type MulScalarOp struct {
	X     *tensor.RawTensor
	Out   *tensor.RawTensor
	Scale float64
}

func (op *MulScalarOp) Name() string { return "mulscalar" }
func (op *MulScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *MulScalarOp) Output() *tensor.RawTensor { return op.Out }

func (op *MulScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.Scale)}
}
