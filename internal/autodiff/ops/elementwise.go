package ops

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// AddOp records z = a + b.
type AddOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *AddOp) Name() string { return "add" }
func (op *AddOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *AddOp) Output() *tensor.RawTensor { return op.Out }

// Backward: dz/da = 1, dz/db = 1.
func (op *AddOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.A.Shape(), backend),
		reduceBroadcast(outputGrad, op.B.Shape(), backend),
	}
}

// SubOp records z = a - b.
type SubOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *SubOp) Name() string { return "sub" }
func (op *SubOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *SubOp) Output() *tensor.RawTensor { return op.Out }

// Backward: dz/da = 1, dz/db = -1.
func (op *SubOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.A.Shape(), backend),
		reduceBroadcast(negate(outputGrad, backend), op.B.Shape(), backend),
	}
}

// MulOp records z = a * b (element-wise).
type MulOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *MulOp) Name() string { return "mul" }
func (op *MulOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *MulOp) Output() *tensor.RawTensor { return op.Out }

// Backward: dz/da = b, dz/db = a. The tape holds the forward values
// because kernels never write in place.
func (op *MulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(backend.Mul(outputGrad, op.B), op.A.Shape(), backend),
		reduceBroadcast(backend.Mul(outputGrad, op.A), op.B.Shape(), backend),
	}
}

// DivOp records z = a / b (element-wise).
type DivOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *DivOp) Name() string { return "div" }
func (op *DivOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *DivOp) Output() *tensor.RawTensor { return op.Out }

// Backward: dz/da = 1/b, dz/db = -a/b².
func (op *DivOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradA := backend.Div(outputGrad, op.B)
	// -g*a/b² written as -(g/b * z) since z = a/b
	gradB := negate(backend.Mul(gradA, op.Out), backend)
	return []*tensor.RawTensor{
		reduceBroadcast(gradA, op.A.Shape(), backend),
		reduceBroadcast(gradB, op.B.Shape(), backend),
	}
}

// SqrtOp records z = sqrt(x).
type SqrtOp struct {
	X   *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *SqrtOp) Name() string { return "sqrt" }
func (op *SqrtOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *SqrtOp) Output() *tensor.RawTensor { return op.Out }

// Backward: dz/dx = 1/(2*sqrt(x)) = 1/(2z).
func (op *SqrtOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		backend.Div(outputGrad, backend.MulScalar(op.Out, 2)),
	}
}
