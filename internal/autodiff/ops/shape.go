package ops

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// ReshapeOp records z = reshape(x).
type ReshapeOp struct {
	X   *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *ReshapeOp) Name() string { return "reshape" }
func (op *ReshapeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *ReshapeOp) Output() *tensor.RawTensor { return op.Out }

// Backward: reshape the gradient back to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.X.Shape())}
}

// TransposeOp records z = transpose(x, axes).
type TransposeOp struct {
	X    *tensor.RawTensor
	Out  *tensor.RawTensor
	Axes []int
}

func (op *TransposeOp) Name() string { return "transpose" }
func (op *TransposeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *TransposeOp) Output() *tensor.RawTensor { return op.Out }

// Backward: transpose the gradient with the inverse permutation.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	axes := op.Axes
	if len(axes) == 0 {
		// Empty axes reverses all dimensions, which is self-inverse.
		return []*tensor.RawTensor{backend.Transpose(outputGrad)}
	}
	inverse := make([]int, len(axes))
	for i, ax := range axes {
		inverse[ax] = i
	}
	return []*tensor.RawTensor{backend.Transpose(outputGrad, inverse...)}
}
