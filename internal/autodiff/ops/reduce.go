package ops

import "github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"

// SumOp records z = sum(x) over all elements (scalar output).
type SumOp struct {
	X   *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *SumOp) Name() string { return "sum" }
func (op *SumOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *SumOp) Output() *tensor.RawTensor { return op.Out }

// Backward: every element contributed once, so the scalar gradient
// replicates across the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{broadcastTo(outputGrad, op.X.Shape(), backend)}
}

// SumDimOp records z = sum(x, dim).
type SumDimOp struct {
	X       *tensor.RawTensor
	Out     *tensor.RawTensor
	Dim     int
	KeepDim bool
}

func (op *SumDimOp) Name() string { return "sumdim" }
func (op *SumDimOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *SumDimOp) Output() *tensor.RawTensor { return op.Out }

// Backward: the gradient replicates along the reduced dimension.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grad := outputGrad
	if !op.KeepDim {
		// Reinsert the reduced dimension as size 1 so broadcasting
		// lines the axes up.
		grad = backend.Reshape(grad, keepDimShape(op.X.Shape(), op.Dim))
	}
	return []*tensor.RawTensor{broadcastTo(grad, op.X.Shape(), backend)}
}

// MeanDimOp records z = mean(x, dim).
type MeanDimOp struct {
	X       *tensor.RawTensor
	Out     *tensor.RawTensor
	Dim     int
	KeepDim bool
}

func (op *MeanDimOp) Name() string { return "meandim" }
func (op *MeanDimOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *MeanDimOp) Output() *tensor.RawTensor { return op.Out }

// Backward: like SumDim scaled by 1/n.
func (op *MeanDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	n := op.X.Shape()[normalizeDim(op.Dim, len(op.X.Shape()))]
	grad := backend.DivScalar(outputGrad, float64(n))
	if !op.KeepDim {
		grad = backend.Reshape(grad, keepDimShape(op.X.Shape(), op.Dim))
	}
	return []*tensor.RawTensor{broadcastTo(grad, op.X.Shape(), backend)}
}

// keepDimShape is the input shape with the reduced dimension set to 1.
func keepDimShape(inputShape tensor.Shape, dim int) tensor.Shape {
	dim = normalizeDim(dim, len(inputShape))
	out := inputShape.Clone()
	out[dim] = 1
	return out
}

func normalizeDim(dim, ndim int) int {
	if dim < 0 {
		dim += ndim
	}
	return dim
}
