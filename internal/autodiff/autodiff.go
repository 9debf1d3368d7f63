package autodiff

import (
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/autodiff/ops"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// AutodiffBackend decorates an inner compute backend with gradient
// recording. It implements tensor.Backend, so tensors built on it use
// the normal arithmetic API; inside a Record scope every
// differentiable operation also lands on the tape.
//
// Comparison operations pass straight through: their Bool results exit
// the differentiable graph and are never recorded.
type AutodiffBackend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New wraps the given backend with gradient recording.
func New[B tensor.Backend](inner B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: inner,
		tape:  NewGradientTape(),
	}
}

// Inner returns the wrapped compute backend.
func (ad *AutodiffBackend[B]) Inner() B {
	return ad.inner
}

// Tape returns the gradient tape.
func (ad *AutodiffBackend[B]) Tape() *GradientTape {
	return ad.tape
}

// Name returns the backend name.
func (ad *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + ad.inner.Name() + ")"
}

// Device returns the inner backend's device.
func (ad *AutodiffBackend[B]) Device() tensor.Device {
	return ad.inner.Device()
}

// Record runs fn inside a recording scope. Scopes nest; only the
// outermost entry starts a fresh trace. The trace survives the scope
// so Backward can run on its results afterwards.
func (ad *AutodiffBackend[B]) Record(fn func()) {
	ad.tape.StartRecording()
	defer ad.tape.StopRecording()
	fn()
}

// NoGrad runs fn with recording paused. Useful for metric computation
// and parameter updates inside a training step.
func (ad *AutodiffBackend[B]) NoGrad(fn func()) {
	ad.tape.Pause()
	defer ad.tape.Resume()
	fn()
}

// Add performs element-wise addition, recording when inside a scope.
func (ad *AutodiffBackend[B]) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Add(a, b)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.AddOp{A: a, B: b, Out: out})
	}
	return out
}

// Sub performs element-wise subtraction, recording when inside a scope.
func (ad *AutodiffBackend[B]) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Sub(a, b)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.SubOp{A: a, B: b, Out: out})
	}
	return out
}

// Mul performs element-wise multiplication, recording when inside a scope.
func (ad *AutodiffBackend[B]) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Mul(a, b)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.MulOp{A: a, B: b, Out: out})
	}
	return out
}

// Div performs element-wise division, recording when inside a scope.
func (ad *AutodiffBackend[B]) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Div(a, b)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.DivOp{A: a, B: b, Out: out})
	}
	return out
}

// MatMul performs matrix multiplication, recording when inside a scope.
func (ad *AutodiffBackend[B]) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.MatMul(a, b)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.MatMulOp{A: a, B: b, Out: out})
	}
	return out
}

// Reshape changes the tensor's shape, recording when inside a scope.
func (ad *AutodiffBackend[B]) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	out := ad.inner.Reshape(t, newShape)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.ReshapeOp{X: t, Out: out})
	}
	return out
}

// Transpose permutes the tensor's dimensions, recording when inside a scope.
func (ad *AutodiffBackend[B]) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	out := ad.inner.Transpose(t, axes...)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.TransposeOp{X: t, Out: out, Axes: axes})
	}
	return out
}

// AddScalar adds a scalar, recording when inside a scope.
func (ad *AutodiffBackend[B]) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	out := ad.inner.AddScalar(x, scalar)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.AddScalarOp{X: x, Out: out})
	}
	return out
}

// SubScalar subtracts a scalar, recording when inside a scope.
func (ad *AutodiffBackend[B]) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	out := ad.inner.SubScalar(x, scalar)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.AddScalarOp{X: x, Out: out})
	}
	return out
}

// MulScalar multiplies by a scalar, recording when inside a scope.
func (ad *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	out := ad.inner.MulScalar(x, scalar)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.MulScalarOp{X: x, Out: out, Scale: scalar})
	}
	return out
}

// DivScalar divides by a scalar, recording when inside a scope.
func (ad *AutodiffBackend[B]) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	out := ad.inner.DivScalar(x, scalar)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.MulScalarOp{X: x, Out: out, Scale: 1 / scalar})
	}
	return out
}

// Sqrt computes the element-wise square root, recording when inside a scope.
func (ad *AutodiffBackend[B]) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Sqrt(x)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.SqrtOp{X: x, Out: out})
	}
	return out
}

// Sum reduces to a scalar, recording when inside a scope.
func (ad *AutodiffBackend[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Sum(x)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.SumOp{X: x, Out: out})
	}
	return out
}

// SumDim sums along a dimension, recording when inside a scope.
func (ad *AutodiffBackend[B]) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := ad.inner.SumDim(x, dim, keepDim)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.SumDimOp{X: x, Out: out, Dim: dim, KeepDim: keepDim})
	}
	return out
}

// MeanDim averages along a dimension, recording when inside a scope.
func (ad *AutodiffBackend[B]) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := ad.inner.MeanDim(x, dim, keepDim)
	if ad.tape.IsRecording() {
		ad.tape.Record(&ops.MeanDimOp{X: x, Out: out, Dim: dim, KeepDim: keepDim})
	}
	return out
}

// Greater passes through unrecorded.
func (ad *AutodiffBackend[B]) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return ad.inner.Greater(a, b)
}

// Lower passes through unrecorded.
func (ad *AutodiffBackend[B]) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return ad.inner.Lower(a, b)
}

// GreaterEqual passes through unrecorded.
func (ad *AutodiffBackend[B]) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return ad.inner.GreaterEqual(a, b)
}

// LowerEqual passes through unrecorded.
func (ad *AutodiffBackend[B]) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return ad.inner.LowerEqual(a, b)
}

// Equal passes through unrecorded.
func (ad *AutodiffBackend[B]) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return ad.inner.Equal(a, b)
}

// AttachGrad allocates a gradient slot for t. Idempotent.
func (ad *AutodiffBackend[B]) AttachGrad(t *tensor.RawTensor) {
	ad.tape.AttachGrad(t)
}

// Grad returns t's accumulated gradient, or false without a slot.
func (ad *AutodiffBackend[B]) Grad(t *tensor.RawTensor) (*tensor.RawTensor, bool) {
	return ad.tape.Grad(t)
}

// ZeroGrad resets t's gradient slot.
func (ad *AutodiffBackend[B]) ZeroGrad(t *tensor.RawTensor) {
	ad.tape.ZeroGrad(t)
}
