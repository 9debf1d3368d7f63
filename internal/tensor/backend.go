package tensor

// Backend defines the interface that compute backends implement.
// Backends handle the raw numeric work; they know nothing about
// recording or gradients. Kernels fail fast by panicking with an
// error wrapping ErrShapeMismatch when operand shapes are
// incompatible, before allocating a result.
type Backend interface {
	// Element-wise binary operations (NumPy broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Matrix operations
	// (M, K) @ (K, N) -> (M, N)
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	SubScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	DivScalar(x *RawTensor, scalar float64) *RawTensor

	// Math operations (element-wise)
	Sqrt(x *RawTensor) *RawTensor

	// Reduction operations
	Sum(x *RawTensor) *RawTensor                            // total sum (scalar result)
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor  // sum along dimension
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor // mean along dimension

	// Comparison operations (element-wise, return Bool tensors).
	// Comparisons are not differentiable: they exit the graph and are
	// never recorded by the autodiff layer.
	Greater(a, b *RawTensor) *RawTensor
	Lower(a, b *RawTensor) *RawTensor
	GreaterEqual(a, b *RawTensor) *RawTensor
	LowerEqual(a, b *RawTensor) *RawTensor
	Equal(a, b *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}

// GradBackend is implemented by backends that track gradient slots
// and can run a backward pass (the autodiff decorator backend).
// The typed Tensor API discovers it by type assertion.
type GradBackend interface {
	Backend

	// AttachGrad lazily allocates a zero gradient slot for t and
	// marks it differentiable. Idempotent.
	AttachGrad(t *RawTensor)

	// Grad returns t's accumulated gradient, or false if t never had
	// a slot attached.
	Grad(t *RawTensor) (*RawTensor, bool)

	// ZeroGrad resets t's gradient slot to zero. No-op without a slot.
	ZeroGrad(t *RawTensor)

	// Backward runs backpropagation from result with an implicit
	// all-ones head gradient, accumulating into attached slots.
	Backward(result *RawTensor) error

	// BackwardWithSeed runs backpropagation from result seeded with
	// the given head gradient (same shape as result).
	BackwardWithSeed(result, seed *RawTensor) error
}
