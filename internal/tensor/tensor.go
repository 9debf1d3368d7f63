package tensor

import "fmt"

// Tensor is a generic tensor with element type T computed by backend B.
//
// Type Parameters:
//   - T: data type (must satisfy the DType constraint)
//   - B: computation backend (must implement the Backend interface)
//
// When B is the autodiff backend, arithmetic performed inside a
// recording scope is captured on the tape and AttachGrad/Grad expose
// the tensor's gradient slot.
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		return nil, err
	}

	t := New[T, B](raw, b)
	copy(t.Data(), data)

	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: modifications to the returned slice modify the tensor.
func (t *Tensor[T, B]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	case bool:
		return any(t.raw.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor[T, B]) Item() T {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T, B]) At(indices ...int) T {
	return t.Data()[t.flatIndex(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T, B]) Set(value T, indices ...int) {
	t.Data()[t.flatIndex(indices)] = value
}

func (t *Tensor[T, B]) flatIndex(indices []int) int {
	if len(indices) != len(t.Shape()) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.Shape()), len(indices)))
	}

	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.Shape()[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.Shape()[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.raw.Device())
}

// Clone creates a deep copy of the tensor.
// The copy is a constant: it has no producer record and no gradient slot.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     t.raw.Clone(),
		backend: t.backend,
	}
}

// AttachGrad lazily allocates a zero-initialized gradient slot of the
// tensor's shape and marks the tensor as differentiable. Idempotent
// if a slot is already attached. Subsequent backward passes that
// reach this tensor accumulate into the slot.
//
// Returns the tensor itself for chaining. Panics if the backend does
// not support gradients (wrap it with the autodiff backend first).
func (t *Tensor[T, B]) AttachGrad() *Tensor[T, B] {
	gb, ok := any(t.backend).(GradBackend)
	if !ok {
		panic(fmt.Sprintf("attachgrad: backend %s does not support gradients", t.backend.Name()))
	}
	gb.AttachGrad(t.raw)
	return t
}

// Grad returns the tensor's accumulated gradient.
// Fails with ErrNotDifferentiable if AttachGrad was never called.
func (t *Tensor[T, B]) Grad() (*Tensor[T, B], error) {
	gb, ok := any(t.backend).(GradBackend)
	if !ok {
		return nil, fmt.Errorf("grad: %w", ErrNotDifferentiable)
	}
	raw, ok := gb.Grad(t.raw)
	if !ok {
		return nil, fmt.Errorf("grad: %w", ErrNotDifferentiable)
	}
	return New[T, B](raw, t.backend), nil
}

// ZeroGrad resets the tensor's gradient slot to zero. Callers needing
// fresh gradients must do this between training steps: backward never
// resets slots implicitly.
func (t *Tensor[T, B]) ZeroGrad() {
	if gb, ok := any(t.backend).(GradBackend); ok {
		gb.ZeroGrad(t.raw)
	}
}
