// Package autodiff implements reverse-mode automatic differentiation
// as a decorator backend: it wraps an inner compute backend, records
// every differentiable operation performed inside a recording scope on
// a gradient tape, and replays the tape backwards to accumulate
// gradients into attached slots.
//
// The tape is not synchronized. A backend and the tensors computed
// through it belong to one goroutine; run independent traces on
// separate backend instances.
package autodiff

import (
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/autodiff/ops"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// GradientTape holds the computation trace of the current recording
// scope plus the gradient slots, which outlive individual traces.
//
// Tensors are identified by pointer: producer records and slots are
// keyed by *RawTensor, so rebinding a variable to a fresh result never
// confuses the graph.
type GradientTape struct {
	records  []ops.Operation
	producer map[*tensor.RawTensor]int // output -> index into records
	slots    map[*tensor.RawTensor]*tensor.RawTensor

	depth  int // recording scope nesting
	paused int // gradient-free scope nesting
}

// NewGradientTape creates an empty tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		producer: make(map[*tensor.RawTensor]int),
		slots:    make(map[*tensor.RawTensor]*tensor.RawTensor),
	}
}

// StartRecording enters a recording scope. Entering from depth zero
// discards the previous trace: each outermost scope describes exactly
// one forward pass, and results of an earlier scope can no longer be
// differentiated. Nested calls only bump the depth.
func (t *GradientTape) StartRecording() {
	if t.depth == 0 {
		t.clearTrace()
	}
	t.depth++
}

// StopRecording leaves the innermost recording scope. The trace is
// kept so backward can run after the scope closed.
func (t *GradientTape) StopRecording() {
	if t.depth == 0 {
		panic("autodiff: StopRecording without matching StartRecording")
	}
	t.depth--
}

// Pause enters a gradient-free scope: operations run but are not
// recorded until the matching Resume.
func (t *GradientTape) Pause() {
	t.paused++
}

// Resume leaves the innermost gradient-free scope.
func (t *GradientTape) Resume() {
	if t.paused == 0 {
		panic("autodiff: Resume without matching Pause")
	}
	t.paused--
}

// IsRecording reports whether operations performed now are captured.
func (t *GradientTape) IsRecording() bool {
	return t.depth > 0 && t.paused == 0
}

// Record appends an operation to the trace.
func (t *GradientTape) Record(op ops.Operation) {
	t.producer[op.Output()] = len(t.records)
	t.records = append(t.records, op)
}

// NumOps returns the number of recorded operations in the current
// trace.
func (t *GradientTape) NumOps() int {
	return len(t.records)
}

// clearTrace drops the recorded operations. Gradient slots survive:
// their accumulated values carry across traces until ZeroGrad.
func (t *GradientTape) clearTrace() {
	t.records = t.records[:0]
	clear(t.producer)
}

// AttachGrad allocates a zero gradient slot for node if it does not
// have one yet.
func (t *GradientTape) AttachGrad(node *tensor.RawTensor) {
	if _, ok := t.slots[node]; ok {
		return
	}
	t.slots[node] = tensor.ZerosLike(node)
}

// Grad returns node's gradient slot, or false if none was attached.
func (t *GradientTape) Grad(node *tensor.RawTensor) (*tensor.RawTensor, bool) {
	slot, ok := t.slots[node]
	return slot, ok
}

// ZeroGrad resets node's gradient slot in place. No-op if node has no
// slot.
func (t *GradientTape) ZeroGrad(node *tensor.RawTensor) {
	if slot, ok := t.slots[node]; ok {
		clear(slot.Data())
	}
}
