package autodiff

import (
	"fmt"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// Backward runs backpropagation from result with the implicit
// all-ones head gradient.
func (ad *AutodiffBackend[B]) Backward(result *tensor.RawTensor) error {
	return ad.BackwardWithSeed(result, nil)
}

// BackwardWithSeed runs backpropagation from result, seeding the walk
// with the given head gradient. A nil seed means all ones.
//
// The walk visits the trace in reverse from result's producer record,
// applying each operation's backward rule and summing gradients where
// paths fan in. Attached slots are only touched after the whole walk
// finished; then each reached slot accumulates its gradient, so
// repeated backward passes without ZeroGrad sum their contributions.
func (ad *AutodiffBackend[B]) BackwardWithSeed(result, seed *tensor.RawTensor) error {
	t := ad.tape

	start, ok := t.producer[result]
	if !ok {
		return fmt.Errorf("backward: %w: tensor was not produced in the current recording scope",
			tensor.ErrNoGraph)
	}

	if seed == nil {
		seed = tensor.OnesLike(result)
	} else {
		if !seed.Shape().Equal(result.Shape()) {
			return fmt.Errorf("backward: %w: seed shape %v, result shape %v",
				tensor.ErrSeedShapeMismatch, seed.Shape(), result.Shape())
		}
		if seed.DType() != result.DType() {
			return fmt.Errorf("backward: %w: seed dtype %s, result dtype %s",
				tensor.ErrSeedShapeMismatch, seed.DType(), result.DType())
		}
	}

	// Gradient arithmetic runs on the inner backend and must not grow
	// the trace.
	t.Pause()
	defer t.Resume()

	backend := tensor.Backend(ad.inner)

	grads := map[*tensor.RawTensor]*tensor.RawTensor{result: seed}
	for i := start; i >= 0; i-- {
		op := t.records[i]
		outGrad, ok := grads[op.Output()]
		if !ok {
			// Not on a path from result.
			continue
		}

		inputGrads := op.Backward(outGrad, backend)
		for j, input := range op.Inputs() {
			grad := inputGrads[j]
			if grad == nil {
				continue
			}
			if existing, ok := grads[input]; ok {
				grads[input] = backend.Add(existing, grad)
			} else {
				grads[input] = grad
			}
		}
	}

	// Commit: accumulate into every reached slot.
	for node, slot := range t.slots {
		if grad, ok := grads[node]; ok {
			slot.CopyFrom(backend.Add(slot, grad))
		}
	}
	return nil
}
