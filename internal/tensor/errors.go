package tensor

import "errors"

// Sentinel errors for the failure modes of the engine. All of them
// indicate programmer error, not transient failure: they surface
// immediately at the call site and are never retried or swallowed.
//
// Raw backend kernels panic with errors wrapping ErrShapeMismatch
// (the check runs before any trace mutation); the gradient API
// returns the other three as ordinary error values.
var (
	// ErrShapeMismatch reports operands whose shapes are incompatible
	// under the broadcasting rules, or a malformed shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrNotDifferentiable reports a gradient request on a tensor that
	// never had a gradient slot attached.
	ErrNotDifferentiable = errors.New("tensor has no attached gradient slot")

	// ErrNoGraph reports a backward call on a tensor that was not
	// produced under an active recording scope, or whose trace has
	// already been discarded by a fresh recording scope.
	ErrNoGraph = errors.New("tensor was not produced by a recorded computation")

	// ErrSeedShapeMismatch reports a head gradient whose shape does
	// not match the result tensor's shape.
	ErrSeedShapeMismatch = errors.New("head gradient shape does not match result shape")
)
