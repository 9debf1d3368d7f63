// Package optim implements parameter optimizers.
package optim

// Optimizer updates trainable parameters from their accumulated
// gradients.
type Optimizer interface {
	// Step applies one update using the current gradient slots.
	Step() error

	// ZeroGrad resets the gradient slots of all managed parameters.
	ZeroGrad()
}
