// Package optim implements the parameter updater for training.
//
// This package provides:
//   - Optimizer interface: applies one gradient step in place
//   - SGD: vanilla stochastic gradient descent
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//
//	trace, _ := net.Forward(x)
//	grads, _ := net.Backward(trace, y)
//	if err := sgd.Step(net.Params, grads); err != nil {
//	    return err
//	}
package optim

import (
	"github.com/born-ml/regress/internal/nn"
)

// Optimizer is the base interface for parameter updaters.
type Optimizer interface {
	// Step applies one update to params in place using grads.
	//
	// The shapes of params and grads must match exactly; a mismatch
	// returns an error wrapping nn.ErrDimension and leaves params untouched.
	Step(params *nn.Params, grads *nn.Gradients) error

	// GetLR returns the current learning rate.
	GetLR() float64
}
