// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"golang.org/x/exp/rand"

	"github.com/born-ml/regress/internal/nn"
)

// Activation identifies one of the supported nonlinearities.
type Activation = nn.Activation

// Supported activations.
const (
	Identity = nn.Identity
	ReLU     = nn.ReLU
	Sigmoid  = nn.Sigmoid
	Tanh     = nn.Tanh
)

// Errors returned by this package.
var (
	ErrDimension  = nn.ErrDimension
	ErrActivation = nn.ErrActivation
)

// ParseActivation maps a name such as "relu" or "Sigmoid" to its kind.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Params holds per-layer weights and biases.
type Params = nn.Params

// Gradients has the same shape as Params and holds ∂C/∂parameter.
type Gradients = nn.Gradients

// NewParams allocates zeroed parameters for a topology.
func NewParams(topology []int) *Params {
	return nn.NewParams(topology)
}

// Uniform fills every weight and bias with independent draws from U(lo, hi).
func Uniform(p *Params, lo, hi float64, src rand.Source) {
	nn.Uniform(p, lo, hi, src)
}

// Network ties a topology and activation sequence to its parameters.
type Network = nn.Network

// Trace records pre-activations and activations of one forward pass.
type Trace = nn.Trace

// SquaredError returns Σ (observed[i] - predicted[i])². Both vectors must
// have exactly outputSize entries.
func SquaredError(predicted, observed []float64, outputSize int) (float64, error) {
	return nn.SquaredError(predicted, observed, outputSize)
}
