// Package nn implements the numeric engine of a fully-connected feedforward
// regressor.
//
// This package provides:
//   - Activation: closed set of nonlinearities with value and derivative
//   - Params, Gradients: per-layer weight matrices and bias vectors
//   - Network: forward propagation and backpropagation under squared error
//   - SquaredError: sum-of-squared-error loss
//
// Storage is gonum's mat.Dense/mat.VecDense, one contiguous block per layer.
// Nothing here is safe for concurrent mutation; a Network whose parameters
// are never updated may be read from many goroutines.
package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Network ties a topology and a per-layer activation sequence to its
// parameters.
//
// Topology[0] is the input width and Topology[len-1] the output width.
// Activations has one entry per layer.
type Network struct {
	Topology    []int
	Activations []Activation
	Params      *Params
}

// Trace records the pre-activation sums and activations of every layer
// during one forward pass.
type Trace struct {
	Z []*mat.VecDense
	A []*mat.VecDense
}

// Output returns a copy of the last layer's activations.
func (t *Trace) Output() []float64 {
	last := t.A[len(t.A)-1]
	out := make([]float64, last.Len())
	for i := range out {
		out[i] = last.AtVec(i)
	}
	return out
}

// Validate checks the topology, the activation sequence and the parameter
// shapes against each other.
func (n *Network) Validate() error {
	if err := ValidateTopology(n.Topology); err != nil {
		return err
	}
	if len(n.Activations) != len(n.Topology) {
		return dimensionError("activation sequence", len(n.Activations), len(n.Topology))
	}
	if err := ValidateActivations(n.Activations); err != nil {
		return err
	}
	if n.Params == nil {
		return fmt.Errorf("%w: network has no parameters", ErrDimension)
	}
	return n.Params.CheckShape(n.Topology)
}

// InputSize returns size(0).
func (n *Network) InputSize() int {
	return n.Topology[0]
}

// OutputSize returns size(L-1).
func (n *Network) OutputSize() int {
	return n.Topology[len(n.Topology)-1]
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	return &Network{
		Topology:    append([]int(nil), n.Topology...),
		Activations: append([]Activation(nil), n.Activations...),
		Params:      n.Params.Clone(),
	}
}

// Forward runs the input through every layer and records the full trace.
//
// Layer 0 copies the input verbatim; no bias and no activation are applied
// there. For l > 0, z[l] = Weights[l-1]ᵀ·a[l-1] + Biases[l] and
// a[l] = act(z[l]).
func (n *Network) Forward(input []float64) (*Trace, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if len(input) != n.InputSize() {
		return nil, dimensionError("input", len(input), n.InputSize())
	}

	layers := len(n.Topology)
	trace := &Trace{
		Z: make([]*mat.VecDense, layers),
		A: make([]*mat.VecDense, layers),
	}

	in := mat.NewVecDense(len(input), append([]float64(nil), input...))
	trace.Z[0] = in
	trace.A[0] = in

	for l := 1; l < layers; l++ {
		z, a, err := n.layer(l, trace.A[l-1])
		if err != nil {
			return nil, err
		}
		trace.Z[l] = z
		trace.A[l] = a
	}
	return trace, nil
}

// Predict runs a forward pass keeping only the previous layer, and returns
// the output activations.
func (n *Network) Predict(input []float64) ([]float64, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if len(input) != n.InputSize() {
		return nil, dimensionError("input", len(input), n.InputSize())
	}

	a := mat.NewVecDense(len(input), append([]float64(nil), input...))
	for l := 1; l < len(n.Topology); l++ {
		var err error
		if _, a, err = n.layer(l, a); err != nil {
			return nil, err
		}
	}

	out := make([]float64, a.Len())
	for i := range out {
		out[i] = a.AtVec(i)
	}
	return out, nil
}

// layer computes z and a for layer l from the previous activations.
func (n *Network) layer(l int, prev *mat.VecDense) (z, a *mat.VecDense, err error) {
	size := n.Topology[l]

	z = mat.NewVecDense(size, nil)
	z.MulVec(n.Params.Weights[l-1].T(), prev)
	z.AddVec(z, n.Params.Biases[l])

	a = mat.NewVecDense(size, nil)
	act := n.Activations[l]
	for j := 0; j < size; j++ {
		v, err := act.Value(z.AtVec(j))
		if err != nil {
			return nil, nil, err
		}
		a.SetVec(j, v)
	}
	return z, a, nil
}

// Loss computes the squared error of predicted against observed for this
// network's output width.
func (n *Network) Loss(predicted, observed []float64) (float64, error) {
	return SquaredError(predicted, observed, n.OutputSize())
}
