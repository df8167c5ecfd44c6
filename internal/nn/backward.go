package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Backward computes the squared-error gradients for one example from the
// trace of its forward pass.
//
// Output layer:
//
//	delta[L-1][i] = 2·(a[L-1][i] - target[i])·act'(z[L-1][i])
//
// Then for l = L-2 down to 0:
//
//	dW[l][i][j] = a[l][i]·delta[l+1][j]
//	delta[l][i] = (Σ_j W[l][i][j]·delta[l+1][j])·act'(z[l][i])
//	dB[l][i]    = delta[l][i]
//
// The layer-0 bias gradient is computed like every other layer even though
// the forward pass never reads layer-0 biases.
func (n *Network) Backward(trace *Trace, target []float64) (*Gradients, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	layers := len(n.Topology)
	if trace == nil || len(trace.Z) != layers || len(trace.A) != layers {
		return nil, fmt.Errorf("%w: trace does not cover %d layers", ErrDimension, layers)
	}
	for l := range n.Topology {
		if trace.Z[l].Len() != n.Topology[l] || trace.A[l].Len() != n.Topology[l] {
			return nil, fmt.Errorf("%w: trace layer %d does not have %d neurons",
				ErrDimension, l, n.Topology[l])
		}
	}
	out := n.OutputSize()
	if len(target) != out {
		return nil, dimensionError("target", len(target), out)
	}

	grads := NewGradients(n.Topology)

	delta := mat.NewVecDense(out, nil)
	last := layers - 1
	for i := 0; i < out; i++ {
		d, err := n.Activations[last].Derivative(trace.Z[last].AtVec(i))
		if err != nil {
			return nil, err
		}
		delta.SetVec(i, 2*(trace.A[last].AtVec(i)-target[i])*d)
	}
	grads.Biases[last].CopyVec(delta)

	for l := layers - 2; l >= 0; l-- {
		grads.Weights[l].Outer(1, trace.A[l], delta)

		size := n.Topology[l]
		dCda := mat.NewVecDense(size, nil)
		dCda.MulVec(n.Params.Weights[l], delta)

		next := mat.NewVecDense(size, nil)
		for i := 0; i < size; i++ {
			d, err := n.Activations[l].Derivative(trace.Z[l].AtVec(i))
			if err != nil {
				return nil, err
			}
			next.SetVec(i, dCda.AtVec(i)*d)
		}
		grads.Biases[l].CopyVec(next)
		delta = next
	}

	if err := grads.CheckShape(n.Topology); err != nil {
		return nil, err
	}
	return grads, nil
}
