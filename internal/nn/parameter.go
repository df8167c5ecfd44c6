package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Params holds the trainable state of a fully-connected network.
//
// Weights[l] connects layer l to layer l+1 and has shape size(l) x size(l+1),
// so Weights[l].At(i, j) is the weight from neuron i of layer l to neuron j
// of layer l+1. Biases[l] has size(l) entries. The layer-0 biases exist for
// shape symmetry but are never read by the forward pass.
type Params struct {
	Weights []*mat.Dense
	Biases  []*mat.VecDense
}

// Gradients has exactly the shape of Params and holds dLoss/dParam for a
// single training example.
type Gradients struct {
	Weights []*mat.Dense
	Biases  []*mat.VecDense
}

// ValidateTopology checks that a topology has at least one layer and that
// every layer has a positive number of neurons.
func ValidateTopology(topology []int) error {
	if len(topology) == 0 {
		return fmt.Errorf("%w: topology has no layers", ErrDimension)
	}
	for l, n := range topology {
		if n <= 0 {
			return fmt.Errorf("%w: layer %d has size %d", ErrDimension, l, n)
		}
	}
	return nil
}

// NewParams allocates zeroed parameters for the topology.
// The topology must already be valid.
func NewParams(topology []int) *Params {
	w, b := allocate(topology)
	return &Params{Weights: w, Biases: b}
}

// NewGradients allocates zeroed gradients for the topology.
func NewGradients(topology []int) *Gradients {
	w, b := allocate(topology)
	return &Gradients{Weights: w, Biases: b}
}

func allocate(topology []int) ([]*mat.Dense, []*mat.VecDense) {
	weights := make([]*mat.Dense, len(topology)-1)
	for l := range weights {
		weights[l] = mat.NewDense(topology[l], topology[l+1], nil)
	}
	biases := make([]*mat.VecDense, len(topology))
	for l, n := range topology {
		biases[l] = mat.NewVecDense(n, nil)
	}
	return weights, biases
}

// CheckShape verifies every weight and bias against the topology.
func (p *Params) CheckShape(topology []int) error {
	return checkShape("weights", "biases", p.Weights, p.Biases, topology)
}

// CheckShape verifies every gradient entry against the topology.
func (g *Gradients) CheckShape(topology []int) error {
	return checkShape("weight gradient", "bias gradient", g.Weights, g.Biases, topology)
}

func checkShape(wName, bName string, weights []*mat.Dense, biases []*mat.VecDense, topology []int) error {
	if len(weights) != len(topology)-1 {
		return dimensionError(wName, len(weights), len(topology)-1)
	}
	if len(biases) != len(topology) {
		return dimensionError(bName, len(biases), len(topology))
	}
	for l, w := range weights {
		if w == nil {
			return fmt.Errorf("%w: %s[%d] is nil", ErrDimension, wName, l)
		}
		r, c := w.Dims()
		if r != topology[l] || c != topology[l+1] {
			return fmt.Errorf("%w: %s[%d] is %dx%d, expected %dx%d",
				ErrDimension, wName, l, r, c, topology[l], topology[l+1])
		}
	}
	for l, b := range biases {
		if b == nil {
			return fmt.Errorf("%w: %s[%d] is nil", ErrDimension, bName, l)
		}
		if b.Len() != topology[l] {
			return dimensionError(fmt.Sprintf("%s[%d]", bName, l), b.Len(), topology[l])
		}
	}
	return nil
}

// Clone returns a deep copy sharing no storage with p.
func (p *Params) Clone() *Params {
	c := &Params{
		Weights: make([]*mat.Dense, len(p.Weights)),
		Biases:  make([]*mat.VecDense, len(p.Biases)),
	}
	for l, w := range p.Weights {
		c.Weights[l] = mat.DenseCopyOf(w)
	}
	for l, b := range p.Biases {
		v := mat.NewVecDense(b.Len(), nil)
		v.CopyVec(b)
		c.Biases[l] = v
	}
	return c
}

// Equal reports whether p and q have the same shape and bit-identical values.
func (p *Params) Equal(q *Params) bool {
	if len(p.Weights) != len(q.Weights) || len(p.Biases) != len(q.Biases) {
		return false
	}
	for l := range p.Weights {
		pr, pc := p.Weights[l].Dims()
		qr, qc := q.Weights[l].Dims()
		if pr != qr || pc != qc {
			return false
		}
		for i := 0; i < pr; i++ {
			if !sameBits(p.Weights[l].RawRowView(i), q.Weights[l].RawRowView(i)) {
				return false
			}
		}
	}
	for l := range p.Biases {
		if p.Biases[l].Len() != q.Biases[l].Len() {
			return false
		}
		for i := 0; i < p.Biases[l].Len(); i++ {
			if math.Float64bits(p.Biases[l].AtVec(i)) != math.Float64bits(q.Biases[l].AtVec(i)) {
				return false
			}
		}
	}
	return true
}

func sameBits(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}
	return true
}
