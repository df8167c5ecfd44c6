package model

import (
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/regress/internal/nn"
	"github.com/born-ml/regress/internal/optim"
	"github.com/born-ml/regress/internal/serialization"
)

// Save writes the regressor to path in .rgrs format.
//
// The file is replaced atomically: a failed save leaves any previous file
// at path untouched.
func (r *Regressor) Save(path string) error {
	if err := serialization.WriteFile(path, r.checkpoint()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Encode writes the regressor in .rgrs format to w.
func (r *Regressor) Encode(w io.Writer) error {
	return serialization.Write(w, r.checkpoint())
}

// Load reads a regressor previously written by Save.
//
// The result is bit-identical to the saved regressor, including its
// learning rate and epoch counter.
func Load(path string) (*Regressor, error) {
	c, err := serialization.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	r, err := fromCheckpoint(c)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return r, nil
}

// Decode reads a regressor in .rgrs format from rd.
func Decode(rd io.Reader) (*Regressor, error) {
	c, err := serialization.Read(rd)
	if err != nil {
		return nil, err
	}
	return fromCheckpoint(c)
}

func (r *Regressor) checkpoint() *serialization.Checkpoint {
	p := r.net.Params

	c := &serialization.Checkpoint{
		Topology:     slices.Clone(r.net.Topology),
		Activations:  make([]string, len(r.net.Activations)),
		LearningRate: r.opt.GetLR(),
		Epoch:        r.epoch,
		Weights:      make([][]float64, len(p.Weights)),
		Biases:       make([][]float64, len(p.Biases)),
	}
	for l, k := range r.net.Activations {
		c.Activations[l] = k.String()
	}
	for l, w := range p.Weights {
		rows, cols := w.Dims()
		values := make([]float64, 0, rows*cols)
		for i := 0; i < rows; i++ {
			values = append(values, w.RawRowView(i)...)
		}
		c.Weights[l] = values
	}
	for l, b := range p.Biases {
		c.Biases[l] = mat.Col(nil, 0, b)
	}
	return c
}

func fromCheckpoint(c *serialization.Checkpoint) (*Regressor, error) {
	acts := make([]nn.Activation, len(c.Activations))
	for l, name := range c.Activations {
		k, err := nn.ParseActivation(name)
		if err != nil {
			return nil, &serialization.ValidationError{
				Type:    "activation",
				Details: fmt.Sprintf("layer %d: %v", l, err),
				Err:     serialization.ErrSchemaMismatch,
			}
		}
		acts[l] = k
	}

	topology := slices.Clone(c.Topology)
	params := &nn.Params{
		Weights: make([]*mat.Dense, len(c.Weights)),
		Biases:  make([]*mat.VecDense, len(c.Biases)),
	}
	for l, values := range c.Weights {
		params.Weights[l] = mat.NewDense(topology[l], topology[l+1], slices.Clone(values))
	}
	for l, values := range c.Biases {
		params.Biases[l] = mat.NewVecDense(len(values), slices.Clone(values))
	}

	net := &nn.Network{Topology: topology, Activations: acts, Params: params}
	if err := net.Validate(); err != nil {
		return nil, err
	}
	if err := validateLearningRate(c.LearningRate); err != nil {
		return nil, &serialization.ValidationError{
			Type:    "hyperparameters",
			Details: err.Error(),
			Err:     serialization.ErrSchemaMismatch,
		}
	}

	return &Regressor{
		net:   net,
		opt:   optim.NewSGD(optim.SGDConfig{LR: c.LearningRate}),
		epoch: c.Epoch,
	}, nil
}
