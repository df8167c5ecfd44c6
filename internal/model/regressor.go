// Package model implements the trainable Regressor and its frozen
// InferenceRegressor snapshot.
//
// A Regressor owns its parameters exclusively and is not safe for
// concurrent use. An InferenceRegressor never changes after construction
// and may be shared freely between goroutines.
package model

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/regress/internal/dataset"
	"github.com/born-ml/regress/internal/nn"
	"github.com/born-ml/regress/internal/optim"
)

// Errors returned by constructors and training.
var (
	ErrEpochCount   = errors.New("epoch count must not be negative")
	ErrLearningRate = errors.New("learning rate must be finite and non-zero")

	// ErrActivationConfig is returned when a Config sets both Activations and Hidden.
	ErrActivationConfig = errors.New("set either Activations or Hidden, not both")
)

// Config holds the construction parameters of a Regressor.
type Config struct {
	// Topology lists the layer sizes, input first. At least one layer.
	Topology []int

	// Activations is the full per-layer sequence and must have one entry
	// per layer. When nil, the sequence is built from Hidden with Identity
	// on the input and output layers.
	Activations []nn.Activation

	// Hidden lists one activation per hidden layer (len(Topology)-2 entries).
	// When both Activations and Hidden are nil every hidden layer uses ReLU.
	// Setting both is an error.
	Hidden []nn.Activation

	// LearningRate is the SGD step size. Zero, NaN and ±Inf are rejected.
	LearningRate float64

	// Seed makes weight initialisation reproducible. Zero seeds from the clock.
	Seed uint64
}

// Regressor is a fully-connected feedforward network trained by per-example
// stochastic gradient descent under squared error.
type Regressor struct {
	net   *nn.Network
	opt   *optim.SGD
	epoch int
}

// New builds a Regressor from cfg with every weight and bias drawn
// independently from U(-1, 1).
func New(cfg Config) (*Regressor, error) {
	if err := nn.ValidateTopology(cfg.Topology); err != nil {
		return nil, err
	}
	acts, err := resolveActivations(cfg)
	if err != nil {
		return nil, err
	}
	if err := validateLearningRate(cfg.LearningRate); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		//nolint:gosec // G115: clock value only seeds weight initialisation
		seed = uint64(time.Now().UnixNano())
	}

	topology := slices.Clone(cfg.Topology)
	params := nn.NewParams(topology)
	nn.Uniform(params, -1, 1, rand.NewSource(seed))

	net := &nn.Network{Topology: topology, Activations: acts, Params: params}
	if err := net.Validate(); err != nil {
		return nil, err
	}

	return &Regressor{
		net: net,
		opt: optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate}),
	}, nil
}

// NewRegressor creates a Regressor whose input and output layers use
// Identity and whose hidden layers use the given activations.
// A nil hidden list means ReLU for every hidden layer.
func NewRegressor(topology []int, hidden []nn.Activation, learningRate float64) (*Regressor, error) {
	return New(Config{Topology: topology, Hidden: hidden, LearningRate: learningRate})
}

// NewRegressorWithActivations creates a Regressor with an explicit
// activation for every layer. len(activations) must equal len(topology).
func NewRegressorWithActivations(topology []int, activations []nn.Activation, learningRate float64) (*Regressor, error) {
	if activations == nil {
		activations = []nn.Activation{}
	}
	return New(Config{Topology: topology, Activations: activations, LearningRate: learningRate})
}

func validateLearningRate(lr float64) error {
	if lr == 0 || math.IsNaN(lr) || math.IsInf(lr, 0) {
		return fmt.Errorf("%w: got %v", ErrLearningRate, lr)
	}
	return nil
}

func resolveActivations(cfg Config) ([]nn.Activation, error) {
	layers := len(cfg.Topology)

	if cfg.Activations != nil && cfg.Hidden != nil {
		return nil, ErrActivationConfig
	}
	if cfg.Activations != nil {
		if len(cfg.Activations) != layers {
			return nil, fmt.Errorf("%w: %d activations for %d layers",
				nn.ErrDimension, len(cfg.Activations), layers)
		}
		acts := slices.Clone(cfg.Activations)
		return acts, nn.ValidateActivations(acts)
	}

	hiddenLayers := max(layers-2, 0)
	hidden := cfg.Hidden
	if hidden == nil {
		hidden = make([]nn.Activation, hiddenLayers)
		for i := range hidden {
			hidden[i] = nn.ReLU
		}
	}
	if len(hidden) != hiddenLayers {
		return nil, fmt.Errorf("%w: %d hidden activations for %d hidden layers",
			nn.ErrDimension, len(hidden), hiddenLayers)
	}

	acts := make([]nn.Activation, layers)
	copy(acts[min(1, layers-1):], hidden)
	acts[0] = nn.Identity
	acts[layers-1] = nn.Identity
	return acts, nn.ValidateActivations(acts)
}

// TrainOnPoint performs one gradient-descent step on a single example:
// forward pass, backpropagation, then update.
//
// It returns the loss of the example before the update.
func (r *Regressor) TrainOnPoint(input, target []float64) (float64, error) {
	if len(target) != r.net.OutputSize() {
		return 0, fmt.Errorf("%w: target has length %d, expected %d",
			nn.ErrDimension, len(target), r.net.OutputSize())
	}
	trace, err := r.net.Forward(input)
	if err != nil {
		return 0, err
	}
	loss, err := r.net.Loss(trace.Output(), target)
	if err != nil {
		return 0, err
	}
	grads, err := r.net.Backward(trace, target)
	if err != nil {
		return 0, err
	}
	if err := r.opt.Step(r.net.Params, grads); err != nil {
		return 0, err
	}
	return loss, nil
}

// TrainOnDataset trains for the given number of epochs, visiting the points
// in insertion order each epoch, and returns the wall-clock time taken.
//
// When rep is non-nil, each point's loss is recomputed right after its own
// update and reported, and the sum over the epoch is reported once the
// epoch completes. Epoch numbers passed to rep are the persistent,
// one-based epoch counter of this Regressor.
func (r *Regressor) TrainOnDataset(ds *dataset.Dataset, epochs int, rep Reporter) (time.Duration, error) {
	if ds == nil {
		return 0, fmt.Errorf("%w: no dataset", nn.ErrDimension)
	}
	if ds.DimX() != r.net.InputSize() || ds.DimY() != r.net.OutputSize() {
		return 0, fmt.Errorf("%w: dataset is %dx%d, network is %dx%d",
			nn.ErrDimension, ds.DimX(), ds.DimY(), r.net.InputSize(), r.net.OutputSize())
	}
	if epochs < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrEpochCount, epochs)
	}

	start := time.Now()
	points := ds.Points()

	var losses []float64
	if rep != nil {
		losses = make([]float64, len(points))
	}

	for e := 0; e < epochs; e++ {
		for i, p := range points {
			x, y := p.X(), p.Y()
			if _, err := r.TrainOnPoint(x, y); err != nil {
				return time.Since(start), fmt.Errorf("epoch %d, point %d: %w", r.epoch+1, i, err)
			}
			if rep != nil {
				loss, err := r.pointLoss(x, y)
				if err != nil {
					return time.Since(start), fmt.Errorf("epoch %d, point %d: %w", r.epoch+1, i, err)
				}
				losses[i] = loss
				rep.PointLoss(r.epoch+1, i, loss)
			}
		}
		r.epoch++

		if rep != nil {
			rep.EpochLoss(r.epoch, floats.Sum(losses))
		}
	}

	return time.Since(start), nil
}

func (r *Regressor) pointLoss(x, y []float64) (float64, error) {
	predicted, err := r.net.Predict(x)
	if err != nil {
		return 0, err
	}
	return r.net.Loss(predicted, y)
}

// Predict returns the output layer's activations for input.
func (r *Regressor) Predict(input []float64) ([]float64, error) {
	return r.net.Predict(input)
}

// Loss returns Σ (observed[i] - predicted[i])² over the output layer.
func (r *Regressor) Loss(predicted, observed []float64) (float64, error) {
	return r.net.Loss(predicted, observed)
}

// Snapshot returns a frozen deep copy of the current parameters.
func (r *Regressor) Snapshot() *InferenceRegressor {
	return newInferenceRegressor(r.net.Clone())
}

// Topology returns a copy of the layer sizes.
func (r *Regressor) Topology() []int {
	return slices.Clone(r.net.Topology)
}

// Activations returns a copy of the per-layer activation sequence.
func (r *Regressor) Activations() []nn.Activation {
	return slices.Clone(r.net.Activations)
}

// LearningRate returns the SGD step size.
func (r *Regressor) LearningRate() float64 {
	return r.opt.GetLR()
}

// Epochs returns the number of completed training epochs.
func (r *Regressor) Epochs() int {
	return r.epoch
}

// Params returns a deep copy of the weights and biases.
func (r *Regressor) Params() *nn.Params {
	return r.net.Params.Clone()
}

// Equal reports whether r and o have identical topology, activations,
// learning rate, epoch counter and bit-identical parameters.
func (r *Regressor) Equal(o *Regressor) bool {
	return slices.Equal(r.net.Topology, o.net.Topology) &&
		slices.Equal(r.net.Activations, o.net.Activations) &&
		math.Float64bits(r.LearningRate()) == math.Float64bits(o.LearningRate()) &&
		r.epoch == o.epoch &&
		r.net.Params.Equal(o.net.Params)
}
