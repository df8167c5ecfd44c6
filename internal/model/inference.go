package model

import (
	"slices"

	"github.com/born-ml/regress/internal/nn"
	"github.com/born-ml/regress/internal/parallel"
)

// InferenceRegressor is a read-only snapshot of a Regressor.
//
// It shares no storage with its source, so later training does not
// change its predictions.
type InferenceRegressor struct {
	net *nn.Network
}

func newInferenceRegressor(net *nn.Network) *InferenceRegressor {
	return &InferenceRegressor{net: net}
}

// Predict returns the output layer's activations for input.
func (m *InferenceRegressor) Predict(input []float64) ([]float64, error) {
	return m.net.Predict(input)
}

// Loss returns Σ (observed[i] - predicted[i])² over the output layer.
func (m *InferenceRegressor) Loss(predicted, observed []float64) (float64, error) {
	return m.net.Loss(predicted, observed)
}

// PredictBatch runs Predict over every input concurrently.
//
// Results are in input order. If any input fails, the error of the lowest
// failing index is returned.
func (m *InferenceRegressor) PredictBatch(inputs [][]float64) ([][]float64, error) {
	out := make([][]float64, len(inputs))
	err := parallel.ForErr(len(inputs), func(i int) error {
		y, err := m.net.Predict(inputs[i])
		if err != nil {
			return err
		}
		out[i] = y
		return nil
	}, parallel.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Topology returns a copy of the layer sizes.
func (m *InferenceRegressor) Topology() []int {
	return slices.Clone(m.net.Topology)
}

// Activations returns a copy of the per-layer activation sequence.
func (m *InferenceRegressor) Activations() []nn.Activation {
	return slices.Clone(m.net.Activations)
}
