package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/regress/internal/nn"
)

func TestNewSGD_DefaultLR(t *testing.T) {
	assert.Equal(t, 0.01, NewSGD(SGDConfig{}).GetLR())
	assert.Equal(t, 0.5, NewSGD(SGDConfig{LR: 0.5}).GetLR())
}

func TestSGD_Step(t *testing.T) {
	topology := []int{2, 1}
	params := nn.NewParams(topology)
	params.Weights[0] = mat.NewDense(2, 1, []float64{1, 2})
	params.Biases[0] = mat.NewVecDense(2, []float64{0.5, 0.5})
	params.Biases[1] = mat.NewVecDense(1, []float64{3})

	grads := nn.NewGradients(topology)
	grads.Weights[0] = mat.NewDense(2, 1, []float64{10, -10})
	grads.Biases[0] = mat.NewVecDense(2, []float64{1, 0})
	grads.Biases[1] = mat.NewVecDense(1, []float64{4})

	sgd := NewSGD(SGDConfig{LR: 0.1})
	require.NoError(t, sgd.Step(params, grads))

	assert.InDelta(t, 0.0, params.Weights[0].At(0, 0), 1e-12)
	assert.InDelta(t, 3.0, params.Weights[0].At(1, 0), 1e-12)
	assert.InDelta(t, 0.4, params.Biases[0].AtVec(0), 1e-12)
	assert.InDelta(t, 0.5, params.Biases[0].AtVec(1), 1e-12)
	assert.InDelta(t, 2.6, params.Biases[1].AtVec(0), 1e-12)
}

func TestSGD_StepEveryWeight(t *testing.T) {
	topology := []int{2, 3}
	params := nn.NewParams(topology)
	params.Weights[0] = mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	grads := nn.NewGradients(topology)
	grads.Weights[0] = mat.NewDense(2, 3, []float64{1, -1, 2, -2, 3, -3})

	require.NoError(t, NewSGD(SGDConfig{LR: 0.5}).Step(params, grads))

	want := []float64{0.5, 2.5, 2, 5, 3.5, 7.5}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[i*3+j], params.Weights[0].At(i, j), 1e-12, "weight (%d,%d)", i, j)
		}
	}
}

func TestSGD_ZeroGradientIsNoop(t *testing.T) {
	topology := []int{3, 2, 1}
	params := nn.NewParams(topology)
	params.Weights[0].Set(2, 1, 4)
	before := params.Clone()

	require.NoError(t, NewSGD(SGDConfig{LR: 1}).Step(params, nn.NewGradients(topology)))
	assert.True(t, params.Equal(before))
}

func TestSGD_ShapeMismatch(t *testing.T) {
	params := nn.NewParams([]int{2, 3, 1})
	before := params.Clone()
	sgd := NewSGD(SGDConfig{LR: 0.1})

	tests := []struct {
		name  string
		grads *nn.Gradients
	}{
		{"nil", nil},
		{"fewer layers", nn.NewGradients([]int{2, 3})},
		{"wider layer", nn.NewGradients([]int{2, 4, 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, sgd.Step(params, tt.grads), nn.ErrDimension)
			assert.True(t, params.Equal(before))
		})
	}
}
