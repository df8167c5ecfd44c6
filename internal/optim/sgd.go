package optim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/regress/internal/nn"
)

// SGD implements plain gradient descent:
//
//	param = param - lr * gradient
//
// There is no momentum, no decay and no regularization.
type SGD struct {
	lr float64
}

var _ Optimizer = (*SGD)(nil)

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Step performs param -= lr * grad for every weight and bias.
func (s *SGD) Step(params *nn.Params, grads *nn.Gradients) error {
	if err := matchShapes(params, grads); err != nil {
		return err
	}

	for l, w := range params.Weights {
		g := grads.Weights[l]
		rows, _ := w.Dims()
		for i := 0; i < rows; i++ {
			floats.AddScaled(w.RawRowView(i), -s.lr, g.RawRowView(i))
		}
	}
	for l, b := range params.Biases {
		b.AddScaledVec(b, -s.lr, grads.Biases[l])
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

func matchShapes(params *nn.Params, grads *nn.Gradients) error {
	if params == nil || grads == nil {
		return fmt.Errorf("%w: missing parameters or gradients", nn.ErrDimension)
	}
	if len(params.Weights) != len(grads.Weights) || len(params.Biases) != len(grads.Biases) {
		return fmt.Errorf("%w: parameters have %d/%d layers, gradients %d/%d",
			nn.ErrDimension, len(params.Weights), len(params.Biases), len(grads.Weights), len(grads.Biases))
	}
	for l, w := range params.Weights {
		pr, pc := w.Dims()
		gr, gc := grads.Weights[l].Dims()
		if pr != gr || pc != gc {
			return fmt.Errorf("%w: weight layer %d is %dx%d, gradient is %dx%d",
				nn.ErrDimension, l, pr, pc, gr, gc)
		}
	}
	for l, b := range params.Biases {
		if b.Len() != grads.Biases[l].Len() {
			return fmt.Errorf("%w: bias layer %d has %d entries, gradient has %d",
				nn.ErrDimension, l, b.Len(), grads.Biases[l].Len())
		}
	}
	return nil
}
