package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation identifies one of the supported nonlinearities.
//
// The set is closed: every kind has a value and a derivative registered in
// the activations table, and the table is checked at package init.
type Activation uint8

// Supported activation kinds.
const (
	Identity Activation = iota
	ReLU
	Sigmoid
	Tanh

	numActivations
)

type activationFuncs struct {
	name       string
	value      func(a float64) float64
	derivative func(z float64) float64
}

var activations = [numActivations]activationFuncs{
	Identity: {
		name:       "identity",
		value:      func(a float64) float64 { return a },
		derivative: func(float64) float64 { return 1 },
	},
	ReLU: {
		name:  "relu",
		value: func(a float64) float64 { return math.Max(0, a) },
		derivative: func(z float64) float64 {
			if z > 0 {
				return 1
			}
			return 0
		},
	},
	Sigmoid: {
		name:  "sigmoid",
		value: sigmoid,
		derivative: func(z float64) float64 {
			s := sigmoid(z)
			return s * (1 - s)
		},
	},
	Tanh: {
		name:  "tanh",
		value: math.Tanh,
		derivative: func(z float64) float64 {
			t := math.Tanh(z)
			return 1 - t*t
		},
	},
}

func init() {
	for k, f := range activations {
		if f.name == "" || f.value == nil || f.derivative == nil {
			panic(fmt.Sprintf("nn: activation %d is missing its value or derivative", k))
		}
	}
}

func sigmoid(a float64) float64 {
	return 1 / (1 + math.Exp(-a))
}

// Valid reports whether k belongs to the supported set.
func (k Activation) Valid() bool {
	return k < numActivations
}

// String returns the lower-case name of the activation.
func (k Activation) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Activation(%d)", uint8(k))
	}
	return activations[k].name
}

// Value applies the activation to a pre-activation sum.
func (k Activation) Value(a float64) (float64, error) {
	if !k.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrActivation, k)
	}
	return activations[k].value(a), nil
}

// Derivative returns d activation / dz evaluated at z.
//
// ReLU uses 0 as its subgradient at z = 0.
func (k Activation) Derivative(z float64) (float64, error) {
	if !k.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrActivation, k)
	}
	return activations[k].derivative(z), nil
}

// ParseActivation maps a name such as "relu" or "Sigmoid" to its kind.
func ParseActivation(name string) (Activation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := range activations {
		if activations[k].name == name {
			return Activation(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown activation %q", ErrActivation, name)
}

// ValidateActivations checks that every kind in seq is supported.
func ValidateActivations(seq []Activation) error {
	for l, k := range seq {
		if !k.Valid() {
			return fmt.Errorf("%w: layer %d uses %s", ErrActivation, l, k)
		}
	}
	return nil
}
