// Package config parses and validates the command-line configuration of
// the regress tool.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/born-ml/regress/internal/nn"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the CLI configuration.
type Config struct {
	DataPath     string // CSV training data
	LoadPath     string // Saved model to resume from
	Topology     []int
	Hidden       []nn.Activation // nil means ReLU for every hidden layer
	LearningRate float64
	Epochs       int
	Seed         uint64
	Verbose      bool
}

// ParseTopology parses a whitespace- or comma-separated list of layer
// sizes such as "2 3 1".
func ParseTopology(s string) ([]int, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	topology := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d: %q is not an integer", ErrInvalid, i, p)
		}
		topology[i] = n
	}
	return topology, nil
}

// ParseActivations parses hidden-layer activation names for a network with
// the given number of hidden layers.
//
// An empty string yields nil. A single name is applied to every hidden
// layer; otherwise exactly one name per hidden layer is required.
func ParseActivations(s string, hiddenLayers int) ([]nn.Activation, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(parts) == 0 {
		return nil, nil
	}
	if len(parts) == 1 {
		k, err := nn.ParseActivation(parts[0])
		if err != nil {
			return nil, err
		}
		acts := make([]nn.Activation, hiddenLayers)
		for i := range acts {
			acts[i] = k
		}
		return acts, nil
	}
	if len(parts) != hiddenLayers {
		return nil, fmt.Errorf("%w: %d activations for %d hidden layers", ErrInvalid, len(parts), hiddenLayers)
	}
	acts := make([]nn.Activation, len(parts))
	for i, p := range parts {
		k, err := nn.ParseActivation(p)
		if err != nil {
			return nil, err
		}
		acts[i] = k
	}
	return acts, nil
}

// Validate checks that the configuration describes a runnable session.
func Validate(c *Config) error {
	if c.LoadPath != "" {
		if c.DataPath != "" && c.Epochs < 0 {
			return fmt.Errorf("%w: epochs must not be negative", ErrInvalid)
		}
		return nil
	}

	if c.DataPath == "" {
		return fmt.Errorf("%w: either a data file or a model to load is required", ErrInvalid)
	}
	if len(c.Topology) < 1 {
		return fmt.Errorf("%w: topology must have at least one layer", ErrInvalid)
	}
	for i, n := range c.Topology {
		if n < 1 {
			return fmt.Errorf("%w: layer %d has size %d", ErrInvalid, i, n)
		}
	}
	if hidden := max(len(c.Topology)-2, 0); c.Hidden != nil && len(c.Hidden) != hidden {
		return fmt.Errorf("%w: %d hidden activations for %d hidden layers", ErrInvalid, len(c.Hidden), hidden)
	}
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate must be positive, got %v", ErrInvalid, c.LearningRate)
	}
	if c.Epochs < 0 {
		return fmt.Errorf("%w: epochs must not be negative", ErrInvalid)
	}
	return nil
}
