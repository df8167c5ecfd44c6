package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/regress/internal/nn"
)

func TestParseTopology(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"2 3 1", []int{2, 3, 1}, false},
		{"2,3,1", []int{2, 3, 1}, false},
		{"  4\t2 ", []int{4, 2}, false},
		{"", []int{}, false},
		{"2 x 1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTopology(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseActivations(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		acts, err := ParseActivations("", 2)
		require.NoError(t, err)
		assert.Nil(t, acts)
	})

	t.Run("broadcast", func(t *testing.T) {
		acts, err := ParseActivations("sigmoid", 3)
		require.NoError(t, err)
		assert.Equal(t, []nn.Activation{nn.Sigmoid, nn.Sigmoid, nn.Sigmoid}, acts)
	})

	t.Run("per layer", func(t *testing.T) {
		acts, err := ParseActivations("relu,tanh", 2)
		require.NoError(t, err)
		assert.Equal(t, []nn.Activation{nn.ReLU, nn.Tanh}, acts)
	})

	t.Run("count mismatch", func(t *testing.T) {
		_, err := ParseActivations("relu tanh", 3)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseActivations("softmax", 1)
		assert.ErrorIs(t, err, nn.ErrActivation)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DataPath:     "train.csv",
			Topology:     []int{2, 3, 1},
			LearningRate: 0.1,
			Epochs:       10,
		}
	}

	require.NoError(t, Validate(valid()))

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no source", func(c *Config) { c.DataPath = "" }},
		{"empty topology", func(c *Config) { c.Topology = nil }},
		{"zero layer", func(c *Config) { c.Topology = []int{2, 0, 1} }},
		{"hidden count", func(c *Config) { c.Hidden = []nn.Activation{nn.ReLU, nn.ReLU} }},
		{"zero lr", func(c *Config) { c.LearningRate = 0 }},
		{"negative epochs", func(c *Config) { c.Epochs = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.ErrorIs(t, Validate(c), ErrInvalid)
		})
	}

	t.Run("load only", func(t *testing.T) {
		assert.NoError(t, Validate(&Config{LoadPath: "model.rgrs"}))
	})
}
