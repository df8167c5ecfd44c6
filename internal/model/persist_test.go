package model

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/regress/internal/nn"
	"github.com/born-ml/regress/internal/serialization"
)

func trainedRegressor(t *testing.T) *Regressor {
	t.Helper()
	r, err := New(Config{
		Topology:     []int{2, 3, 2, 1},
		Hidden:       []nn.Activation{nn.Sigmoid, nn.Tanh},
		LearningRate: 0.07,
		Seed:         31,
	})
	require.NoError(t, err)
	ds := newDataset(t, 2, 1, []float64{0, 1, 1}, []float64{1, 0, -1})
	_, err = r.TrainOnDataset(ds, 5, nil)
	require.NoError(t, err)
	return r
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	r := trainedRegressor(t)
	path := filepath.Join(t.TempDir(), "model.rgrs")

	require.NoError(t, r.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.True(t, r.Equal(loaded))
	assert.Equal(t, 5, loaded.Epochs())
	assert.Equal(t, 0.07, loaded.LearningRate())
	assert.Equal(t, r.Activations(), loaded.Activations())

	x := []float64{0.25, -0.5}
	want, err := r.Predict(x)
	require.NoError(t, err)
	got, err := loaded.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveLoad_ResumeTraining(t *testing.T) {
	r := trainedRegressor(t)
	path := filepath.Join(t.TempDir(), "model.rgrs")
	require.NoError(t, r.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	ds := newDataset(t, 2, 1, []float64{0.5, 0.5, 0})
	_, err = r.TrainOnDataset(ds, 3, nil)
	require.NoError(t, err)
	_, err = loaded.TrainOnDataset(ds, 3, nil)
	require.NoError(t, err)

	assert.True(t, r.Equal(loaded))
	assert.Equal(t, 8, loaded.Epochs())
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.rgrs")

	first, err := NewRegressor([]int{1, 1}, nil, 0.1)
	require.NoError(t, err)
	require.NoError(t, first.Save(path))

	second := trainedRegressor(t)
	require.NoError(t, second.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, second.Equal(loaded))
}

func TestSave_BadDirectory(t *testing.T) {
	r := trainedRegressor(t)
	err := r.Save(filepath.Join(t.TempDir(), "missing", "model.rgrs"))
	assert.Error(t, err)
}

func TestLoad_Corrupt(t *testing.T) {
	r := trainedRegressor(t)
	path := filepath.Join(t.TempDir(), "model.rgrs")
	require.NoError(t, r.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[len(raw)-2] ^= 0xFF
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	_, err = Load(path)
	assert.ErrorIs(t, err, serialization.ErrChecksumMismatch)

	_, err = Load(filepath.Join(t.TempDir(), "absent.rgrs"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeDecode(t *testing.T) {
	r := trainedRegressor(t)

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))
	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.True(t, r.Equal(decoded))
}

func TestDecode_ZeroLearningRate(t *testing.T) {
	c := &serialization.Checkpoint{
		Topology:     []int{1, 1},
		Activations:  []string{"identity", "identity"},
		LearningRate: 0,
		Weights:      [][]float64{{1}},
		Biases:       [][]float64{{0}, {0}},
	}
	var buf bytes.Buffer
	require.NoError(t, serialization.Write(&buf, c))

	_, err := Decode(&buf)
	assert.ErrorIs(t, err, serialization.ErrSchemaMismatch)
}

func TestDecode_UnknownActivation(t *testing.T) {
	c := &serialization.Checkpoint{
		Topology:     []int{1, 1},
		Activations:  []string{"identity", "softplus"},
		LearningRate: 0.1,
		Weights:      [][]float64{{1}},
		Biases:       [][]float64{{0}, {0}},
	}
	var buf bytes.Buffer
	require.NoError(t, serialization.Write(&buf, c))

	_, err := Decode(&buf)
	assert.ErrorIs(t, err, serialization.ErrSchemaMismatch)
}
