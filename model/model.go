// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model

import (
	"io"

	"github.com/born-ml/regress/internal/model"
	"github.com/born-ml/regress/internal/nn"
)

// Config holds the construction parameters of a Regressor.
type Config = model.Config

// Regressor is a feedforward network trained by per-example SGD.
type Regressor = model.Regressor

// InferenceRegressor is a read-only snapshot of a Regressor.
type InferenceRegressor = model.InferenceRegressor

// Reporter receives training progress.
type Reporter = model.Reporter

// ReporterFuncs adapts plain functions to Reporter.
type ReporterFuncs = model.ReporterFuncs

// Errors returned by constructors and training.
var (
	ErrEpochCount       = model.ErrEpochCount
	ErrLearningRate     = model.ErrLearningRate
	ErrActivationConfig = model.ErrActivationConfig
)

// New builds a Regressor from cfg.
func New(cfg Config) (*Regressor, error) {
	return model.New(cfg)
}

// NewRegressor creates a Regressor with Identity input and output layers.
// A nil hidden list means ReLU for every hidden layer.
func NewRegressor(topology []int, hidden []nn.Activation, learningRate float64) (*Regressor, error) {
	return model.NewRegressor(topology, hidden, learningRate)
}

// NewRegressorWithActivations creates a Regressor with one activation per layer.
func NewRegressorWithActivations(topology []int, activations []nn.Activation, learningRate float64) (*Regressor, error) {
	return model.NewRegressorWithActivations(topology, activations, learningRate)
}

// Load reads a regressor previously written by Save.
func Load(path string) (*Regressor, error) {
	return model.Load(path)
}

// Decode reads a regressor in .rgrs format from r.
func Decode(r io.Reader) (*Regressor, error) {
	return model.Decode(r)
}
