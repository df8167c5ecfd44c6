// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides a trainable feedforward regressor.
//
// # Overview
//
// This package contains:
//   - Regressor: owns its parameters, trains by per-example SGD
//   - InferenceRegressor: frozen snapshot safe for concurrent prediction
//   - Reporter: training progress callbacks
//   - Save/Load: versioned, checksummed .rgrs files
//
// # Basic Usage
//
//	r, err := model.NewRegressor([]int{2, 3, 1}, []nn.Activation{nn.Sigmoid}, 0.1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	elapsed, err := r.TrainOnDataset(ds, 1000, nil)
//	prediction, err := r.Predict([]float64{0.5, -1})
//
//	if err := r.Save("model.rgrs"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Snapshots
//
// Snapshot returns an InferenceRegressor holding a deep copy of the current
// parameters. Training the source afterwards does not affect it.
package model
