// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the numeric building blocks of a feedforward regressor.
//
// # Overview
//
// This package contains:
//   - Activations: Identity, ReLU, Sigmoid, Tanh
//   - Params: per-layer weight matrices and bias vectors
//   - Network: forward propagation and backpropagation
//   - SquaredError: sum-of-squared-error loss
//
// Most users want the model package, which wraps a Network with an SGD
// optimizer and persistence. Network is exposed for callers that drive
// training themselves.
//
// # Basic Usage
//
//	params := nn.NewParams([]int{2, 3, 1})
//	nn.Uniform(params, -1, 1, rand.NewSource(1))
//
//	net := &nn.Network{
//	    Topology:    []int{2, 3, 1},
//	    Activations: []nn.Activation{nn.Identity, nn.Sigmoid, nn.Identity},
//	    Params:      params,
//	}
//
//	trace, _ := net.Forward([]float64{0.5, -1})
//	grads, _ := net.Backward(trace, []float64{2})
//
// # Conventions
//
// Weights[l] has size(l) rows and size(l+1) columns: entry (i, j) connects
// neuron i of layer l to neuron j of layer l+1. Layer 0 copies the input
// verbatim; its bias and activation are never applied.
package nn
