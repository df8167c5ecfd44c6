// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter updater used to train regressors.
//
// # Overview
//
// This package contains:
//   - SGD: plain stochastic gradient descent, param -= lr * grad
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//
//	for _, p := range points {
//	    trace, _ := net.Forward(p.X())
//	    grads, _ := net.Backward(trace, p.Y())
//	    _ = opt.Step(net.Params, grads)
//	}
package optim
