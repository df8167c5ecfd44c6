// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides fixed-dimension collections of training points.
package dataset

import (
	"io"

	"github.com/born-ml/regress/internal/dataset"
)

// DataPoint is one (input, target) example.
type DataPoint = dataset.DataPoint

// Dataset is an ordered collection of points sharing one input and one
// target dimension.
type Dataset = dataset.Dataset

// NewDataPoint copies x and y into a new point.
func NewDataPoint(x, y []float64) DataPoint {
	return dataset.NewDataPoint(x, y)
}

// New creates an empty dataset.
func New(dimX, dimY int) (*Dataset, error) {
	return dataset.New(dimX, dimY)
}

// LoadCSV reads rows of dimX inputs followed by dimY targets.
func LoadCSV(r io.Reader, dimX, dimY int) (*Dataset, error) {
	return dataset.LoadCSV(r, dimX, dimY)
}

// LoadCSVFile opens filename and reads it with LoadCSV.
func LoadCSVFile(filename string, dimX, dimY int) (*Dataset, error) {
	return dataset.LoadCSVFile(filename, dimX, dimY)
}
