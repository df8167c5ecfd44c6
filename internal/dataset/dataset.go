// Package dataset holds labelled examples for supervised regression.
//
// A Dataset fixes an input width and a target width at construction and
// rejects any point that does not match them, so every stored point is
// usable by a network with the same boundary sizes.
package dataset

import (
	"fmt"

	"github.com/born-ml/regress/internal/nn"
)

// DataPoint is an immutable (input, target) pair.
type DataPoint struct {
	x []float64
	y []float64
}

// NewDataPoint copies x and y into a new point.
func NewDataPoint(x, y []float64) DataPoint {
	return DataPoint{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}
}

// X returns a copy of the input vector.
func (p DataPoint) X() []float64 {
	return append([]float64(nil), p.x...)
}

// Y returns a copy of the target vector.
func (p DataPoint) Y() []float64 {
	return append([]float64(nil), p.y...)
}

// Dataset is an ordered sequence of points sharing one input/target width.
//
// Iteration order is insertion order.
type Dataset struct {
	dimX   int
	dimY   int
	points []DataPoint
}

// New creates an empty dataset for inputs of width dimX and targets of
// width dimY.
func New(dimX, dimY int) (*Dataset, error) {
	if dimX <= 0 || dimY <= 0 {
		return nil, fmt.Errorf("%w: dataset dimensions must be positive, got %d and %d",
			nn.ErrDimension, dimX, dimY)
	}
	return &Dataset{dimX: dimX, dimY: dimY}, nil
}

// DimX returns the input width.
func (d *Dataset) DimX() int { return d.dimX }

// DimY returns the target width.
func (d *Dataset) DimY() int { return d.dimY }

// Len returns the number of stored points.
func (d *Dataset) Len() int { return len(d.points) }

// At returns the i-th point in insertion order.
func (d *Dataset) At(i int) DataPoint { return d.points[i] }

// Points returns the stored points in insertion order.
// The returned slice is a copy; the points themselves are immutable.
func (d *Dataset) Points() []DataPoint {
	return append([]DataPoint(nil), d.points...)
}

// Add appends p after checking both of its widths.
// On mismatch the dataset is left unchanged.
func (d *Dataset) Add(p DataPoint) error {
	if len(p.x) != d.dimX {
		return fmt.Errorf("cannot add point: %w: input has length %d, expected %d",
			nn.ErrDimension, len(p.x), d.dimX)
	}
	if len(p.y) != d.dimY {
		return fmt.Errorf("cannot add point: %w: target has length %d, expected %d",
			nn.ErrDimension, len(p.y), d.dimY)
	}
	d.points = append(d.points, p)
	return nil
}

// AddPoint is shorthand for Add(NewDataPoint(x, y)).
func (d *Dataset) AddPoint(x, y []float64) error {
	return d.Add(NewDataPoint(x, y))
}
