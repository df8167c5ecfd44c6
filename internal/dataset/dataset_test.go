package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/regress/internal/nn"
)

func TestNew(t *testing.T) {
	ds, err := New(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.DimX())
	assert.Equal(t, 1, ds.DimY())
	assert.Zero(t, ds.Len())

	_, err = New(0, 1)
	assert.ErrorIs(t, err, nn.ErrDimension)
	_, err = New(1, -1)
	assert.ErrorIs(t, err, nn.ErrDimension)
}

func TestDataset_AddKeepsOrder(t *testing.T) {
	ds, err := New(2, 1)
	require.NoError(t, err)

	require.NoError(t, ds.AddPoint([]float64{0, 0}, []float64{0}))
	require.NoError(t, ds.AddPoint([]float64{1, 0}, []float64{1}))
	require.NoError(t, ds.Add(NewDataPoint([]float64{1, 1}, []float64{2})))

	require.Equal(t, 3, ds.Len())
	for i, p := range ds.Points() {
		assert.Equal(t, float64(i), p.Y()[0])
	}
	assert.Equal(t, []float64{1, 0}, ds.At(1).X())
}

func TestDataset_RejectsWrongWidth(t *testing.T) {
	ds, err := New(2, 1)
	require.NoError(t, err)
	require.NoError(t, ds.AddPoint([]float64{1, 2}, []float64{3}))

	tests := []struct {
		name string
		x, y []float64
	}{
		{"short input", []float64{1}, []float64{3}},
		{"long input", []float64{1, 2, 3}, []float64{3}},
		{"empty target", []float64{1, 2}, nil},
		{"long target", []float64{1, 2}, []float64{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ds.AddPoint(tt.x, tt.y), nn.ErrDimension)
			assert.Equal(t, 1, ds.Len(), "rejected point must not be stored")
		})
	}
}

func TestDataPoint_IsImmutable(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3}
	p := NewDataPoint(x, y)

	x[0] = 100
	p.Y()[0] = 100

	assert.Equal(t, []float64{1, 2}, p.X())
	assert.Equal(t, []float64{3}, p.Y())
}
