package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestNewParams_Shapes(t *testing.T) {
	topology := []int{3, 5, 2}
	p := NewParams(topology)

	require.Len(t, p.Weights, 2)
	require.Len(t, p.Biases, 3)

	r, c := p.Weights[0].Dims()
	assert.Equal(t, []int{3, 5}, []int{r, c})
	r, c = p.Weights[1].Dims()
	assert.Equal(t, []int{5, 2}, []int{r, c})
	for l, n := range topology {
		assert.Equal(t, n, p.Biases[l].Len())
	}
	assert.NoError(t, p.CheckShape(topology))
	assert.ErrorIs(t, p.CheckShape([]int{3, 4, 2}), ErrDimension)
	assert.ErrorIs(t, p.CheckShape([]int{3, 5}), ErrDimension)
}

func TestValidateTopology(t *testing.T) {
	assert.NoError(t, ValidateTopology([]int{1}))
	assert.NoError(t, ValidateTopology([]int{4, 2, 1}))
	assert.ErrorIs(t, ValidateTopology(nil), ErrDimension)
	assert.ErrorIs(t, ValidateTopology([]int{2, 0, 1}), ErrDimension)
	assert.ErrorIs(t, ValidateTopology([]int{-1}), ErrDimension)
}

func TestUniform(t *testing.T) {
	topology := []int{4, 8, 3}

	a := NewParams(topology)
	Uniform(a, -1, 1, rand.NewSource(123))
	b := NewParams(topology)
	Uniform(b, -1, 1, rand.NewSource(123))
	c := NewParams(topology)
	Uniform(c, -1, 1, rand.NewSource(124))

	assert.True(t, a.Equal(b), "same seed must give the same parameters")
	assert.False(t, a.Equal(c), "different seeds should give different parameters")

	inRange := func(v float64) bool { return v >= -1 && v < 1 }
	for _, w := range a.Weights {
		r, _ := w.Dims()
		for i := 0; i < r; i++ {
			for _, v := range w.RawRowView(i) {
				assert.True(t, inRange(v), "weight %v out of range", v)
			}
		}
	}
	for _, bias := range a.Biases {
		for i := 0; i < bias.Len(); i++ {
			assert.True(t, inRange(bias.AtVec(i)), "bias %v out of range", bias.AtVec(i))
		}
	}
}

func TestParams_CloneIsDeep(t *testing.T) {
	p := NewParams([]int{2, 2})
	Uniform(p, -1, 1, rand.NewSource(1))

	c := p.Clone()
	require.True(t, c.Equal(p))

	c.Weights[0].Set(1, 1, 7)
	c.Biases[1].SetVec(0, 7)
	assert.False(t, c.Equal(p))
	assert.NotEqual(t, 7.0, p.Weights[0].At(1, 1))
	assert.NotEqual(t, 7.0, p.Biases[1].AtVec(0))
}

func TestParams_EqualIsBitwise(t *testing.T) {
	p := NewParams([]int{1, 1})
	q := NewParams([]int{1, 1})
	require.True(t, p.Equal(q))

	q.Weights[0].Set(0, 0, math.Copysign(0, -1))
	assert.False(t, p.Equal(q), "0 and -0 differ bitwise")

	p.Weights[0].Set(0, 0, math.NaN())
	q.Weights[0].Set(0, 0, math.NaN())
	assert.True(t, p.Equal(q), "identical NaN bits compare equal")

	assert.False(t, p.Equal(NewParams([]int{1, 2})))
}

func TestGradients_CheckShape(t *testing.T) {
	g := NewGradients([]int{2, 3})
	assert.NoError(t, g.CheckShape([]int{2, 3}))

	g.Biases[1] = mat.NewVecDense(2, nil)
	assert.ErrorIs(t, g.CheckShape([]int{2, 3}), ErrDimension)

	g.Weights[0] = nil
	assert.ErrorIs(t, g.CheckShape([]int{2, 3}), ErrDimension)
}
