package nn

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform fills every weight and bias of p with independent draws from
// U(lo, hi).
//
// A nil src draws from the global source.
func Uniform(p *Params, lo, hi float64, src rand.Source) {
	dist := distuv.Uniform{Min: lo, Max: hi, Src: src}

	for _, b := range p.Biases {
		for i := 0; i < b.Len(); i++ {
			b.SetVec(i, dist.Rand())
		}
	}
	for _, w := range p.Weights {
		r, _ := w.Dims()
		for i := 0; i < r; i++ {
			row := w.RawRowView(i)
			for j := range row {
				row[j] = dist.Rand()
			}
		}
	}
}
