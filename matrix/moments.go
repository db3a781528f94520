package matrix

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// MomentsByTime computes the per-gene first and second moments of a
// count layer at each unique labeling time. The returned matrices are
// genes x len(tUniq): column k holds the mean and population variance
// across the cells measured at tUniq[k].
func MomentsByTime(m mat.Matrix, t []float64) (mean, variance *mat.Dense, tUniq []float64) {
	n, _ := m.Dims()
	tUniq, _ = UniqueTimes(t)
	groups := make([][]int, len(tUniq))
	for j, tv := range t {
		for k, uv := range tUniq {
			if tv == uv {
				groups[k] = append(groups[k], j)
				break
			}
		}
	}

	mean = mat.NewDense(n, len(tUniq), nil)
	variance = mat.NewDense(n, len(tUniq), nil)
	for i := 0; i < n; i++ {
		row := Row(m, i)
		for k, g := range groups {
			vals := make([]float64, len(g))
			for q, j := range g {
				vals[q] = row[j]
			}
			mn, err := stats.Mean(vals)
			if err != nil {
				mn = math.NaN()
			}
			vr, err := stats.PopulationVariance(vals)
			if err != nil {
				vr = math.NaN()
			}
			mean.Set(i, k, mn)
			variance.Set(i, k, vr)
		}
	}
	return mean, variance, tUniq
}
