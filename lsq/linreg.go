// Package lsq implements the regression and closed-form kinetics
// primitives the estimation engine dispatches into: extreme-tail masked
// ordinary least squares, stochastic-moment regression, and the
// analytic solutions of the first-order transcription/splicing/
// degradation ODEs together with their least-squares fits.
package lsq

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FindExtreme selects the cells used for a steady-state regression: the
// lower percLeft percent and upper percRight percent of cells ranked by
// combined unspliced+spliced magnitude, discarding the noisy middle
// where the steady-state relationship is least plausible. A nil
// percentage disables that tail; a nil percRight keeps every cell.
// When normalize is set the two layers are first scaled to comparable
// range.
func FindExtreme(s, u []float64, normalize bool, percLeft, percRight *float64) []bool {
	n := len(s)
	mask := make([]bool, n)
	if n == 0 {
		return mask
	}

	su := make([]float64, n)
	if normalize {
		sm := math.Max(floats.Max(s), 1e-3)
		um := math.Max(floats.Max(u), 1e-3)
		for i := range su {
			su[i] = s[i]/sm + u[i]/um
		}
	} else {
		copy(su, s)
	}

	switch {
	case percRight == nil:
		for i := range mask {
			mask[i] = true
		}
	case percLeft == nil:
		hi, err := stats.Percentile(su, 100-*percRight)
		if err != nil {
			hi = math.Inf(-1)
		}
		for i := range mask {
			mask[i] = su[i] >= hi
		}
	default:
		lo, err := stats.Percentile(su, *percLeft)
		if err != nil {
			lo = math.Inf(-1)
		}
		hi, err := stats.Percentile(su, 100-*percRight)
		if err != nil {
			hi = math.Inf(-1)
		}
		for i := range mask {
			mask[i] = su[i] <= lo || su[i] >= hi
		}
	}
	return mask
}

// FitLinreg fits y = b + k*x over the masked points. With intercept
// false the intercept is fixed at zero. Returns the slope, the
// intercept, and the coefficient of determination over the masked
// points and over all points.
func FitLinreg(x, y []float64, mask []bool, intercept bool) (k, b, r2, allR2 float64) {
	xm := make([]float64, 0, len(x))
	ym := make([]float64, 0, len(y))
	for i, ok := range mask {
		if ok {
			xm = append(xm, x[i])
			ym = append(ym, y[i])
		}
	}
	if len(xm) == 0 {
		nan := math.NaN()
		return nan, nan, nan, nan
	}
	b, k = stat.LinearRegression(xm, ym, nil, !intercept)
	r2 = stat.RSquared(xm, ym, nil, b, k)
	allR2 = stat.RSquared(x, y, nil, b, k)
	return k, b, r2, allR2
}

// FitStochasticLinreg estimates the degradation rate from first and
// second moments of unspliced/spliced counts under the stochastic
// splicing model. The slope is fit through the origin over the stacked
// moment conditions E[u] = g*E[s] and 2*E[us]+E[u] = g*(2*E[s2]-E[s]).
func FitStochasticLinreg(u, s, us, s2 []float64) float64 {
	n := len(u)
	x := make([]float64, 0, 2*n)
	y := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		x = append(x, s[i])
		y = append(y, u[i])
	}
	for i := 0; i < n; i++ {
		x = append(x, 2*s2[i]-s[i])
		y = append(y, 2*us[i]+u[i])
	}
	den := floats.Dot(x, x)
	if den == 0 {
		return math.NaN()
	}
	return floats.Dot(x, y) / den
}
