package estimate

import (
	"math"

	"github.com/montanaflynn/stats"
)

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

func nans(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = math.NaN()
	}
	return v
}

func addVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// subset picks the values of v at the given indices.
func subset(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = v[i]
	}
	return out
}

func subsetMask(v []float64, mask []bool) []float64 {
	out := make([]float64, 0, len(v))
	for i, ok := range mask {
		if ok {
			out = append(out, v[i])
		}
	}
	return out
}

// cellsAt returns the indices of the cells measured at time tv.
func cellsAt(t []float64, tv float64) []int {
	var idx []int
	for j, v := range t {
		if v == tv {
			idx = append(idx, j)
		}
	}
	return idx
}

func meanOf(v []float64) float64 {
	m, err := stats.Mean(v)
	if err != nil {
		return math.NaN()
	}
	return m
}

// meanSqDiff is the mean squared residual of u against k*s.
func meanSqDiff(u, s []float64, k float64) float64 {
	if len(u) == 0 {
		return math.NaN()
	}
	ss := 0.0
	for i := range u {
		d := u[i] - k*s[i]
		ss += d * d
	}
	return ss / float64(len(u))
}
