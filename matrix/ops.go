// Package matrix holds count-matrix utilities shared by the estimation
// and velocity code: dense/sparse elementwise arithmetic, per-condition
// concatenation and per-labeling-time moments. Dense layers are
// gonum *mat.Dense, sparse layers are james-bowman CSR matrices; every
// function accepts the mat.Matrix interface and keeps results sparse
// whenever the inputs allow it.
package matrix

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// nonZeroDoer is the method set shared by the sparse matrix types.
type nonZeroDoer interface {
	DoNonZero(fn func(i, j int, v float64))
}

// IsSparse reports whether m uses a sparse representation.
func IsSparse(m mat.Matrix) bool {
	_, ok := m.(nonZeroDoer)
	return ok
}

// Dense returns m as *mat.Dense, copying only when necessary.
func Dense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(m)
}

// Row extracts row i of m as a plain slice.
func Row(m mat.Matrix, i int) []float64 {
	_, c := m.Dims()
	out := make([]float64, c)
	for j := 0; j < c; j++ {
		out[j] = m.At(i, j)
	}
	return out
}

// Add returns a+b. The result stays sparse when both operands are sparse.
func Add(a, b mat.Matrix) mat.Matrix {
	r, c := a.Dims()
	if an, ok := a.(nonZeroDoer); ok {
		if bn, ok := b.(nonZeroDoer); ok {
			dok := sparse.NewDOK(r, c)
			an.DoNonZero(func(i, j int, v float64) {
				dok.Set(i, j, v)
			})
			bn.DoNonZero(func(i, j int, v float64) {
				dok.Set(i, j, dok.At(i, j)+v)
			})
			return dok.ToCSR()
		}
	}
	var d mat.Dense
	d.Add(a, b)
	return &d
}

// Sub returns a-b. The result stays sparse when both operands are sparse.
func Sub(a, b mat.Matrix) mat.Matrix {
	r, c := a.Dims()
	if an, ok := a.(nonZeroDoer); ok {
		if bn, ok := b.(nonZeroDoer); ok {
			dok := sparse.NewDOK(r, c)
			an.DoNonZero(func(i, j int, v float64) {
				dok.Set(i, j, v)
			})
			bn.DoNonZero(func(i, j int, v float64) {
				dok.Set(i, j, dok.At(i, j)-v)
			})
			return dok.ToCSR()
		}
	}
	var d mat.Dense
	d.Sub(a, b)
	return &d
}

// ScaleRows multiplies row i of m by v[i]. A sparse m stays sparse.
func ScaleRows(m mat.Matrix, v []float64) mat.Matrix {
	r, c := m.Dims()
	if mn, ok := m.(nonZeroDoer); ok {
		dok := sparse.NewDOK(r, c)
		mn.DoNonZero(func(i, j int, val float64) {
			if w := v[i] * val; w != 0 {
				dok.Set(i, j, w)
			}
		})
		return dok.ToCSR()
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(i, j)*v[i])
		}
	}
	return out
}

// MulElem returns the elementwise product a.*b. When either operand is
// sparse only its nonzero entries are visited, so the product never
// densifies a sparse layer.
func MulElem(a, b mat.Matrix) mat.Matrix {
	r, c := a.Dims()
	if an, ok := a.(nonZeroDoer); ok {
		dok := sparse.NewDOK(r, c)
		an.DoNonZero(func(i, j int, v float64) {
			if w := b.At(i, j); w != 0 {
				dok.Set(i, j, v*w)
			}
		})
		return dok.ToCSR()
	}
	if bn, ok := b.(nonZeroDoer); ok {
		dok := sparse.NewDOK(r, c)
		bn.DoNonZero(func(i, j int, v float64) {
			if w := a.At(i, j); w != 0 {
				dok.Set(i, j, v*w)
			}
		})
		return dok.ToCSR()
	}
	var d mat.Dense
	d.MulElem(a, b)
	return &d
}
