// Package velocity computes per-cell instantaneous rates of change of
// unspliced RNA, spliced RNA and protein abundance from fitted kinetic
// parameters. Parameters are broadcast from whichever shape they were
// stored in (per-gene vector, per-cell matrix, per-unique-time matrix)
// to the full genes x cells shape of the count layer; a velocity whose
// driving parameter is absent is reported as not computable (nil)
// rather than an error, since many valid experiment configurations
// legitimately omit parameters.
package velocity

import (
	"github.com/jinzhu/copier"
	"gonum.org/v1/gonum/mat"

	"velokin/estimate"
	"velokin/matrix"
)

// Velocity evaluates velocity vectors from a fixed parameter set. The
// parameters are read-only once the evaluator is constructed.
type Velocity struct {
	Params estimate.Parameters
	T      []float64
}

// New builds an evaluator from explicit rate parameters. Any parameter
// may be nil.
func New(alpha, beta, gamma, eta, delta *estimate.Param, t []float64) *Velocity {
	return &Velocity{
		Params: estimate.Parameters{
			Alpha: alpha,
			Beta:  beta,
			Gamma: gamma,
			Eta:   eta,
			Delta: delta,
		},
		T: t,
	}
}

// NewFromEstimation copies the fitted parameters and time vector out of
// a completed estimation run.
func NewFromEstimation(est *estimate.Estimation) (*Velocity, error) {
	v := &Velocity{}
	if err := copier.Copy(&v.Params, &est.Params); err != nil {
		return nil, err
	}
	v.T = append([]float64(nil), est.T...)
	return v, nil
}

// Unspliced returns V = alpha - beta.*U per cell, or nil when the
// transcription rate has not been estimated. When beta is absent it is
// substituted from gamma to support the reduced no-splicing
// parameterization.
func (v *Velocity) Unspliced(U mat.Matrix) mat.Matrix {
	if !v.Params.Alpha.IsSet() {
		return nil
	}
	beta := v.Params.Beta
	if !beta.IsSet() && v.Params.Gamma.IsSet() {
		beta = v.Params.Gamma
	}
	if !beta.IsSet() {
		return nil
	}
	g, c := U.Dims()
	a := v.broadcast(v.Params.Alpha, g, c)
	return matrix.Sub(a, v.times(beta, U))
}

// Spliced returns V = beta.*U - gamma.*S per cell, or nil when the
// degradation rate has not been estimated. When beta is absent it is
// substituted from alpha; in that reduced parameterization the
// production term is the substituted rate itself rather than a product
// with U.
func (v *Velocity) Spliced(U, S mat.Matrix) mat.Matrix {
	if !v.Params.Gamma.IsSet() {
		return nil
	}
	beta := v.Params.Beta
	noBeta := false
	if !beta.IsSet() && v.Params.Alpha.IsSet() {
		beta = v.Params.Alpha
		noBeta = true
	}
	if !beta.IsSet() {
		return nil
	}
	if noBeta {
		g, c := S.Dims()
		return matrix.Sub(v.broadcast(beta, g, c), v.times(v.Params.Gamma, S))
	}
	return matrix.Sub(v.times(beta, U), v.times(v.Params.Gamma, S))
}

// Protein returns V = eta.*S - delta.*P per cell, or nil unless both
// protein rates are present.
func (v *Velocity) Protein(S, P mat.Matrix) mat.Matrix {
	if !v.Params.Eta.IsSet() || !v.Params.Delta.IsSet() {
		return nil
	}
	return matrix.Sub(v.times(v.Params.Eta, S), v.times(v.Params.Delta, P))
}

// NGenes reports the gene dimension of the stored parameters, or 0 when
// none is set.
func (v *Velocity) NGenes() int {
	for _, p := range []*estimate.Param{v.Params.Alpha, v.Params.Beta, v.Params.Gamma, v.Params.Eta, v.Params.Delta} {
		if p == nil {
			continue
		}
		if p.Vec != nil {
			return len(p.Vec)
		}
		if p.Mat != nil {
			r, _ := p.Mat.Dims()
			return r
		}
	}
	return 0
}

// times computes the elementwise product of a rate parameter with a
// count layer. Per-gene vectors scale rows directly, so a sparse layer
// stays sparse without building the broadcast matrix.
func (v *Velocity) times(p *estimate.Param, m mat.Matrix) mat.Matrix {
	if p.Vec != nil && p.Mat == nil {
		return matrix.ScaleRows(m, p.Vec)
	}
	g, c := m.Dims()
	return matrix.MulElem(v.broadcast(p, g, c), m)
}

// broadcast expands a stored parameter to a full genes x cells matrix:
// per-gene vectors replicate across cells, per-cell matrices pass
// through unchanged (keeping their sparsity), per-unique-time matrices
// expand each column to the cells sharing that time value, and any
// other shape falls back to replicating the first column.
func (v *Velocity) broadcast(p *estimate.Param, nGenes, nCells int) mat.Matrix {
	if p == nil {
		return nil
	}
	if p.Vec != nil && p.Mat == nil {
		out := mat.NewDense(len(p.Vec), nCells, nil)
		for i, val := range p.Vec {
			for j := 0; j < nCells; j++ {
				out.Set(i, j, val)
			}
		}
		return out
	}
	if p.Mat == nil {
		return nil
	}

	r, c := p.Mat.Dims()
	tUniq, _ := matrix.UniqueTimes(v.T)
	switch {
	case c == nCells:
		return p.Mat
	case c == len(tUniq) && len(tUniq) > 1:
		out := mat.NewDense(r, nCells, nil)
		for j := 0; j < nCells && j < len(v.T); j++ {
			ti := timeIndex(tUniq, v.T[j])
			for i := 0; i < r; i++ {
				out.Set(i, j, p.Mat.At(i, ti))
			}
		}
		return out
	default:
		out := mat.NewDense(r, nCells, nil)
		for i := 0; i < r; i++ {
			val := p.Mat.At(i, 0)
			for j := 0; j < nCells; j++ {
				out.Set(i, j, val)
			}
		}
		return out
	}
}

func timeIndex(tUniq []float64, tv float64) int {
	for k, v := range tUniq {
		if v == tv {
			return k
		}
	}
	return 0
}
