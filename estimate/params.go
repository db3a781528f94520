package estimate

import (
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Param is a single kinetic rate in whichever shape it was estimated:
// a per-gene vector, or a matrix with one column per cell or per unique
// labeling time. For mixed steady-state/stimulation experiments the
// transcription rate additionally carries the constant steady-state
// component in Std next to the stimulation-phase estimate. A nil Param
// means the rate has not been estimated.
type Param struct {
	Vec []float64
	Mat mat.Matrix
	Std []float64
}

// IsSet reports whether the parameter has been estimated or assigned.
func (p *Param) IsSet() bool {
	return p != nil && (p.Vec != nil || p.Mat != nil)
}

// VecParam wraps a per-gene vector.
func VecParam(v []float64) *Param { return &Param{Vec: v} }

// Parameters holds the five kinetic rates. Each starts nil and is
// written at most once per Fit run.
type Parameters struct {
	Alpha *Param // transcription rate
	Beta  *Param // splicing rate
	Gamma *Param // spliced mRNA degradation rate
	Eta   *Param // protein synthesis rate
	Delta *Param // protein degradation rate
}

// Diagnostics holds the auxiliary per-gene outputs of a fit: regression
// intercepts, coefficients of determination and initial-condition
// estimates. They are derived values only; the intercept doubles as the
// initial condition in the degradation alpha fit.
// The R2 pairs distinguish the coefficient of determination over the
// masked extreme-tail cells from the one over every cell.
type Diagnostics struct {
	AlphaIntercept []float64
	AlphaR2        []float64
	AlphaAllR2     []float64
	GammaIntercept []float64
	GammaR2        []float64
	GammaAllR2     []float64
	DeltaIntercept []float64
	DeltaR2        []float64
	DeltaAllR2     []float64
	UU0            []float64
	UL0            []float64
	SU0            []float64
	SL0            []float64
	U0             []float64
	S0             []float64
	Total0         []float64
}

// Parameter returns the named rate parameter.
func (e *Estimation) Parameter(name string) (*Param, error) {
	switch strings.ToLower(name) {
	case "alpha":
		return e.Params.Alpha, nil
	case "beta":
		return e.Params.Beta, nil
	case "gamma":
		return e.Params.Gamma, nil
	case "eta":
		return e.Params.Eta, nil
	case "delta":
		return e.Params.Delta, nil
	}
	return nil, ErrUnknownParameter
}

// SetParameter assigns a per-gene vector to the named rate parameter.
func (e *Estimation) SetParameter(name string, vec []float64) error {
	if len(vec) != e.NGenes() {
		return ErrShapeMismatch
	}
	return e.setParam(name, VecParam(vec))
}

// SetParameterScalar broadcasts a scalar to a full per-gene vector and
// assigns it to the named rate parameter.
func (e *Estimation) SetParameterScalar(name string, v float64) error {
	vec := make([]float64, e.NGenes())
	for i := range vec {
		vec[i] = v
	}
	return e.setParam(name, VecParam(vec))
}

func (e *Estimation) setParam(name string, p *Param) error {
	switch strings.ToLower(name) {
	case "alpha":
		e.Params.Alpha = p
	case "beta":
		e.Params.Beta = p
	case "gamma":
		e.Params.Gamma = p
	case "eta":
		e.Params.Eta = p
	case "delta":
		e.Params.Delta = p
	default:
		return ErrUnknownParameter
	}
	return nil
}

// paramVec returns the per-gene vector of p, or nil when p is absent or
// stored as a matrix.
func paramVec(p *Param) []float64 {
	if p == nil {
		return nil
	}
	return p.Vec
}
