// Package estimate fits the kinetic rate parameters governing RNA and
// protein abundance dynamics (transcription, splicing, degradation,
// translation) from single-cell count layers. The experiment type of a
// run selects the fitting strategy once; each strategy fills the
// parameter store gene by gene, and a degenerate fit never aborts the
// run.
package estimate

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"velokin/lsq"
	"velokin/matrix"
)

// Verbose enables the [Fit] progress logging.
var Verbose bool

func logf(format string, args ...interface{}) {
	if Verbose {
		fmt.Printf(format, args...)
	}
}

// Estimation holds the count layers, experiment metadata and the
// parameters estimated from them. Layers and the time vector are fixed
// at construction; parameters start nil and are populated by Fit.
type Estimation struct {
	Data LayerSet
	T    []float64

	Experiment        ExperimentType
	MRNAAssumption    Assumption
	ProteinAssumption Assumption

	// ProteinIdx maps each row of the protein layer to its gene row in
	// the RNA layers.
	ProteinIdx []int

	Params Parameters
	Aux    Diagnostics
}

// New builds an Estimation over already-concatenated layers. All RNA
// layers must share genes x cells dimensions; the protein layer shares
// the cell dimension and has one row per protein index entry.
func New(layers LayerSet, t []float64, experiment ExperimentType, mrna Assumption, proteinIdx []int) (*Estimation, error) {
	e := &Estimation{
		Data:              layers,
		T:                 t,
		Experiment:        experiment,
		MRNAAssumption:    mrna,
		ProteinAssumption: SteadyState,
		ProteinIdx:        proteinIdx,
	}

	rows, cols := -1, -1
	for _, l := range allLayers {
		m := layers.get(l)
		if m == nil {
			continue
		}
		r, c := m.Dims()
		if cols == -1 {
			cols = c
		} else if c != cols {
			return nil, ErrShapeMismatch
		}
		if l == LayerP {
			if proteinIdx != nil && r != len(proteinIdx) {
				return nil, ErrShapeMismatch
			}
			continue
		}
		if rows == -1 {
			rows = r
		} else if r != rows {
			return nil, ErrShapeMismatch
		}
	}
	if cols == -1 {
		return nil, ErrNoData
	}
	if t != nil && len(t) != cols {
		return nil, ErrShapeMismatch
	}
	return e, nil
}

// NewFromConditions concatenates per-condition layers column-wise into
// a single Estimation, unrolling the time vector exactly once. Each ts
// entry holds either one labeling duration for the whole condition or
// one value per cell.
func NewFromConditions(sets []LayerSet, ts [][]float64, experiment ExperimentType, mrna Assumption, proteinIdx []int) (*Estimation, error) {
	if len(sets) == 0 {
		return nil, ErrNoData
	}
	var layers LayerSet
	var t []float64
	unrolled := false
	for _, l := range allLayers {
		present := sets[0].get(l) != nil
		for k := range sets {
			if (sets[k].get(l) != nil) != present {
				return nil, ErrShapeMismatch
			}
		}
		if !present {
			continue
		}
		mats := make([]mat.Matrix, len(sets))
		for k := range sets {
			mats[k] = sets[k].get(l)
		}
		if !unrolled && ts != nil {
			m, tt, err := matrix.ConcatTimeSeries(mats, ts)
			if err != nil {
				return nil, err
			}
			layers.set(l, m)
			t = tt
			unrolled = true
			continue
		}
		m, _, err := matrix.ConcatTimeSeries(mats, nil)
		if err != nil {
			return nil, err
		}
		layers.set(l, m)
	}
	return New(layers, t, experiment, mrna, proteinIdx)
}

// NGenes reports the gene dimension of the RNA layers.
func (e *Estimation) NGenes() int {
	for _, l := range allLayers {
		if l == LayerP {
			continue
		}
		if m := e.Data.get(l); m != nil {
			r, _ := m.Dims()
			return r
		}
	}
	return 0
}

// NCells reports the cell dimension of the layers.
func (e *Estimation) NCells() int {
	for _, l := range allLayers {
		if m := e.Data.get(l); m != nil {
			_, c := m.Dims()
			return c
		}
	}
	return 0
}

// Fit estimates every parameter reachable from the available layers
// under the configured experiment, then the protein parameters.
// Configuration errors abort the call; a per-gene numerical failure is
// contained to that gene's output (NaN, or zero in the no-splicing
// decay path).
func (e *Estimation) Fit(opts FitOptions) error {
	switch e.Experiment {
	case Conventional:
		e.fitConventional(opts)
	case Degradation:
		e.fitDegradation(opts)
	case Kinetics:
		e.fitKinetics(opts)
	case OneShot:
		if err := e.fitOneShot(opts); err != nil {
			return err
		}
	case MixStdStm:
		e.fitMixStdStm(opts)
	default:
		return ErrUnknownExperiment
	}
	e.fitProtein(opts)
	return nil
}

// steadyStateLayers picks the unspliced/spliced pair a conventional fit
// regresses over, folding labeled counts into their unlabeled layer
// when both were measured.
func (e *Estimation) steadyStateLayers() (U, S mat.Matrix) {
	switch {
	case e.Data.Has(LayerUU, LayerSU):
		U, S = e.Data.UU, e.Data.SU
		if e.Data.UL != nil {
			U = matrix.Add(U, e.Data.UL)
		}
		if e.Data.SL != nil {
			S = matrix.Add(S, e.Data.SL)
		}
	case e.Data.Has(LayerUU, LayerUL):
		U = e.Data.UL
		S = matrix.Add(e.Data.UU, e.Data.UL)
	}
	return U, S
}

func (e *Estimation) fitConventional(opts FitOptions) {
	U, S := e.steadyStateLayers()
	if U == nil {
		return
	}
	n := e.NGenes()

	gamma := make([]float64, n)
	gi := make([]float64, n)
	gr2 := make([]float64, n)
	gar2 := make([]float64, n)

	if e.MRNAAssumption == SteadyState {
		logf("[Fit] estimating gamma (steady state) for %d genes\n", n)
		runGenes(n, opts.NumCores, func(i int) {
			gamma[i], gi[i], gr2[i], gar2[i] = fitGammaSteadyState(
				matrix.Row(U, i), matrix.Row(S, i), opts.Intercept, opts.PercLeft, opts.PercRight)
		})
	} else {
		if !e.Data.Has(LayerUS, LayerS2) {
			return
		}
		logf("[Fit] estimating gamma (stochastic) for %d genes\n", n)
		runGenes(n, opts.NumCores, func(i int) {
			gamma[i], gi[i], gr2[i], gar2[i] = fitGammaStochastic(
				matrix.Row(U, i), matrix.Row(S, i),
				matrix.Row(e.Data.US, i), matrix.Row(e.Data.S2, i))
		})
	}

	e.Params.Beta = VecParam(ones(n))
	e.Params.Gamma = VecParam(gamma)
	e.Aux.GammaIntercept = gi
	e.Aux.GammaR2 = gr2
	e.Aux.GammaAllR2 = gar2
}

// fitGammaSteadyState regresses unspliced on spliced counts restricted
// to the extreme tails. An unfixed-intercept fit with no left tail
// percentage defaults the left percentage to the right one.
func fitGammaSteadyState(u, s []float64, intercept bool, percLeft, percRight *float64) (k, b, r2, allR2 float64) {
	if intercept && percLeft == nil {
		percLeft = percRight
	}
	mask := lsq.FindExtreme(s, u, true, percLeft, percRight)
	return lsq.FitLinreg(s, u, mask, intercept)
}

// fitGammaStochastic estimates gamma from first and second moments. The
// tail parameters of the reference protocol are fixed here: no left
// tail, right tail at 5 percent, normalized mask. The restricted R2
// uses var(u[mask]) as the total variance reference.
func fitGammaStochastic(u, s, us, s2 []float64) (k, b, r2, allR2 float64) {
	pr := 5.0
	mask := lsq.FindExtreme(s, u, true, nil, &pr)

	um := subsetMask(u, mask)
	sm := subsetMask(s, mask)
	k = lsq.FitStochasticLinreg(um, sm, subsetMask(us, mask), subsetMask(s2, mask))

	ssTot, _ := stats.PopulationVariance(um)
	allTot, _ := stats.PopulationVariance(u)
	ssRes := meanSqDiff(um, sm, k)
	allRes := meanSqDiff(u, s, k)
	return k, 0, 1 - ssRes/ssTot, 1 - allRes/allTot
}

func (e *Estimation) fitDegradation(opts FitOptions) {
	switch {
	case e.Data.Has(LayerUL, LayerSL):
		ulM, _, tUniq := matrix.MomentsByTime(e.Data.UL, e.T)
		slM, _, _ := matrix.MomentsByTime(e.Data.SL, e.T)
		beta, gamma, ul0, sl0 := e.fitBetaGammaLsq(tUniq, ulM, slM, opts.NumCores)
		e.Params.Beta = VecParam(beta)
		e.Params.Gamma = VecParam(gamma)
		e.Aux.UL0, e.Aux.SL0 = ul0, sl0
		if e.Data.Has(LayerUU) {
			e.fitAlphaFromDecay(tUniq, beta, opts.NumCores)
		}
	case e.Data.Has(LayerUL):
		ulM, _, tUniq := matrix.MomentsByTime(e.Data.UL, e.T)
		gamma, l0 := e.fitGammaNoSplicingLsq(tUniq, ulM, opts.NumCores)
		e.Params.Gamma = VecParam(gamma)
		e.Aux.UL0 = l0
		if e.Data.Has(LayerUU) {
			e.fitAlphaFromDecay(tUniq, gamma, opts.NumCores)
		}
	}
}

// fitBetaGammaLsq jointly fits beta and gamma per gene from the
// per-time-point means of the labeled (or unlabeled) unspliced and
// spliced layers: beta from first-order decay, gamma from the spliced
// chase solution given beta and u0. A non-finite prerequisite leaves
// the gene NaN.
func (e *Estimation) fitBetaGammaLsq(t []float64, U, S *mat.Dense, cores int) (beta, gamma, u0, s0 []float64) {
	n, _ := U.Dims()
	beta, gamma = nans(n), nans(n)
	u0, s0 = nans(n), nans(n)
	logf("[Fit] estimating beta, gamma for %d genes\n", n)
	runGenes(n, cores, func(i int) {
		b, bu0, err := lsq.FitFirstOrderDegLsq(t, U.RawRowView(i))
		if err != nil {
			return
		}
		beta[i], u0[i] = b, bu0
		g, gs0, err := lsq.FitGammaLsq(t, S.RawRowView(i), b, bu0)
		if err != nil {
			return
		}
		gamma[i], s0[i] = g, gs0
	})
	return beta, gamma, u0, s0
}

// fitGammaNoSplicingLsq fits the degradation rate per gene from labeled
// count decay alone. A solver failure falls back to a zero estimate so
// the run continues.
func (e *Estimation) fitGammaNoSplicingLsq(t []float64, L *mat.Dense, cores int) (gamma, l0 []float64) {
	n, _ := L.Dims()
	gamma, l0 = make([]float64, n), make([]float64, n)
	logf("[Fit] estimating gamma for %d genes\n", n)
	runGenes(n, cores, func(i int) {
		g, l, err := lsq.FitFirstOrderDegLsq(t, L.RawRowView(i))
		if err != nil {
			g, l = 0, 0
		}
		gamma[i], l0[i] = g, l
	})
	return gamma, l0
}

// fitAlphaFromDecay estimates the transcription rate per gene from the
// decay of pre-existing unspliced counts, given the per-gene conversion
// rate b (beta, or gamma in the no-splicing model).
func (e *Estimation) fitAlphaFromDecay(tUniq []float64, b []float64, cores int) {
	n := e.NGenes()
	uuM, _, _ := matrix.MomentsByTime(e.Data.UU, e.T)
	alpha, u0, r2 := make([]float64, n), make([]float64, n), make([]float64, n)
	logf("[Fit] estimating alpha for %d genes\n", n)
	runGenes(n, cores, func(i int) {
		alpha[i], u0[i], r2[i] = lsq.FitAlphaDegradation(tUniq, uuM.RawRowView(i), b[i])
	})
	e.Params.Alpha = VecParam(alpha)
	e.Aux.AlphaIntercept = u0
	e.Aux.UU0 = u0
	e.Aux.AlphaR2 = r2
}

func (e *Estimation) fitKinetics(opts FitOptions) {
	tUniq, _ := matrix.UniqueTimes(e.T)
	if len(tUniq) < 2 {
		logf("[Fit] kinetics experiment needs at least two labeling times, nothing to fit\n")
		return
	}

	switch {
	case e.Data.Has(LayerUL, LayerUU, LayerSU):
		betaVec := paramVec(e.Params.Beta)
		if betaVec == nil {
			uuM, _, _ := matrix.MomentsByTime(e.Data.UU, e.T)
			suM, _, _ := matrix.MomentsByTime(e.Data.SU, e.T)
			beta, gamma, uu0, su0 := e.fitBetaGammaLsq(tUniq, uuM, suM, opts.NumCores)
			e.Params.Beta = VecParam(beta)
			e.Params.Gamma = VecParam(gamma)
			e.Aux.UU0, e.Aux.SU0 = uu0, su0
			betaVec = beta
		}
		e.fitAlphaSynthesisAll(tUniq, betaVec, opts.NumCores)
	case e.Data.Has(LayerUL, LayerUU):
		uuM, _, _ := matrix.MomentsByTime(e.Data.UU, e.T)
		gamma, u0 := e.fitGammaNoSplicingLsq(tUniq, uuM, opts.NumCores)
		e.Params.Gamma = VecParam(gamma)
		e.Aux.UU0 = u0
		e.fitAlphaSynthesisAll(tUniq, gamma, opts.NumCores)
	}
}

// fitAlphaSynthesisAll estimates one transcription rate per gene from
// the labeled moments via the synthesis closed form, given the
// conversion rate b.
func (e *Estimation) fitAlphaSynthesisAll(tUniq []float64, b []float64, cores int) {
	n := e.NGenes()
	ulM, _, _ := matrix.MomentsByTime(e.Data.UL, e.T)
	alpha := make([]float64, n)
	logf("[Fit] estimating alpha for %d genes\n", n)
	runGenes(n, cores, func(i int) {
		alpha[i] = lsq.FitAlphaSynthesis(tUniq, ulM.RawRowView(i), b[i])
	})
	e.Params.Alpha = VecParam(alpha)
}

func (e *Estimation) fitOneShot(opts FitOptions) error {
	tUniq, _ := matrix.UniqueTimes(e.T)
	if len(tUniq) > 1 {
		return ErrOneShotMultipleTimes
	}
	if len(tUniq) == 0 {
		return nil
	}
	tmax := tUniq[0]
	n := e.NGenes()

	switch {
	case e.Data.Has(LayerUL, LayerUU, LayerSL, LayerSU):
		betaVec, gammaVec := paramVec(e.Params.Beta), paramVec(e.Params.Gamma)
		if betaVec != nil && gammaVec != nil {
			e.Params.Alpha = &Param{Mat: e.fitAlphaOneShot(e.T, e.Data.UL, betaVec, opts)}
			return nil
		}
		beta, gamma := make([]float64, n), make([]float64, n)
		u0, s0 := make([]float64, n), make([]float64, n)
		logf("[Fit] solving beta, gamma for %d genes\n", n)
		runGenes(n, opts.NumCores, func(i int) {
			uu, ul := matrix.Row(e.Data.UU, i), matrix.Row(e.Data.UL, i)
			su, sl := matrix.Row(e.Data.SU, i), matrix.Row(e.Data.SL, i)
			S := addVec(su, sl)
			U := addVec(uu, ul)
			s0[i] = meanOf(S)
			gamma[i] = lsq.SolveGamma(tmax, su, S)
			u0[i] = meanOf(U)
			beta[i] = lsq.SolveGamma(tmax, uu, U)
		})
		e.Params.Beta = VecParam(beta)
		e.Params.Gamma = VecParam(gamma)
		e.Aux.U0, e.Aux.S0 = u0, s0
		e.fitAlphaSynthesisAll(tUniq, beta, opts.NumCores)

	case e.Data.Has(LayerUL) && paramVec(e.Params.Gamma) != nil:
		e.Params.Alpha = &Param{Mat: e.fitAlphaOneShot(e.T, e.Data.UL, paramVec(e.Params.Gamma), opts)}

	case e.Data.Has(LayerUL, LayerUU):
		switch opts.OneShotMethod {
		case OneShotSciFate:
			gamma, total0 := make([]float64, n), make([]float64, n)
			logf("[Fit] estimating gamma for %d genes\n", n)
			runGenes(n, opts.NumCores, func(i int) {
				uu := matrix.Row(e.Data.UU, i)
				total := addVec(uu, matrix.Row(e.Data.UL, i))
				total0[i] = meanOf(total)
				gamma[i] = lsq.SolveGamma(tmax, uu, total)
			})
			e.Params.Gamma = VecParam(gamma)
			e.Aux.Total0 = total0
			e.fitAlphaSynthesisAll(tUniq, gamma, opts.NumCores)
		case OneShotCombined:
			e.fitOneShotCombined(tmax, opts)
		default:
			return ErrUnknownOneShotMethod
		}
	}
	return nil
}

// fitOneShotCombined derives gamma and a per-cell alpha simultaneously:
// a zero-intercept steady-state slope k of labeled vs total counts is
// transformed in closed form via k = 1-exp(-gamma*t). The alpha matrix
// keeps the sparsity of the labeled layer.
func (e *Estimation) fitOneShotCombined(tmax float64, opts FitOptions) {
	n, nc := e.NGenes(), e.NCells()
	gamma := make([]float64, n)
	gi := make([]float64, n)
	gr2 := make([]float64, n)
	gar2 := make([]float64, n)
	alphaRows := make([][]float64, n)

	logf("[Fit] estimating gamma, alpha for %d genes\n", n)
	runGenes(n, opts.NumCores, func(i int) {
		u := matrix.Row(e.Data.UL, i)
		s := addVec(matrix.Row(e.Data.UU, i), u)
		k, b, r2, ar2 := fitGammaSteadyState(u, s, false, nil, opts.PercRight)
		gi[i], gr2[i], gar2[i] = b, r2, ar2
		gamma[i], alphaRows[i] = lsq.OneShotGammaAlpha(k, tmax, u)
	})

	var alpha mat.Matrix
	if matrix.IsSparse(e.Data.UL) {
		dok := sparse.NewDOK(n, nc)
		for i, row := range alphaRows {
			for j, v := range row {
				if v != 0 {
					dok.Set(i, j, v)
				}
			}
		}
		alpha = dok.ToCSR()
	} else {
		d := mat.NewDense(n, nc, nil)
		for i, row := range alphaRows {
			d.SetRow(i, row)
		}
		alpha = d
	}

	e.Params.Alpha = &Param{Mat: alpha}
	e.Params.Gamma = VecParam(gamma)
	e.Aux.GammaIntercept = gi
	e.Aux.GammaR2 = gr2
	e.Aux.GammaAllR2 = gar2
	e.Aux.AlphaR2 = gr2
	e.Aux.AlphaAllR2 = gar2
}

// fitAlphaOneShot estimates one transcription rate per gene per cluster
// of cells from labeled counts at a single labeling duration. With no
// clusters given every cell forms its own singleton cluster. Empty
// clusters yield NaN.
func (e *Estimation) fitAlphaOneShot(t []float64, U mat.Matrix, b []float64, opts FitOptions) mat.Matrix {
	if b == nil {
		return nil
	}
	n, nc := U.Dims()
	clusters := opts.Clusters
	if clusters == nil {
		clusters = make([][]int, nc)
		for j := 0; j < nc; j++ {
			clusters[j] = []int{j}
		}
	}
	alpha := mat.NewDense(n, len(clusters), nil)
	logf("[Fit] estimating alpha for %d genes over %d clusters\n", n, len(clusters))
	runGenes(n, opts.NumCores, func(j int) {
		row := matrix.Row(U, j)
		for i, c := range clusters {
			if len(c) == 0 {
				alpha.Set(j, i, math.NaN())
				continue
			}
			alpha.Set(j, i, lsq.FitAlphaSynthesis(t, subset(row, c), b[j]))
		}
	})
	return alpha
}

func (e *Estimation) fitMixStdStm(opts FitOptions) {
	if len(e.T) == 0 {
		return
	}
	n := e.NGenes()
	tmax := floats.Max(e.T)
	maxIdx := cellsAt(e.T, tmax)

	switch {
	case e.Data.Has(LayerUL, LayerUU, LayerSU):
		gamma, beta := make([]float64, n), make([]float64, n)
		total0, u0 := make([]float64, n), make([]float64, n)
		logf("[Fit] solving gamma, beta for %d genes\n", n)
		runGenes(n, opts.NumCores, func(i int) {
			uu := subset(matrix.Row(e.Data.UU, i), maxIdx)
			ul := subset(matrix.Row(e.Data.UL, i), maxIdx)
			su := subset(matrix.Row(e.Data.SU, i), maxIdx)
			total := addVec(addVec(uu, ul), su)
			if e.Data.SL != nil {
				total = addVec(total, subset(matrix.Row(e.Data.SL, i), maxIdx))
			}
			total0[i] = meanOf(total)
			gamma[i] = lsq.SolveGamma(tmax, addVec(uu, su), total)

			U := addVec(uu, ul)
			u0[i] = meanOf(U)
			beta[i] = lsq.SolveGamma(tmax, uu, U)
		})
		e.Params.Beta = VecParam(beta)
		e.Params.Gamma = VecParam(gamma)
		e.Aux.Total0, e.Aux.U0 = total0, u0
		e.Params.Alpha = e.solveAlphaMixStdStm(e.T, e.Data.UL, beta, opts)

	case e.Data.Has(LayerUL, LayerUU):
		gamma, u0 := make([]float64, n), make([]float64, n)
		logf("[Fit] solving gamma, alpha for %d genes\n", n)
		runGenes(n, opts.NumCores, func(i int) {
			uu := subset(matrix.Row(e.Data.UU, i), maxIdx)
			U := addVec(uu, subset(matrix.Row(e.Data.UL, i), maxIdx))
			u0[i] = meanOf(U)
			// stimulation-phase decay only
			gamma[i] = lsq.SolveGamma(tmax, uu, U)
		})
		e.Params.Gamma = VecParam(gamma)
		e.Params.Beta = VecParam(ones(n))
		e.Aux.U0 = u0
		e.Params.Alpha = e.solveAlphaMixStdStm(e.T, e.Data.UL, gamma, opts)
	}
}

// solveAlphaMixStdStm solves the constant steady-state transcription
// rate and the stimulation-phase rate per unique labeling time. The
// steady-state rate comes from a synthesis fit over the mean labeled
// counts of the minimum-time cells; each later time point is then
// solved analytically from the two-phase labeling solution, assuming
// the conversion rate b holds through both phases.
func (e *Estimation) solveAlphaMixStdStm(t []float64, ul mat.Matrix, b []float64, opts FitOptions) *Param {
	tUniq, _ := matrix.UniqueTimes(t)
	tmin, tmax := tUniq[0], tUniq[len(tUniq)-1]
	n, _ := ul.Dims()

	minIdx := cellsAt(t, tmin)
	meanUL := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		meanUL.Set(i, 0, meanOf(subset(matrix.Row(ul, i), minIdx)))
	}
	aStdMat := e.fitAlphaOneShot([]float64{tmax}, meanUL, b, FitOptions{NumCores: opts.NumCores})
	aStd := matrix.Dense(aStdMat).ColView(0)

	alphaStd := make([]float64, n)
	for i := 0; i < n; i++ {
		alphaStd[i] = aStd.AtVec(i)
	}

	alphaStm := mat.NewDense(n, len(tUniq), nil)
	for i := 0; i < n; i++ {
		// zero stimulation time is the steady-state transcription
		alphaStm.Set(i, 0, alphaStd[i])
	}
	logf("[Fit] solving steady state and induction alpha for %d genes\n", n)
	runGenes(n, opts.NumCores, func(i int) {
		row := matrix.Row(ul, i)
		for ti := 1; ti < len(tUniq); ti++ {
			idx := cellsAt(t, tUniq[ti])
			alphaStm.Set(i, ti, lsq.SolveAlpha2p(tmax-tUniq[ti], tUniq[ti], alphaStd[i], b[i], subset(row, idx)))
		}
	})

	if !opts.AlphaTimeDependent {
		avg := make([]float64, n)
		for i := 0; i < n; i++ {
			avg[i] = meanOf(alphaStm.RawRowView(i))
		}
		return &Param{Std: alphaStd, Vec: avg}
	}
	return &Param{Std: alphaStd, Mat: alphaStm}
}

// fitProtein estimates the protein parameters under the steady-state
// assumption: eta fixed at one, delta as the masked slope of the
// spliced protein proxy against the protein counts.
func (e *Estimation) fitProtein(opts FitOptions) {
	if !e.Data.Has(LayerP, LayerSU) || e.ProteinAssumption != SteadyState || len(e.ProteinIdx) == 0 {
		return
	}
	np := len(e.ProteinIdx)

	s := e.Data.SU
	if e.Data.SL != nil {
		s = matrix.Add(s, e.Data.SL)
	}

	delta := make([]float64, np)
	di := make([]float64, np)
	dr2 := make([]float64, np)
	dar2 := make([]float64, np)
	logf("[Fit] estimating delta for %d proteins\n", np)
	runGenes(np, opts.NumCores, func(i int) {
		srow := matrix.Row(s, e.ProteinIdx[i])
		prow := matrix.Row(e.Data.P, i)
		delta[i], di[i], dr2[i], dar2[i] = fitGammaSteadyState(srow, prow, opts.Intercept, opts.PercLeft, opts.PercRight)
	})

	e.Params.Eta = VecParam(ones(np))
	e.Params.Delta = VecParam(delta)
	e.Aux.DeltaIntercept = di
	e.Aux.DeltaR2 = dr2
	e.Aux.DeltaAllR2 = dar2
}
