package estimate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"velokin/estimate"
	"velokin/lsq"
)

func denseOf(rows [][]float64) *mat.Dense {
	d := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, r := range rows {
		d.SetRow(i, r)
	}
	return d
}

// constTimes repeats one labeling duration for every cell.
func constTimes(n int, tv float64) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = tv
	}
	return t
}

// TestNew_ShapeValidation covers the construction errors: misaligned
// cell dimensions, a time vector of the wrong length, a protein layer
// that disagrees with its index map, and no data at all.
func TestNew_ShapeValidation(t *testing.T) {
	uu := denseOf([][]float64{{1, 2, 3}})

	_, err := estimate.New(estimate.LayerSet{UU: uu, SU: denseOf([][]float64{{1, 2}})},
		nil, estimate.Conventional, estimate.SteadyState, nil)
	assert.ErrorIs(t, err, estimate.ErrShapeMismatch)

	_, err = estimate.New(estimate.LayerSet{UU: uu},
		[]float64{1, 2}, estimate.Conventional, estimate.SteadyState, nil)
	assert.ErrorIs(t, err, estimate.ErrShapeMismatch)

	_, err = estimate.New(estimate.LayerSet{UU: uu, P: denseOf([][]float64{{1, 2, 3}, {4, 5, 6}})},
		nil, estimate.Conventional, estimate.SteadyState, []int{0})
	assert.ErrorIs(t, err, estimate.ErrShapeMismatch)

	_, err = estimate.New(estimate.LayerSet{}, nil, estimate.Conventional, estimate.SteadyState, nil)
	assert.ErrorIs(t, err, estimate.ErrNoData)
}

// TestNewFromConditions_Unroll concatenates two conditions and checks
// the cell dimension and the time vector unrolled from scalar entries.
func TestNewFromConditions_Unroll(t *testing.T) {
	a := estimate.LayerSet{UU: denseOf([][]float64{{1, 2}}), SU: denseOf([][]float64{{3, 4}})}
	b := estimate.LayerSet{UU: denseOf([][]float64{{5, 6, 7}}), SU: denseOf([][]float64{{8, 9, 10}})}

	est, err := estimate.NewFromConditions(
		[]estimate.LayerSet{a, b}, [][]float64{{0.5}, {2}},
		estimate.Kinetics, estimate.NoAssumption, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, est.NCells())
	assert.Equal(t, 1, est.NGenes())
	assert.Equal(t, []float64{0.5, 0.5, 2, 2, 2}, est.T)
}

// TestNewFromConditions_LayerAsymmetry rejects a layer present in only
// some conditions, in either direction.
func TestNewFromConditions_LayerAsymmetry(t *testing.T) {
	uuOnly := estimate.LayerSet{UU: denseOf([][]float64{{1, 2}})}
	both := estimate.LayerSet{UU: denseOf([][]float64{{3, 4}}), SU: denseOf([][]float64{{5, 6}})}

	_, err := estimate.NewFromConditions(
		[]estimate.LayerSet{uuOnly, both}, [][]float64{{1}, {2}},
		estimate.Kinetics, estimate.NoAssumption, nil)
	assert.ErrorIs(t, err, estimate.ErrShapeMismatch, "layer appearing after the first condition")

	_, err = estimate.NewFromConditions(
		[]estimate.LayerSet{both, uuOnly}, [][]float64{{1}, {2}},
		estimate.Kinetics, estimate.NoAssumption, nil)
	assert.ErrorIs(t, err, estimate.ErrShapeMismatch, "layer vanishing after the first condition")
}

// TestFitConventional_SteadyState builds exactly linear unspliced vs
// spliced layers and checks the per-gene slope comes back as gamma with
// beta fixed at one.
func TestFitConventional_SteadyState(t *testing.T) {
	const nc = 50
	ks := []float64{0.3, 0.8, 1.7}
	s := mat.NewDense(len(ks), nc, nil)
	u := mat.NewDense(len(ks), nc, nil)
	for i, k := range ks {
		for j := 0; j < nc; j++ {
			sv := float64(j + 1)
			s.Set(i, j, sv)
			u.Set(i, j, k*sv)
		}
	}

	est, err := estimate.New(estimate.LayerSet{UU: u, SU: s},
		nil, estimate.Conventional, estimate.SteadyState, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	require.True(t, est.Params.Gamma.IsSet())
	for i, k := range ks {
		assert.InDelta(t, k, est.Params.Gamma.Vec[i], 1e-10, "gene %d", i)
		assert.InDelta(t, 1.0, est.Params.Beta.Vec[i], 1e-12, "gene %d", i)
		assert.InDelta(t, 1.0, est.Aux.GammaR2[i], 1e-10, "gene %d", i)
	}
	assert.False(t, est.Params.Alpha.IsSet(), "conventional data carries no transcription rate")
}

// TestFitConventional_R2Diagnostics separates the two coefficients of
// determination: data exactly linear in the upper tail but off the line
// elsewhere must score a perfect masked R2 and a visibly lower
// all-points R2.
func TestFitConventional_R2Diagnostics(t *testing.T) {
	const nc = 40
	const k = 0.5
	s := mat.NewDense(1, nc, nil)
	u := mat.NewDense(1, nc, nil)
	for j := 0; j < nc; j++ {
		sv := float64(j + 1)
		s.Set(0, j, sv)
		u.Set(0, j, k*sv)
	}
	// the smallest cell sits far off the steady-state line
	u.Set(0, 0, k*1+5)

	est, err := estimate.New(estimate.LayerSet{UU: u, SU: s},
		nil, estimate.Conventional, estimate.SteadyState, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	assert.InDelta(t, k, est.Params.Gamma.Vec[0], 1e-10, "tail cells still fit the slope exactly")
	assert.InDelta(t, 1.0, est.Aux.GammaR2[0], 1e-10, "masked cells lie on the line")
	require.Len(t, est.Aux.GammaAllR2, 1)
	assert.Less(t, est.Aux.GammaAllR2[0], 0.99, "outlier drags the all-points score down")
	assert.Greater(t, est.Aux.GammaAllR2[0], 0.5)
}

// TestFitConventional_Stochastic supplies moment layers consistent with
// a known gamma and checks the stochastic regression recovers it.
func TestFitConventional_Stochastic(t *testing.T) {
	const nc = 30
	const g = 0.45
	s := mat.NewDense(1, nc, nil)
	u := mat.NewDense(1, nc, nil)
	us := mat.NewDense(1, nc, nil)
	s2 := mat.NewDense(1, nc, nil)
	for j := 0; j < nc; j++ {
		sv := float64(j + 1)
		s.Set(0, j, sv)
		u.Set(0, j, g*sv)
		s2.Set(0, j, sv*sv+1)
		us.Set(0, j, (g*(2*(sv*sv+1)-sv)-g*sv)/2)
	}

	est, err := estimate.New(estimate.LayerSet{UU: u, SU: s, US: us, S2: s2},
		nil, estimate.Conventional, estimate.NoAssumption, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	require.True(t, est.Params.Gamma.IsSet())
	assert.InDelta(t, g, est.Params.Gamma.Vec[0], 1e-10)
}

// TestFitDegradation_Recovery generates a pulse-chase from known rates
// over four chase times and checks beta, gamma and alpha are recovered
// from the per-time moments.
func TestFitDegradation_Recovery(t *testing.T) {
	betas := []float64{0.9, 0.5}
	gammas := []float64{0.4, 0.7}
	alphas := []float64{2.0, 3.5}
	l0 := []float64{6.0, 4.0}
	s0 := []float64{3.0, 5.0}
	u0 := []float64{5.0, 8.0}

	times := []float64{0, 1, 2, 3}
	const rep = 3
	nc := len(times) * rep
	tt := make([]float64, 0, nc)
	for _, tv := range times {
		for r := 0; r < rep; r++ {
			tt = append(tt, tv)
		}
	}

	ul := mat.NewDense(2, nc, nil)
	sl := mat.NewDense(2, nc, nil)
	uu := mat.NewDense(2, nc, nil)
	for i := 0; i < 2; i++ {
		for j, tv := range tt {
			ul.Set(i, j, l0[i]*math.Exp(-betas[i]*tv))
			sl.Set(i, j, lsq.SolS(tv, s0[i], l0[i], betas[i], gammas[i]))
			uu.Set(i, j, lsq.SolU(tv, u0[i], alphas[i], betas[i]))
		}
	}

	est, err := estimate.New(estimate.LayerSet{UL: ul, SL: sl, UU: uu},
		tt, estimate.Degradation, estimate.NoAssumption, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	for i := 0; i < 2; i++ {
		assert.InDelta(t, betas[i], est.Params.Beta.Vec[i], 1e-2, "beta gene %d", i)
		assert.InDelta(t, gammas[i], est.Params.Gamma.Vec[i], 5e-2, "gamma gene %d", i)
		assert.InDelta(t, alphas[i], est.Params.Alpha.Vec[i], 5e-2, "alpha gene %d", i)
		assert.InDelta(t, l0[i], est.Aux.UL0[i], 1e-2, "ul0 gene %d", i)
	}
}

// TestFitDegradation_NoSplicing drops the spliced layer and checks the
// reduced model still yields gamma, with a zero fallback on degenerate
// genes rather than an aborted run.
func TestFitDegradation_NoSplicing(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	ul := mat.NewDense(2, 4, nil)
	for j, tv := range times {
		ul.Set(0, j, 5*math.Exp(-0.6*tv))
		// gene 1 was never detected
		ul.Set(1, j, 0)
	}

	est, err := estimate.New(estimate.LayerSet{UL: ul},
		times, estimate.Degradation, estimate.NoAssumption, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	assert.InDelta(t, 0.6, est.Params.Gamma.Vec[0], 1e-3)
	assert.Equal(t, 0.0, est.Params.Gamma.Vec[1], "degenerate gene falls back to zero")
	assert.False(t, est.Params.Beta.IsSet(), "no splicing rate without a spliced layer")
}

// TestFitKinetics_Recovery runs a synthesis experiment over two labeling
// times without a spliced layer: gamma from the decay of pre-existing
// counts, alpha from the labeled synthesis closed form.
func TestFitKinetics_Recovery(t *testing.T) {
	const g, alpha, uv0 = 0.5, 2.0, 6.0
	times := []float64{1, 1, 2, 2}
	uu := mat.NewDense(1, 4, nil)
	ul := mat.NewDense(1, 4, nil)
	for j, tv := range times {
		uu.Set(0, j, uv0*math.Exp(-g*tv))
		ul.Set(0, j, alpha/g*(1-math.Exp(-g*tv)))
	}

	est, err := estimate.New(estimate.LayerSet{UU: uu, UL: ul},
		times, estimate.Kinetics, estimate.NoAssumption, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	assert.InDelta(t, g, est.Params.Gamma.Vec[0], 1e-3)
	assert.InDelta(t, alpha, est.Params.Alpha.Vec[0], 1e-2)
}

// TestFitKinetics_SingleTime checks that a kinetics run with a single
// labeling time fits nothing instead of failing.
func TestFitKinetics_SingleTime(t *testing.T) {
	uu := denseOf([][]float64{{1, 2, 3}})
	ul := denseOf([][]float64{{1, 2, 3}})
	est, err := estimate.New(estimate.LayerSet{UU: uu, UL: ul},
		constTimes(3, 2), estimate.Kinetics, estimate.NoAssumption, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))
	assert.False(t, est.Params.Gamma.IsSet())
	assert.False(t, est.Params.Alpha.IsSet())
}

// TestFitOneShot_MultipleTimesRejected checks the defining one-shot
// constraint: more than one labeling duration is a configuration error.
func TestFitOneShot_MultipleTimesRejected(t *testing.T) {
	uu := denseOf([][]float64{{1, 2, 3}})
	ul := denseOf([][]float64{{1, 2, 3}})
	est, err := estimate.New(estimate.LayerSet{UU: uu, UL: ul},
		[]float64{1, 1, 2}, estimate.OneShot, estimate.NoAssumption, nil)
	require.NoError(t, err)

	err = est.Fit(estimate.DefaultFitOptions())
	assert.ErrorIs(t, err, estimate.ErrOneShotMultipleTimes)
}

// TestFitOneShot_Combined builds labeled counts that are a fixed
// fraction of the total per gene and checks the closed-form gamma and
// the per-cell alpha matrix.
func TestFitOneShot_Combined(t *testing.T) {
	const nc = 10
	const tl = 2.0
	fracs := []float64{0.3, 0.6}
	uu := mat.NewDense(2, nc, nil)
	ul := mat.NewDense(2, nc, nil)
	for i, f := range fracs {
		for j := 0; j < nc; j++ {
			total := float64(j + 1)
			ul.Set(i, j, f*total)
			uu.Set(i, j, (1-f)*total)
		}
	}

	est, err := estimate.New(estimate.LayerSet{UU: uu, UL: ul},
		constTimes(nc, tl), estimate.OneShot, estimate.NoAssumption, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	require.True(t, est.Params.Alpha.IsSet())
	r, c := est.Params.Alpha.Mat.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, nc, c)
	for i, f := range fracs {
		g := -math.Log(1-f) / tl
		assert.InDelta(t, g, est.Params.Gamma.Vec[i], 1e-10, "gene %d", i)
		assert.InDelta(t, g*ul.At(i, 4)/f, est.Params.Alpha.Mat.At(i, 4), 1e-10, "gene %d cell 4", i)
	}
}

// TestFitOneShot_SciFate checks the decay-based variant: gamma from the
// surviving fraction of pre-existing counts, alpha from the labeled
// moments.
func TestFitOneShot_SciFate(t *testing.T) {
	const nc = 6
	const g, tl = 0.4, 2.0
	uu := mat.NewDense(1, nc, nil)
	ul := mat.NewDense(1, nc, nil)
	surv := math.Exp(-g * tl)
	for j := 0; j < nc; j++ {
		total := float64(j + 2)
		uu.Set(0, j, total*surv)
		ul.Set(0, j, total*(1-surv))
	}

	est, err := estimate.New(estimate.LayerSet{UU: uu, UL: ul},
		constTimes(nc, tl), estimate.OneShot, estimate.NoAssumption, nil)
	require.NoError(t, err)

	opts := estimate.DefaultFitOptions()
	opts.OneShotMethod = estimate.OneShotSciFate
	require.NoError(t, est.Fit(opts))

	assert.InDelta(t, g, est.Params.Gamma.Vec[0], 1e-10)
	require.True(t, est.Params.Alpha.IsSet())
	wantAlpha := lsq.FitAlphaSynthesis([]float64{tl}, []float64{meanRow(ul, 0)}, g)
	assert.InDelta(t, wantAlpha, est.Params.Alpha.Vec[0], 1e-10)
}

// TestFitOneShot_FullLayers exercises the four-layer branch: beta and
// gamma from the surviving unspliced and spliced fractions.
func TestFitOneShot_FullLayers(t *testing.T) {
	const nc = 5
	const b, g, tl = 0.8, 0.3, 2.0
	uu := mat.NewDense(1, nc, nil)
	ul := mat.NewDense(1, nc, nil)
	su := mat.NewDense(1, nc, nil)
	sl := mat.NewDense(1, nc, nil)
	for j := 0; j < nc; j++ {
		U := float64(j + 3)
		S := float64(2*j + 4)
		uu.Set(0, j, U*math.Exp(-b*tl))
		ul.Set(0, j, U*(1-math.Exp(-b*tl)))
		su.Set(0, j, S*math.Exp(-g*tl))
		sl.Set(0, j, S*(1-math.Exp(-g*tl)))
	}

	est, err := estimate.New(estimate.LayerSet{UU: uu, UL: ul, SU: su, SL: sl},
		constTimes(nc, tl), estimate.OneShot, estimate.NoAssumption, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	assert.InDelta(t, b, est.Params.Beta.Vec[0], 1e-10)
	assert.InDelta(t, g, est.Params.Gamma.Vec[0], 1e-10)
	assert.True(t, est.Params.Alpha.IsSet())
}

// TestFitOneShot_PresetGamma assigns gamma up front and checks the fit
// only solves the per-cell transcription rate.
func TestFitOneShot_PresetGamma(t *testing.T) {
	const nc = 4
	ul := denseOf([][]float64{{1, 2, 3, 4}})
	est, err := estimate.New(estimate.LayerSet{UL: ul},
		constTimes(nc, 2), estimate.OneShot, estimate.NoAssumption, nil)
	require.NoError(t, err)
	require.NoError(t, est.SetParameterScalar("gamma", 0.5))
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	require.True(t, est.Params.Alpha.IsSet())
	r, c := est.Params.Alpha.Mat.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, nc, c)
	want := lsq.FitAlphaSynthesis([]float64{2}, []float64{3}, 0.5)
	assert.InDelta(t, want, est.Params.Alpha.Mat.At(0, 2), 1e-10)
}

// TestFitMixStdStm runs the unspliced-only mixed branch over two time
// points and checks gamma from the stimulation-phase cells plus the
// two-component transcription rate.
func TestFitMixStdStm(t *testing.T) {
	const g = 0.4
	tt := []float64{0.5, 0.5, 2, 2}
	uu := mat.NewDense(1, 4, nil)
	ul := mat.NewDense(1, 4, nil)
	for j, tv := range tt {
		total := 10.0
		uu.Set(0, j, total*math.Exp(-g*tv))
		ul.Set(0, j, total*(1-math.Exp(-g*tv)))
	}

	est, err := estimate.New(estimate.LayerSet{UU: uu, UL: ul},
		tt, estimate.MixStdStm, estimate.NoAssumption, nil)
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	assert.InDelta(t, g, est.Params.Gamma.Vec[0], 1e-10)
	assert.InDelta(t, 1.0, est.Params.Beta.Vec[0], 1e-12)

	alpha := est.Params.Alpha
	require.NotNil(t, alpha)
	require.Len(t, alpha.Std, 1)
	assert.False(t, math.IsNaN(alpha.Std[0]))
	r, c := alpha.Mat.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c, "one column per unique labeling time")
	assert.Equal(t, alpha.Std[0], alpha.Mat.At(0, 0), "first column is the steady-state rate")

	// averaged variant collapses the matrix into a per-gene vector
	est2, err := estimate.New(estimate.LayerSet{UU: uu, UL: ul},
		tt, estimate.MixStdStm, estimate.NoAssumption, nil)
	require.NoError(t, err)
	opts := estimate.DefaultFitOptions()
	opts.AlphaTimeDependent = false
	require.NoError(t, est2.Fit(opts))
	assert.Nil(t, est2.Params.Alpha.Mat)
	assert.Len(t, est2.Params.Alpha.Vec, 1)
}

// TestFitProtein fits delta from a protein layer proportional to the
// spliced proxy, with eta fixed at one.
func TestFitProtein(t *testing.T) {
	const nc = 20
	s := mat.NewDense(2, nc, nil)
	u := mat.NewDense(2, nc, nil)
	p := mat.NewDense(1, nc, nil)
	for j := 0; j < nc; j++ {
		sv := float64(j + 1)
		s.Set(0, j, sv)
		s.Set(1, j, 2*sv)
		u.Set(0, j, 0.5*sv)
		u.Set(1, j, sv)
		// protein tracks gene 1 at half abundance
		p.Set(0, j, sv)
	}

	est, err := estimate.New(estimate.LayerSet{UU: u, SU: s, P: p},
		nil, estimate.Conventional, estimate.SteadyState, []int{1})
	require.NoError(t, err)
	require.NoError(t, est.Fit(estimate.DefaultFitOptions()))

	require.True(t, est.Params.Delta.IsSet())
	assert.InDelta(t, 2.0, est.Params.Delta.Vec[0], 1e-10)
	assert.Equal(t, 1.0, est.Params.Eta.Vec[0])
}

// TestSetParameter covers the preset-parameter surface: scalar
// broadcast, vector length checks and unknown names.
func TestSetParameter(t *testing.T) {
	uu := denseOf([][]float64{{1, 2}, {3, 4}})
	su := denseOf([][]float64{{1, 2}, {3, 4}})
	est, err := estimate.New(estimate.LayerSet{UU: uu, SU: su},
		nil, estimate.Conventional, estimate.SteadyState, nil)
	require.NoError(t, err)

	require.NoError(t, est.SetParameterScalar("beta", 2))
	assert.Equal(t, []float64{2, 2}, est.Params.Beta.Vec)

	assert.ErrorIs(t, est.SetParameter("gamma", []float64{1}), estimate.ErrShapeMismatch)
	assert.ErrorIs(t, est.SetParameterScalar("omega", 1), estimate.ErrUnknownParameter)

	p, err := est.Parameter("beta")
	require.NoError(t, err)
	assert.True(t, p.IsSet())
	_, err = est.Parameter("omega")
	assert.ErrorIs(t, err, estimate.ErrUnknownParameter)
}

// TestParseTags covers the data-file tag parsers.
func TestParseTags(t *testing.T) {
	exp, err := estimate.ParseExperimentType("one-shot")
	require.NoError(t, err)
	assert.Equal(t, estimate.OneShot, exp)
	assert.Equal(t, "one-shot", exp.String())
	_, err = estimate.ParseExperimentType("pulse")
	assert.ErrorIs(t, err, estimate.ErrUnknownExperiment)

	a, err := estimate.ParseAssumption("ss")
	require.NoError(t, err)
	assert.Equal(t, estimate.SteadyState, a)
	_, err = estimate.ParseAssumption("weird")
	assert.ErrorIs(t, err, estimate.ErrUnknownAssumption)

	m, err := estimate.ParseOneShotMethod("sci-fate")
	require.NoError(t, err)
	assert.Equal(t, estimate.OneShotSciFate, m)
	_, err = estimate.ParseOneShotMethod("other")
	assert.ErrorIs(t, err, estimate.ErrUnknownOneShotMethod)
}

// TestFitParallelMatchesSerial runs the same steady-state fit in series
// and with the gene loops parallelized and demands identical estimates.
func TestFitParallelMatchesSerial(t *testing.T) {
	const nc = 40
	n := 7
	s := mat.NewDense(n, nc, nil)
	u := mat.NewDense(n, nc, nil)
	for i := 0; i < n; i++ {
		k := 0.2 + 0.3*float64(i)
		for j := 0; j < nc; j++ {
			sv := float64(j + 1)
			s.Set(i, j, sv)
			u.Set(i, j, k*sv)
		}
	}

	serial, err := estimate.New(estimate.LayerSet{UU: u, SU: s},
		nil, estimate.Conventional, estimate.SteadyState, nil)
	require.NoError(t, err)
	require.NoError(t, serial.Fit(estimate.DefaultFitOptions()))

	parallel, err := estimate.New(estimate.LayerSet{UU: u, SU: s},
		nil, estimate.Conventional, estimate.SteadyState, nil)
	require.NoError(t, err)
	opts := estimate.DefaultFitOptions()
	opts.NumCores = -1
	require.NoError(t, parallel.Fit(opts))

	assert.Equal(t, serial.Params.Gamma.Vec, parallel.Params.Gamma.Vec)
}

func meanRow(m *mat.Dense, i int) float64 {
	_, c := m.Dims()
	sum := 0.0
	for j := 0; j < c; j++ {
		sum += m.At(i, j)
	}
	return sum / float64(c)
}
