package lsq

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// ErrDegenerate reports decay data a least-squares fit cannot use:
// too few time points, mismatched lengths, or all-zero counts.
var ErrDegenerate = errors.New("lsq: degenerate decay data")

// SolU is the analytic solution of du/dt = alpha - beta*u with u(0)=u0.
func SolU(t, u0, alpha, beta float64) float64 {
	if beta == 0 {
		return u0 + alpha*t
	}
	e := math.Exp(-beta * t)
	return u0*e + alpha/beta*(1-e)
}

// SolS is the spliced solution during a pure chase (alpha = 0), given
// the unspliced initial amount u0 and rates beta, gamma.
func SolS(t, s0, u0, beta, gamma float64) float64 {
	es := math.Exp(-gamma * t)
	if math.Abs(gamma-beta) < 1e-10 {
		return s0*es + beta*u0*t*es
	}
	return s0*es + beta*u0/(gamma-beta)*(math.Exp(-beta*t)-es)
}

// FitFirstOrderDegLsq fits l(tau) = l0*exp(-k*tau) by least squares over
// the per-time-point means of a decaying layer, returning the decay
// rate and the initial amount. Degenerate input and solver failure are
// reported as an error so callers can apply their fallback.
func FitFirstOrderDegLsq(t, l []float64) (k, l0 float64, err error) {
	if len(t) < 2 || len(t) != len(l) {
		return 0, 0, ErrDegenerate
	}
	if floats.Max(l) <= 0 {
		return 0, 0, ErrDegenerate
	}

	tmin := floats.Min(t)
	tau := make([]float64, len(t))
	for i := range t {
		tau[i] = t[i] - tmin
	}
	l0init := meanAtZero(tau, l)

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			kk, ll := math.Abs(p[0]), math.Abs(p[1])
			ss := 0.0
			for i := range tau {
				d := SolU(tau[i], ll, 0, kk) - l[i]
				ss += d * d
			}
			return ss
		},
	}
	res, err := optimize.Minimize(problem, []float64{1, l0init}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, 0, err
	}
	k, l0 = math.Abs(res.X[0]), math.Abs(res.X[1])
	if math.IsNaN(k) || math.IsInf(k, 0) || math.IsNaN(l0) {
		return 0, 0, ErrDegenerate
	}
	return k, l0, nil
}

// FitGammaLsq fits the degradation rate and the spliced initial amount
// in the chase solution SolS, given beta and u0 from the unspliced fit.
func FitGammaLsq(t, s []float64, beta, u0 float64) (gamma, s0 float64, err error) {
	if len(t) < 2 || len(t) != len(s) {
		return 0, 0, ErrDegenerate
	}
	if floats.Max(s) <= 0 {
		return 0, 0, ErrDegenerate
	}

	tmin := floats.Min(t)
	tau := make([]float64, len(t))
	for i := range t {
		tau[i] = t[i] - tmin
	}
	s0init := meanAtZero(tau, s)

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			gg, ss0 := math.Abs(p[0]), math.Abs(p[1])
			ss := 0.0
			for i := range tau {
				d := SolS(tau[i], ss0, u0, beta, gg) - s[i]
				ss += d * d
			}
			return ss
		},
	}
	res, err := optimize.Minimize(problem, []float64{1, s0init}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, 0, err
	}
	gamma, s0 = math.Abs(res.X[0]), math.Abs(res.X[1])
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || math.IsNaN(s0) {
		return 0, 0, ErrDegenerate
	}
	return gamma, s0, nil
}

// FitAlphaSynthesis solves the transcription rate from labeled counts
// accumulated under u(t) = alpha/beta*(1-exp(-beta*t)). The count and
// time vectors may differ in length; each is averaged independently.
func FitAlphaSynthesis(t, u []float64, beta float64) float64 {
	mu, err := stats.Mean(u)
	if err != nil {
		return math.NaN()
	}
	if beta == 0 {
		// u = alpha*t in the no-conversion limit
		mt, err := stats.Mean(t)
		if err != nil || mt == 0 {
			return math.NaN()
		}
		return mu / mt
	}
	md := 0.0
	for _, tv := range t {
		md += 1 - math.Exp(-beta*tv)
	}
	md /= float64(len(t))
	if md == 0 {
		return math.NaN()
	}
	return beta * mu / md
}

// FitAlphaDegradation estimates the transcription rate from the decay of
// pre-existing unspliced counts given the conversion rate b:
// u(tau) = u0*exp(-b*tau) + alpha/b*(1-exp(-b*tau)). Regressing u on
// exp(-b*tau) gives alpha/b as the intercept and u0 - alpha/b as the
// slope.
func FitAlphaDegradation(t, u []float64, b float64) (alpha, u0, r2 float64) {
	if len(t) < 2 || len(t) != len(u) || b == 0 {
		nan := math.NaN()
		return nan, nan, nan
	}
	tmin := floats.Min(t)
	x := make([]float64, len(t))
	mask := make([]bool, len(t))
	for i := range t {
		x[i] = math.Exp(-b * (t[i] - tmin))
		mask[i] = true
	}
	k, c, r2, _ := FitLinreg(x, u, mask, true)
	return c * b, k + c, r2
}

// SolveGamma solves the decay rate from the fraction of pre-existing
// counts surviving a labeling period of length t:
// gamma = -ln(mean(old)/mean(total))/t.
func SolveGamma(t float64, old, total []float64) float64 {
	if t <= 0 {
		return math.NaN()
	}
	mo, err := stats.Mean(old)
	if err != nil {
		return math.NaN()
	}
	mt, err := stats.Mean(total)
	if err != nil {
		return math.NaN()
	}
	if mo <= 0 || mt <= 0 {
		return math.NaN()
	}
	return -math.Log(mo/mt) / t
}

// SolveAlpha2p solves the stimulation-phase transcription rate in a
// two-phase labeling design: synthesis at the steady-state rate alpha0
// for duration t0, then at the unknown rate for duration t1, observing
// labeled counts u1 at the end. The conversion rate b is assumed
// constant across both phases.
func SolveAlpha2p(t0, t1, alpha0, b float64, u1 []float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	d := 1 - math.Exp(-b*t1)
	if d == 0 {
		return math.NaN()
	}
	m, err := stats.Mean(u1)
	if err != nil {
		return math.NaN()
	}
	u0 := alpha0 / b * (1 - math.Exp(-b*t0))
	return b * (m - u0*math.Exp(-b*t1)) / d
}

// OneShotGammaAlpha converts the zero-intercept slope k of labeled vs
// total counts at a single labeling duration t into the degradation
// rate and a per-cell transcription rate: k = 1-exp(-gamma*t), so
// gamma = -ln(1-k)/t and alpha_j = gamma*l_j/k. A slope outside (0,1)
// yields NaN estimates.
func OneShotGammaAlpha(k, t float64, l []float64) (gamma float64, alpha []float64) {
	alpha = make([]float64, len(l))
	if t <= 0 || k <= 0 || k >= 1 {
		gamma = math.NaN()
		for i := range alpha {
			alpha[i] = math.NaN()
		}
		return gamma, alpha
	}
	gamma = -math.Log(1-k) / t
	for i, v := range l {
		alpha[i] = gamma * v / k
	}
	return gamma, alpha
}

// meanAtZero averages the values measured at tau == 0, falling back to
// the overall mean when no cell sits at the origin.
func meanAtZero(tau, v []float64) float64 {
	sum, cnt := 0.0, 0
	for i := range tau {
		if tau[i] == 0 {
			sum += v[i]
			cnt++
		}
	}
	if cnt > 0 {
		return sum / float64(cnt)
	}
	m, err := stats.Mean(v)
	if err != nil {
		return 0
	}
	return m
}
