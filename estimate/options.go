package estimate

// OneShotMethod selects how a one-shot experiment with only unspliced
// layers derives its rates.
type OneShotMethod int

const (
	// OneShotCombined fits a zero-intercept steady-state slope of
	// labeled vs total counts and converts it in closed form into
	// gamma and a per-cell alpha.
	OneShotCombined OneShotMethod = iota
	// OneShotSciFate derives gamma from total-count decay, then alpha
	// from the labeled moments.
	OneShotSciFate
)

// ParseOneShotMethod maps the method tags used in data files to a
// OneShotMethod.
func ParseOneShotMethod(s string) (OneShotMethod, error) {
	switch s {
	case "", "combined":
		return OneShotCombined, nil
	case "sci-fate", "sci_fate":
		return OneShotSciFate, nil
	}
	return 0, ErrUnknownOneShotMethod
}

// FitOptions configures a single Fit run.
type FitOptions struct {
	// Intercept selects an unfixed regression intercept for the
	// steady-state fits; false fixes the intercept at zero.
	Intercept bool

	// PercLeft and PercRight are the extreme-tail percentages for the
	// steady-state mask. nil disables that tail (PercRight nil keeps
	// every cell). An unfixed-intercept fit with PercLeft unset
	// defaults the left percentage to PercRight.
	PercLeft  *float64
	PercRight *float64

	// Clusters partitions cell indices for one-shot alpha estimation.
	// nil treats every cell as its own singleton cluster.
	Clusters [][]int

	// OneShotMethod selects the ul+uu one-shot strategy.
	OneShotMethod OneShotMethod

	// AlphaTimeDependent keeps the stimulation-phase transcription rate
	// of a mixed experiment per unique time point; false averages it
	// into a per-gene vector.
	AlphaTimeDependent bool

	// NumCores bounds the gene-parallel fitting loops: 0 runs in
	// series, -1 uses every CPU, any other value caps the number of
	// concurrent goroutines.
	NumCores int
}

// DefaultFitOptions mirrors the defaults of the reference protocol:
// fixed zero intercept, right tail at 5 percent, combined one-shot
// method, time-dependent stimulation alpha, serial fitting.
func DefaultFitOptions() FitOptions {
	pr := 5.0
	return FitOptions{
		PercRight:          &pr,
		AlphaTimeDependent: true,
	}
}

// Float is a convenience for the nil-able tail percentages.
func Float(v float64) *float64 { return &v }
