package estimate

import "fmt"

// ExperimentType tags the labeling design an estimation run was
// measured under; it is fixed for the lifetime of the run and selects
// the fitting strategy once.
type ExperimentType int

const (
	// Conventional covers unlabeled steady-state or stochastic data.
	Conventional ExperimentType = iota
	// Degradation is a pulse-chase experiment: labeled counts decay.
	Degradation
	// Kinetics is a synthesis experiment over multiple labeling times.
	Kinetics
	// OneShot is a single pulse at a single labeling duration.
	OneShot
	// MixStdStm mixes steady-state labeling with a stimulation phase.
	MixStdStm
)

func (e ExperimentType) String() string {
	switch e {
	case Conventional:
		return "conventional"
	case Degradation:
		return "deg"
	case Kinetics:
		return "kin"
	case OneShot:
		return "one-shot"
	case MixStdStm:
		return "mix_std_stm"
	}
	return fmt.Sprintf("ExperimentType(%d)", int(e))
}

// ParseExperimentType maps the experiment tags used in data files to an
// ExperimentType.
func ParseExperimentType(s string) (ExperimentType, error) {
	switch s {
	case "conventional":
		return Conventional, nil
	case "deg", "degradation":
		return Degradation, nil
	case "kin", "kinetics":
		return Kinetics, nil
	case "one-shot", "one_shot":
		return OneShot, nil
	case "mix_std_stm":
		return MixStdStm, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownExperiment, s)
}

// Assumption selects the modeling assumption for the mRNA or protein
// fits.
type Assumption int

const (
	// NoAssumption fits kinetic data without a steady-state constraint.
	NoAssumption Assumption = iota
	// SteadyState assumes synthesis and degradation are balanced.
	SteadyState
)

func (a Assumption) String() string {
	if a == SteadyState {
		return "ss"
	}
	return "none"
}

// ParseAssumption maps the assumption tags used in data files to an
// Assumption. The empty string means no assumption.
func ParseAssumption(s string) (Assumption, error) {
	switch s {
	case "", "none":
		return NoAssumption, nil
	case "ss":
		return SteadyState, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAssumption, s)
}
