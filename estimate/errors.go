package estimate

import "errors"

var (
	// ErrOneShotMultipleTimes rejects a one-shot experiment whose time
	// vector spans more than one labeling duration, which violates the
	// defining assumption of the design.
	ErrOneShotMultipleTimes = errors.New("estimate: one-shot experiment measured at more than one labeling time")

	// ErrUnknownOneShotMethod rejects an unrecognized one-shot
	// estimation method.
	ErrUnknownOneShotMethod = errors.New("estimate: unknown one-shot method")

	// ErrUnknownExperiment rejects an unrecognized experiment tag.
	ErrUnknownExperiment = errors.New("estimate: unknown experiment type")

	// ErrUnknownAssumption rejects an unrecognized assumption tag.
	ErrUnknownAssumption = errors.New("estimate: unknown assumption")

	// ErrUnknownParameter rejects a parameter name outside
	// alpha/beta/gamma/eta/delta.
	ErrUnknownParameter = errors.New("estimate: unknown parameter name")

	// ErrShapeMismatch reports layers or vectors that do not align.
	ErrShapeMismatch = errors.New("estimate: shapes do not align")

	// ErrNoData reports a construction with no count layer at all.
	ErrNoData = errors.New("estimate: no count layers supplied")
)
