package velocity

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"velokin/matrix"
)

var (
	// ErrUnknownConfidenceMethod rejects an unrecognized confidence
	// method tag.
	ErrUnknownConfidenceMethod = errors.New("velocity: unknown confidence method")

	// ErrMissingNeighbors reports a confidence call without the neighbor
	// indices its method needs.
	ErrMissingNeighbors = errors.New("velocity: confidence method needs neighbor indices")
)

// ConfidenceMethod selects how a cell-wise velocity confidence score is
// computed from a cell's neighborhood.
type ConfidenceMethod int

const (
	// ConfidenceJaccard overlaps each cell's neighborhood with the
	// neighborhood of its velocity-displaced state.
	ConfidenceJaccard ConfidenceMethod = iota
	// ConfidenceCosine averages the cosine similarity between the
	// velocity vector and the displacements toward each neighbor.
	ConfidenceCosine
	// ConfidenceCorrelation averages the Pearson correlation instead.
	ConfidenceCorrelation
)

// ParseConfidenceMethod maps the method tags used in data files to a
// ConfidenceMethod.
func ParseConfidenceMethod(s string) (ConfidenceMethod, error) {
	switch s {
	case "", "jaccard":
		return ConfidenceJaccard, nil
	case "cosine":
		return ConfidenceCosine, nil
	case "correlation":
		return ConfidenceCorrelation, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownConfidenceMethod, s)
}

// CellWiseConfidence scores, per cell, how consistent the velocity field
// is with the cell's local neighborhood. X and V are genes x cells
// expression and velocity layers; nbrs[j] lists the neighbor cell
// indices of cell j in expression space. The jaccard method additionally
// needs projNbrs, the neighborhoods of the velocity-displaced states,
// computed by the caller's neighbor-graph machinery. A cell with no
// neighbors scores NaN; an unrecognized method is a configuration error.
func CellWiseConfidence(X, V mat.Matrix, nbrs, projNbrs [][]int, method ConfidenceMethod) ([]float64, error) {
	switch method {
	case ConfidenceJaccard:
		if nbrs == nil || projNbrs == nil {
			return nil, ErrMissingNeighbors
		}
		if len(projNbrs) != len(nbrs) {
			return nil, matrix.ErrShapeMismatch
		}
		return jaccardConfidence(nbrs, projNbrs), nil
	case ConfidenceCosine:
		return neighborSimilarity(X, V, nbrs, cosineSim)
	case ConfidenceCorrelation:
		return neighborSimilarity(X, V, nbrs, correlationSim)
	}
	return nil, ErrUnknownConfidenceMethod
}

// jaccardConfidence is the per-cell intersection-over-union of the two
// neighborhood lists; duplicate indices count once.
func jaccardConfidence(a, b [][]int) []float64 {
	out := make([]float64, len(a))
	for j := range a {
		set := make(map[int]struct{}, len(a[j]))
		for _, k := range a[j] {
			set[k] = struct{}{}
		}
		inter, union := 0, len(set)
		seen := make(map[int]struct{}, len(b[j]))
		for _, k := range b[j] {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if _, ok := set[k]; ok {
				inter++
			} else {
				union++
			}
		}
		if union == 0 {
			out[j] = math.NaN()
			continue
		}
		out[j] = float64(inter) / float64(union)
	}
	return out
}

func neighborSimilarity(X, V mat.Matrix, nbrs [][]int, sim func(a, b []float64) float64) ([]float64, error) {
	if X == nil || V == nil || nbrs == nil {
		return nil, ErrMissingNeighbors
	}
	ng, nc := X.Dims()
	vg, vc := V.Dims()
	if vg != ng || vc != nc || len(nbrs) != nc {
		return nil, matrix.ErrShapeMismatch
	}

	out := make([]float64, nc)
	for j := 0; j < nc; j++ {
		if len(nbrs[j]) == 0 {
			out[j] = math.NaN()
			continue
		}
		vj := colOf(V, j)
		xj := colOf(X, j)
		d := make([]float64, ng)
		sum := 0.0
		for _, k := range nbrs[j] {
			for g := 0; g < ng; g++ {
				d[g] = X.At(g, k) - xj[g]
			}
			sum += sim(d, vj)
		}
		out[j] = sum / float64(len(nbrs[j]))
	}
	return out, nil
}

func colOf(m mat.Matrix, j int) []float64 {
	r, _ := m.Dims()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = m.At(i, j)
	}
	return out
}

func cosineSim(a, b []float64) float64 {
	den := floats.Norm(a, 2) * floats.Norm(b, 2)
	if den == 0 {
		return math.NaN()
	}
	return floats.Dot(a, b) / den
}

func correlationSim(a, b []float64) float64 {
	return stat.Correlation(a, b, nil)
}
