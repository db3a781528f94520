package matrix

import (
	"errors"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch reports per-condition layers that do not align.
var ErrShapeMismatch = errors.New("matrix: condition shapes do not align")

// ConcatTimeSeries stitches per-condition count matrices into a single
// genes x cells matrix, preserving condition order, and unrolls the
// matching time vector. Each ts entry is either a single labeling
// duration for the whole condition or one value per cell. ts may be nil
// when the time vector has already been unrolled.
func ConcatTimeSeries(mats []mat.Matrix, ts [][]float64) (mat.Matrix, []float64, error) {
	if len(mats) == 0 {
		return nil, nil, ErrShapeMismatch
	}
	if ts != nil && len(ts) != len(mats) {
		return nil, nil, ErrShapeMismatch
	}

	rows, _ := mats[0].Dims()
	total := 0
	allSparse := true
	for _, m := range mats {
		r, c := m.Dims()
		if r != rows {
			return nil, nil, ErrShapeMismatch
		}
		total += c
		if !IsSparse(m) {
			allSparse = false
		}
	}

	var t []float64
	if ts != nil {
		t = make([]float64, 0, total)
		for k, m := range mats {
			_, c := m.Dims()
			switch len(ts[k]) {
			case 1:
				for j := 0; j < c; j++ {
					t = append(t, ts[k][0])
				}
			case c:
				t = append(t, ts[k]...)
			default:
				return nil, nil, ErrShapeMismatch
			}
		}
	}

	if allSparse {
		dok := sparse.NewDOK(rows, total)
		off := 0
		for _, m := range mats {
			_, c := m.Dims()
			offset := off
			m.(nonZeroDoer).DoNonZero(func(i, j int, v float64) {
				dok.Set(i, offset+j, v)
			})
			off += c
		}
		return dok.ToCSR(), t, nil
	}

	out := mat.NewDense(rows, total, nil)
	off := 0
	for _, m := range mats {
		_, c := m.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < c; j++ {
				out.Set(i, off+j, m.At(i, j))
			}
		}
		off += c
	}
	return out, t, nil
}

// UniqueTimes returns the distinct time values in ascending order and
// the number of cells measured at each.
func UniqueTimes(t []float64) ([]float64, []int) {
	if len(t) == 0 {
		return nil, nil
	}
	sorted := append([]float64(nil), t...)
	sort.Float64s(sorted)
	uniq := make([]float64, 0, len(sorted))
	cnt := make([]int, 0, len(sorted))
	for _, v := range sorted {
		if len(uniq) > 0 && uniq[len(uniq)-1] == v {
			cnt[len(cnt)-1]++
			continue
		}
		uniq = append(uniq, v)
		cnt = append(cnt, 1)
	}
	return uniq, cnt
}
