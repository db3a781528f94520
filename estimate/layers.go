package estimate

import "gonum.org/v1/gonum/mat"

// Layer names one of the count layers an experiment may provide.
type Layer int

const (
	LayerUU Layer = iota // unspliced, unlabeled
	LayerUL              // unspliced, labeled
	LayerSU              // spliced, unlabeled
	LayerSL              // spliced, labeled
	LayerP               // protein
	LayerUS              // second moment of unspliced*spliced
	LayerS2              // second moment of spliced
)

// LayerSet holds the available genes x cells count matrices, nil
// meaning the layer was not measured. The protein layer has one row per
// entry of the protein index map rather than per gene.
type LayerSet struct {
	UU mat.Matrix
	UL mat.Matrix
	SU mat.Matrix
	SL mat.Matrix
	P  mat.Matrix
	US mat.Matrix
	S2 mat.Matrix
}

func (d *LayerSet) get(l Layer) mat.Matrix {
	switch l {
	case LayerUU:
		return d.UU
	case LayerUL:
		return d.UL
	case LayerSU:
		return d.SU
	case LayerSL:
		return d.SL
	case LayerP:
		return d.P
	case LayerUS:
		return d.US
	case LayerS2:
		return d.S2
	}
	return nil
}

func (d *LayerSet) set(l Layer, m mat.Matrix) {
	switch l {
	case LayerUU:
		d.UU = m
	case LayerUL:
		d.UL = m
	case LayerSU:
		d.SU = m
	case LayerSL:
		d.SL = m
	case LayerP:
		d.P = m
	case LayerUS:
		d.US = m
	case LayerS2:
		d.S2 = m
	}
}

// Has reports whether every named layer is present.
func (d *LayerSet) Has(layers ...Layer) bool {
	for _, l := range layers {
		if d.get(l) == nil {
			return false
		}
	}
	return true
}

// allLayers enumerates the layer names in a fixed order.
var allLayers = []Layer{LayerUU, LayerUL, LayerSU, LayerSL, LayerP, LayerUS, LayerS2}
