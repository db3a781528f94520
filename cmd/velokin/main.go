// velokin fits kinetic rate parameters from single-cell count layers
// stored in a JSON data file and writes the fitted parameters (and
// optionally velocity matrices) back out as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	"velokin/estimate"
	"velokin/velocity"
)

type inputData struct {
	UU         [][]float64 `json:"uu"`
	UL         [][]float64 `json:"ul"`
	SU         [][]float64 `json:"su"`
	SL         [][]float64 `json:"sl"`
	P          [][]float64 `json:"p"`
	US         [][]float64 `json:"us"`
	S2         [][]float64 `json:"s2"`
	T          []float64   `json:"t"`
	ProteinIdx []int       `json:"protein_idx"`
}

type paramOut struct {
	Vec []float64   `json:"vec,omitempty"`
	Mat [][]float64 `json:"mat,omitempty"`
	Std []float64   `json:"std,omitempty"`
}

type outputData struct {
	Alpha *paramOut `json:"alpha,omitempty"`
	Beta  *paramOut `json:"beta,omitempty"`
	Gamma *paramOut `json:"gamma,omitempty"`
	Eta   *paramOut `json:"eta,omitempty"`
	Delta *paramOut `json:"delta,omitempty"`

	GammaR2    []float64 `json:"gamma_r2,omitempty"`
	GammaAllR2 []float64 `json:"gamma_all_r2,omitempty"`
	AlphaR2    []float64 `json:"alpha_r2,omitempty"`
	AlphaAllR2 []float64 `json:"alpha_all_r2,omitempty"`
	DeltaR2    []float64 `json:"delta_r2,omitempty"`
	DeltaAllR2 []float64 `json:"delta_all_r2,omitempty"`

	VelU [][]float64 `json:"vel_u,omitempty"`
	VelS [][]float64 `json:"vel_s,omitempty"`
}

func main() {
	var datafl, savefl, extyp, assumption, oneshot string
	var percleft, percright float64
	var intercept, timedep, vels bool
	var numbercores int

	flag.StringVar(&datafl, "datafl", "velokin_in.json", "path to and name of the count layer data file")
	flag.StringVar(&savefl, "svfl", "velokin_out", "name of save file")
	flag.StringVar(&extyp, "extyp", "conventional", "experiment type: conventional, deg, kin, one-shot, or mix_std_stm")
	flag.StringVar(&assumption, "assumption", "ss", "mRNA assumption: ss or none")
	flag.StringVar(&oneshot, "OneShotMethod", "combined", "one-shot estimation method: combined or sci-fate")
	flag.BoolVar(&intercept, "intercept", false, "fit the steady state regressions with an unfixed intercept")
	flag.Float64Var(&percleft, "PercLeft", -1, "left tail percentage for the steady state mask, negative for none")
	flag.Float64Var(&percright, "PercRight", 5, "right tail percentage for the steady state mask, negative for all cells")
	flag.BoolVar(&timedep, "TimeDependentAlpha", true, "keep the stimulation alpha per time point in mixed experiments")
	flag.BoolVar(&vels, "velocities", false, "also compute unspliced/spliced velocity matrices")
	flag.IntVar(&numbercores, "NumberCores", 0, "extent to parallelize the gene fitting loops (number of go routines allowed). Defaults to not parallel, use -1 for max.")
	flag.Parse()

	raw, err := os.ReadFile(datafl)
	if err != nil {
		fmt.Printf("[velokin] cannot read data file: %s\n", err)
		os.Exit(1)
	}
	var in inputData
	if err := json.Unmarshal(raw, &in); err != nil {
		fmt.Printf("[velokin] data file decoding error: %s\n", err)
		os.Exit(1)
	}

	exp, err := estimate.ParseExperimentType(extyp)
	if err != nil {
		fmt.Printf("[velokin] %s\n", err)
		os.Exit(1)
	}
	asspt, err := estimate.ParseAssumption(assumption)
	if err != nil {
		fmt.Printf("[velokin] %s\n", err)
		os.Exit(1)
	}
	osMethod, err := estimate.ParseOneShotMethod(oneshot)
	if err != nil {
		fmt.Printf("[velokin] %s\n", err)
		os.Exit(1)
	}

	layers := estimate.LayerSet{
		UU: toDense(in.UU),
		UL: toDense(in.UL),
		SU: toDense(in.SU),
		SL: toDense(in.SL),
		P:  toDense(in.P),
		US: toDense(in.US),
		S2: toDense(in.S2),
	}

	estimate.Verbose = true
	est, err := estimate.New(layers, in.T, exp, asspt, in.ProteinIdx)
	if err != nil {
		fmt.Printf("[velokin] %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("[velokin] Data imported with %d genes and %d cells\n", est.NGenes(), est.NCells())

	opts := estimate.DefaultFitOptions()
	opts.Intercept = intercept
	opts.OneShotMethod = osMethod
	opts.AlphaTimeDependent = timedep
	opts.NumCores = numbercores
	if percleft >= 0 {
		opts.PercLeft = estimate.Float(percleft)
	}
	if percright >= 0 {
		opts.PercRight = estimate.Float(percright)
	} else {
		opts.PercRight = nil
	}

	fmt.Printf("[velokin] Fitting %s experiment. %s\n", exp, time.Now().Format("2006.01.02 15:04:05"))
	if err := est.Fit(opts); err != nil {
		fmt.Printf("[velokin] fit failed: %s\n", err)
		os.Exit(1)
	}

	out := outputData{
		Alpha:   toParamOut(est.Params.Alpha),
		Beta:    toParamOut(est.Params.Beta),
		Gamma:   toParamOut(est.Params.Gamma),
		Eta:     toParamOut(est.Params.Eta),
		Delta:   toParamOut(est.Params.Delta),
		GammaR2:    est.Aux.GammaR2,
		GammaAllR2: est.Aux.GammaAllR2,
		AlphaR2:    est.Aux.AlphaR2,
		AlphaAllR2: est.Aux.AlphaAllR2,
		DeltaR2:    est.Aux.DeltaR2,
		DeltaAllR2: est.Aux.DeltaAllR2,
	}

	if vels {
		vel, err := velocity.NewFromEstimation(est)
		if err != nil {
			fmt.Printf("[velokin] velocity setup failed: %s\n", err)
			os.Exit(1)
		}
		if layers.UU != nil {
			out.VelU = toSlices(vel.Unspliced(layers.UU))
		}
		if layers.UU != nil && layers.SU != nil {
			out.VelS = toSlices(vel.Spliced(layers.UU, layers.SU))
		}
	}

	enc, err := json.Marshal(out)
	if err != nil {
		fmt.Printf("[velokin] json encoding error: %s\n", err)
		os.Exit(1)
	}

	flnm := savefl
	if !strings.HasSuffix(flnm, ".json") {
		flnm = flnm + ".json"
	}
	if err := os.WriteFile(flnm, enc, 0644); err != nil {
		fmt.Printf("[velokin] cannot write %s: %s\n", flnm, err)
		os.Exit(1)
	}
	fmt.Printf("[velokin] Completed. %s\n", time.Now().Format("2006.01.02 15:04:05"))
}

func toDense(rows [][]float64) mat.Matrix {
	if len(rows) == 0 {
		return nil
	}
	c := len(rows[0])
	d := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		d.SetRow(i, row)
	}
	return d
}

func toSlices(m mat.Matrix) [][]float64 {
	if m == nil {
		return nil
	}
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func toParamOut(p *estimate.Param) *paramOut {
	if p == nil {
		return nil
	}
	return &paramOut{Vec: p.Vec, Mat: toSlices(p.Mat), Std: p.Std}
}
