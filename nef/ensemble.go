// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

import (
	"fmt"
	"math/rand"

	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// Coder computes the unit activity vector for an input vector, as a
// pluggable alternative to the built-in rectified-linear tuning curves.
// How a population encodes its input is outside the scope of this
// module, so anything satisfying this contract can be dropped in.
type Coder interface {
	// Init prepares internal state for a population of n units
	// encoding a dim-dimensional input -- called from Ensemble.Init
	Init(n, dim int)

	// Rates computes unit activities (non-negative rates) for input x,
	// writing into rates, which has n elements
	Rates(x, rates []float32)
}

// UnitParams are parameters for randomly sampled rectified-linear
// tuning curves, the built-in activity function.
type UnitParams struct {
	MaxRate   minmax.F32 `desc:"range for uniformly sampled maximum firing rates (Hz), attained at full drive in the unit's preferred direction"`
	Intercept minmax.F32 `desc:"range for uniformly sampled intercepts -- the normalized input drive below which a unit is silent"`
}

func (up *UnitParams) Update() {
}

func (up *UnitParams) Defaults() {
	up.MaxRate.Set(50, 100)
	up.Intercept.Set(-0.95, 0.95)
}

// nef.Ensemble is a population of rate units collectively representing
// a vector-valued signal.  Each unit has a preferred direction vector
// (encoder), a gain, and a bias, all sampled at Init time from the
// seeded random source.  Unit activity is a rectified-linear function
// of the encoded drive:
//
//	act_j = max(0, gain_j * (enc_j . x) / Radius + bias_j)
//
// An optional Coder replaces this built-in tuning-curve computation.
type Ensemble struct {
	Nm     string     `desc:"name of the ensemble"`
	NUnits int        `desc:"number of units in the population"`
	DimN   int        `desc:"dimension of the represented input vector"`
	Units  UnitParams `view:"inline" desc:"tuning curve sampling parameters"`
	Radius float32    `def:"1" min:"0" desc:"magnitude of input vectors the population is tuned for -- inputs are scaled down by this before encoding"`
	Coder  Coder      `view:"-" desc:"optional custom activity function -- if nil, the built-in tuning curves are used"`

	Encoders *etensor.Float32 `view:"no-inline" desc:"unit preferred direction vectors [NUnits][DimN], unit length"`
	Gains    []float32        `view:"-" desc:"unit gains"`
	Biases   []float32        `view:"-" desc:"unit biases"`
	Acts     []float32        `desc:"current unit activities (rates, Hz), updated each step"`
}

var KiT_Ensemble = kit.Types.AddType(&Ensemble{}, nil)

// NewEnsemble returns a new ensemble of n units representing a
// dim-dimensional input, with default parameters.
func NewEnsemble(name string, n, dim int) *Ensemble {
	en := &Ensemble{Nm: name, NUnits: n, DimN: dim}
	en.Defaults()
	return en
}

func (en *Ensemble) Name() string { return en.Nm }

func (en *Ensemble) Defaults() {
	en.Units.Defaults()
	en.Radius = 1
}

// Build allocates the ensemble state.  Zero units is a valid degenerate
// configuration; a non-positive dimension is not.
func (en *Ensemble) Build() error {
	if en.NUnits < 0 {
		return fmt.Errorf("Ensemble %s: NUnits must be >= 0, got %d", en.Nm, en.NUnits)
	}
	if en.DimN <= 0 {
		return fmt.Errorf("Ensemble %s: DimN must be > 0, got %d", en.Nm, en.DimN)
	}
	if en.Radius <= 0 {
		en.Radius = 1
	}
	en.Encoders = etensor.NewFloat32([]int{en.NUnits, en.DimN}, nil, []string{"Unit", "Dim"})
	en.Gains = make([]float32, en.NUnits)
	en.Biases = make([]float32, en.NUnits)
	en.Acts = make([]float32, en.NUnits)
	return nil
}

// Init samples fresh tuning curves from the (seeded) random source and
// zeroes the activities.  Called per-run so each run's representation
// is determined entirely by its seed.
func (en *Ensemble) Init() {
	if en.Coder != nil {
		en.Coder.Init(en.NUnits, en.DimN)
		for j := range en.Acts {
			en.Acts[j] = 0
		}
		return
	}
	gauss := erand.RndParams{Dist: erand.Gaussian, Mean: 0, Var: 1}
	for j := 0; j < en.NUnits; j++ {
		enc := en.Encoders.Values[j*en.DimN : (j+1)*en.DimN]
		nrm := float32(0)
		for i := range enc {
			enc[i] = float32(gauss.Gen(-1))
			nrm += enc[i] * enc[i]
		}
		if nrm == 0 {
			enc[0] = 1
			nrm = 1
		}
		nrm = mat32.Sqrt(nrm)
		for i := range enc {
			enc[i] /= nrm
		}
		maxRate := en.Units.MaxRate.ProjVal(rand.Float32())
		icpt := en.Units.Intercept.ProjVal(rand.Float32())
		gain := maxRate / (1 - icpt)
		en.Gains[j] = gain
		en.Biases[j] = -gain * icpt
		en.Acts[j] = 0
	}
}

// ActFmInput computes the unit activities for the given input vector,
// into Acts.  Fails on a dimension mismatch, before touching any state.
func (en *Ensemble) ActFmInput(x []float32) error {
	if len(x) != en.DimN {
		return fmt.Errorf("Ensemble %s: input len %d != DimN %d", en.Nm, len(x), en.DimN)
	}
	if en.Coder != nil {
		en.Coder.Rates(x, en.Acts)
		return nil
	}
	for j := 0; j < en.NUnits; j++ {
		enc := en.Encoders.Values[j*en.DimN : (j+1)*en.DimN]
		drv := float32(0)
		for i, xv := range x {
			drv += enc[i] * xv
		}
		act := en.Gains[j]*(drv/en.Radius) + en.Biases[j]
		if act < 0 {
			act = 0
		}
		en.Acts[j] = act
	}
	return nil
}
