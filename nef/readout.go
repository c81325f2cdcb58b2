// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

import (
	"fmt"

	"github.com/emer/etable/etensor"
	"github.com/emer/nef/pes"
	"github.com/goki/ki/kit"
)

// nef.Readout is the learned linear decode from an ensemble's unit
// activities to an output estimate: Est_i = sum_j Wts_ij * Act_j.
// The weight matrix is the only mutable state, owned exclusively here
// and mutated only by the PES rule, once per timestep.
type Readout struct {
	Nm     string     `desc:"name of the readout"`
	NUnits int        `desc:"number of presynaptic units"`
	OutDim int        `desc:"dimension of the decoded output"`
	Learn  pes.Params `view:"inline" desc:"PES learning rule parameters"`

	Wts  *etensor.Float32 `view:"no-inline" desc:"decoding weights [OutDim][NUnits], adapted online by the PES rule"`
	DWts []float32        `view:"-" desc:"scratch buffer for the per-step weight delta"`
	Est  []float32        `desc:"current output estimate, updated each step"`
}

var KiT_Readout = kit.Types.AddType(&Readout{}, nil)

// NewReadout returns a new readout decoding n units into an
// outDim-dimensional estimate, with default parameters.
func NewReadout(name string, n, outDim int) *Readout {
	ro := &Readout{Nm: name, NUnits: n, OutDim: outDim}
	ro.Defaults()
	return ro
}

func (ro *Readout) Name() string { return ro.Nm }

func (ro *Readout) Defaults() {
	ro.Learn.Defaults()
}

// Build allocates the readout state.
func (ro *Readout) Build() error {
	if ro.NUnits < 0 {
		return fmt.Errorf("Readout %s: NUnits must be >= 0, got %d", ro.Nm, ro.NUnits)
	}
	if ro.OutDim <= 0 {
		return fmt.Errorf("Readout %s: OutDim must be > 0, got %d", ro.Nm, ro.OutDim)
	}
	ro.Wts = etensor.NewFloat32([]int{ro.OutDim, ro.NUnits}, nil, []string{"Out", "Unit"})
	ro.DWts = make([]float32, ro.OutDim*ro.NUnits)
	ro.Est = make([]float32, ro.OutDim)
	return nil
}

// InitWts zeroes the weights, delta buffer, and estimate.  The decode
// starts at zero and is shaped entirely by online learning.
func (ro *Readout) InitWts() {
	for i := range ro.Wts.Values {
		ro.Wts.Values[i] = 0
	}
	for i := range ro.DWts {
		ro.DWts[i] = 0
	}
	for i := range ro.Est {
		ro.Est[i] = 0
	}
}

// EstFmAct computes the output estimate from the given unit activities,
// into Est.
func (ro *Readout) EstFmAct(acts []float32) error {
	if len(acts) != ro.NUnits {
		return fmt.Errorf("Readout %s: activity len %d != NUnits %d", ro.Nm, len(acts), ro.NUnits)
	}
	for i := 0; i < ro.OutDim; i++ {
		wr := ro.Wts.Values[i*ro.NUnits : (i+1)*ro.NUnits]
		est := float32(0)
		for j, a := range acts {
			est += wr[j] * a
		}
		ro.Est[i] = est
	}
	return nil
}

// LearnFmErr applies one PES update from the given (gated, filtered)
// error signal and unit activities, over timestep dt.  The delta is
// fully computed and validated before any weight is touched, so an
// error return always means the weights are unchanged.
func (ro *Readout) LearnFmErr(errs, acts []float32, dt float32) error {
	err := ro.Learn.DWt(ro.DWts, acts, errs, ro.NUnits, ro.OutDim, dt)
	if err != nil {
		return fmt.Errorf("Readout %s: %v", ro.Nm, err)
	}
	ro.Learn.WtFmDWt(ro.Wts.Values, ro.DWts)
	return nil
}
