// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pes implements the PES (prescribed error sensitivity) learning
rule: an online delta-rule adaptation of a linear readout's decoding
weights, applied once per simulation timestep from an externally computed
error signal and the current presynaptic unit activities.

The weight delta for output dimension i and unit j is:

	DWt_ij = -Lrate * dt * Err_i * Act_j / n

where n is the number of presynaptic units.  The division by n makes
learning speed invariant to population size.  With the convention
Err = estimate - target, subtracting the outer product descends the
squared-error gradient, moving the estimate toward the target.

The rule has no internal state beyond the weights it adapts, and no
modes: freezing learning is done externally, by gating the error signal
to zero before it reaches the rule (see nef.GateParams).
*/
package pes

import (
	"fmt"

	"github.com/goki/mat32"
)

// Params are the parameters for the PES learning rule.
type Params struct {
	On    bool    `desc:"enable learning -- if off, DWt leaves the delta at zero"`
	Lrate float32 `def:"0.0001" min:"0" desc:"learning rate -- scales the error-driven weight delta each timestep -- normalized internally by the number of presynaptic units, so the same value produces the same learning speed regardless of population size"`
}

func (pr *Params) Update() {
}

func (pr *Params) Defaults() {
	pr.On = true
	pr.Lrate = 1e-4
}

// CheckDims verifies the activity and error vectors against the
// configured population size and output dimension.  A mismatch is fatal
// for the caller: no weight update may be applied from mismatched inputs.
func (pr *Params) CheckDims(acts, errs []float32, nUnits, outDim int) error {
	if len(acts) != nUnits {
		return fmt.Errorf("pes.Params: activity vector len %d != number of units %d", len(acts), nUnits)
	}
	if len(errs) != outDim {
		return fmt.Errorf("pes.Params: error vector len %d != output dimension %d", len(errs), outDim)
	}
	return nil
}

// CheckFinite verifies that the activity and error vectors contain no
// NaN or Inf entries, which would silently corrupt the weights.
func (pr *Params) CheckFinite(acts, errs []float32) error {
	for _, a := range acts {
		if mat32.IsNaN(a) || mat32.IsInf(a, 0) {
			return fmt.Errorf("pes.Params: non-finite value %v in activity vector", a)
		}
	}
	for _, e := range errs {
		if mat32.IsNaN(e) || mat32.IsInf(e, 0) {
			return fmt.Errorf("pes.Params: non-finite value %v in error vector", e)
		}
	}
	return nil
}

// DWt computes the PES weight delta into dwt, which must be organized as
// [outDim][nUnits] in row-major order, from the given activity and error
// vectors and timestep duration dt (sec).  All checks happen before dwt
// is touched, so a failed call never leaves a partial delta behind.
// A zero-unit population is a valid degenerate configuration: no-op.
func (pr *Params) DWt(dwt, acts, errs []float32, nUnits, outDim int, dt float32) error {
	if err := pr.CheckDims(acts, errs, nUnits, outDim); err != nil {
		return err
	}
	if err := pr.CheckFinite(acts, errs); err != nil {
		return err
	}
	if len(dwt) != nUnits*outDim {
		return fmt.Errorf("pes.Params: dwt len %d != %d * %d", len(dwt), outDim, nUnits)
	}
	for i := range dwt {
		dwt[i] = 0
	}
	if !pr.On || nUnits == 0 {
		return nil
	}
	kd := -pr.Lrate * dt / float32(nUnits)
	for i, e := range errs {
		ke := kd * e
		wr := dwt[i*nUnits : (i+1)*nUnits]
		for j, a := range acts {
			wr[j] = ke * a
		}
	}
	return nil
}

// WtFmDWt adds the delta into the weights, in place.  Straight update,
// no bounds or clipping: the readout weights are unconstrained.
func (pr *Params) WtFmDWt(wts, dwt []float32) {
	for i := range dwt {
		wts[i] += dwt[i]
	}
}
