// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

// GateParams specify a time-gated multiplicative gain on the error
// signal, applied before the signal reaches the learning rule.
// Silencing the error is how learning is turned off at a chosen time:
// the rule itself stays stateless and mode-free, and the weights are
// exactly frozen from the gate-off point onward.
type GateParams struct {
	On      bool    `desc:"enable time-gated silencing of the error signal"`
	OffTime float32 `min:"0" desc:"simulated time in seconds at which the error signal is silenced (multiplied by 0)"`
	Gain    float32 `def:"1" desc:"multiplier on the error signal while the gate is open"`
}

func (gp *GateParams) Update() {
}

func (gp *GateParams) Defaults() {
	gp.Gain = 1
}

// GainAt returns the effective error gain at simulated time t.
// With the gate disabled the error always passes through unscaled.
func (gp *GateParams) GainAt(t float32) float32 {
	if !gp.On {
		return 1
	}
	if t >= gp.OffTime {
		return 0
	}
	return gp.Gain
}

// Apply multiplies the error vector in place by the gain at time t.
func (gp *GateParams) Apply(t float32, errs []float32) {
	g := gp.GainAt(t)
	if g == 1 {
		return
	}
	for i := range errs {
		errs[i] *= g
	}
}
