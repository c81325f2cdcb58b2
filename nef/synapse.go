// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

// SynParams are parameters for first-order lowpass synaptic filtering
// of a signal, integrated per-timestep as y += (dt / Tau) * (x - y).
type SynParams struct {
	Tau float32 `def:"0.005,0.01,0.1" min:"0" desc:"time constant in seconds -- roughly how long it takes for the filtered value to change significantly -- 0 = no filtering (passthrough)"`
}

func (sp *SynParams) Update() {
}

func (sp *SynParams) Defaults() {
	sp.Tau = 0.005
}

// Lowpass is the filter state for a vector-valued signal, using
// SynParams for the time constant.
type Lowpass struct {
	SynParams
	Ys []float32 `view:"-" desc:"current filtered values"`
}

// Init allocates state for a signal of given dimension, zeroed.
func (lp *Lowpass) Init(dim int) {
	if len(lp.Ys) != dim {
		lp.Ys = make([]float32, dim)
	}
	lp.Zero()
}

// Zero resets the filter state without reallocating
func (lp *Lowpass) Zero() {
	for i := range lp.Ys {
		lp.Ys[i] = 0
	}
}

// Step advances the filter by one timestep of duration dt with input xs,
// returning the filtered values (owned by the filter -- copy to retain).
// With Tau = 0 the input passes through unchanged.
func (lp *Lowpass) Step(xs []float32, dt float32) []float32 {
	if lp.Tau <= 0 {
		copy(lp.Ys, xs)
		return lp.Ys
	}
	dtr := dt / lp.Tau
	if dtr > 1 {
		dtr = 1
	}
	for i, x := range xs {
		lp.Ys[i] += dtr * (x - lp.Ys[i])
	}
	return lp.Ys
}
