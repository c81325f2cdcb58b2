// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

import "testing"

func TestLowpassPassthrough(t *testing.T) {
	lp := Lowpass{}
	lp.Tau = 0
	lp.Init(2)

	xs := []float32{0.5, -1.25}
	ys := lp.Step(xs, 0.001)
	CmprFloats(ys, xs, "tau 0 passes input through", t)
	ys = lp.Step([]float32{2, 3}, 0.001)
	CmprFloats(ys, []float32{2, 3}, "tau 0 holds no state", t)
}

func TestLowpassStepResponse(t *testing.T) {
	lp := Lowpass{}
	lp.Tau = 0.01
	lp.Init(1)

	dt := float32(0.001)
	// constant input 1: y accumulates by dt/tau of the remaining gap
	ys := lp.Step([]float32{1}, dt)
	CmprFloats(ys, []float32{0.1}, "first step is dt/tau of the input", t)
	ys = lp.Step([]float32{1}, dt)
	CmprFloats(ys, []float32{0.19}, "second step closes 10% of the gap", t)

	// must converge toward the input, never overshoot
	for i := 0; i < 200; i++ {
		ys = lp.Step([]float32{1}, dt)
		if ys[0] > 1 {
			t.Fatalf("filter overshot constant input at step %d: %v\n", i, ys[0])
		}
	}
	if ys[0] < 0.99 {
		t.Errorf("filter did not converge to constant input: %v\n", ys[0])
	}
}

func TestLowpassLargeDt(t *testing.T) {
	lp := Lowpass{}
	lp.Tau = 0.001
	lp.Init(1)

	// dt > tau: integration ratio is capped at 1, so output snaps to input
	ys := lp.Step([]float32{0.7}, 0.01)
	CmprFloats(ys, []float32{0.7}, "dt > tau snaps to input", t)
}

func TestLowpassZero(t *testing.T) {
	lp := Lowpass{}
	lp.Tau = 0.01
	lp.Init(2)
	lp.Step([]float32{1, -1}, 0.001)
	lp.Zero()
	CmprFloats(lp.Ys, []float32{0, 0}, "Zero clears filter state", t)
}
