// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

import (
	"math/rand"
	"testing"

	"github.com/goki/mat32"
)

func TestConstSignal(t *testing.T) {
	cs := &ConstSignal{Vals: []float32{0.5, -0.25}}
	cs.Init()
	vec := make([]float32, 2)
	cs.Value(0, vec)
	CmprFloats(vec, []float32{0.5, -0.25}, "const value at t=0", t)
	cs.Value(3.7, vec)
	CmprFloats(vec, []float32{0.5, -0.25}, "const value at later t", t)
}

func TestSineSignal(t *testing.T) {
	sg := &SineSignal{DimN: 1}
	sg.Defaults()
	vec := make([]float32, 1)

	sg.Value(0, vec)
	CmprFloats(vec, []float32{0}, "sine at t=0", t)
	sg.Value(0.25, vec) // quarter period at 1 Hz
	CmprFloats(vec, []float32{1}, "sine peak at quarter period", t)
	sg.Value(0.5, vec)
	if mat32.Abs(vec[0]) > 1e-6 {
		t.Errorf("sine at half period: got %v, want 0\n", vec[0])
	}
}

func TestSineSignalPhases(t *testing.T) {
	// two dims are phase-offset by half a cycle, so they are negatives
	sg := &SineSignal{DimN: 2}
	sg.Defaults()
	vec := make([]float32, 2)
	for _, tm := range []float32{0.1, 0.33, 0.8} {
		sg.Value(tm, vec)
		if mat32.Abs(vec[0]+vec[1]) > 1e-5 {
			t.Errorf("2D sine dims not antiphase at t=%v: %v, %v\n", tm, vec[0], vec[1])
		}
	}
}

func TestWhiteSignalBoundsAndHold(t *testing.T) {
	ws := &WhiteSignal{DimN: 2}
	ws.Defaults()
	rand.Seed(13)
	ws.Init()

	vec := make([]float32, 2)
	prev := make([]float32, 2)
	dt := float32(0.001)
	redraws := 0
	for stp := 0; stp < 1000; stp++ {
		tm := float32(stp) * dt
		ws.Value(tm, vec)
		for i, v := range vec {
			if v < -1 || v > 1 {
				t.Fatalf("white signal out of -1..1 at t=%v dim %d: %v\n", tm, i, v)
			}
		}
		if stp > 0 && (vec[0] != prev[0] || vec[1] != prev[1]) {
			redraws++
		}
		copy(prev, vec)
	}
	// 1 sec at a 0.1 sec interval: held constant between ~10 redraws
	if redraws < 8 || redraws > 11 {
		t.Errorf("white signal redraw count over 1 sec: got %d, want ~10\n", redraws)
	}
}

func TestNewSignal(t *testing.T) {
	for _, sh := range []SignalShapes{Const, Sine, White} {
		sg := NewSignal(sh, 3)
		if sg.Dim() != 3 {
			t.Errorf("%v: dim: got %d, want 3\n", sh, sg.Dim())
		}
	}
}

func TestFuncSignal(t *testing.T) {
	fs := &FuncSignal{DimN: 1, Fn: func(t float32, vec []float32) {
		vec[0] = 2 * t
	}}
	fs.Init()
	vec := make([]float32, 1)
	fs.Value(1.5, vec)
	CmprFloats(vec, []float32{3}, "func signal evaluates fn", t)
}
