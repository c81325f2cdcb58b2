// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

import (
	"github.com/emer/emergent/erand"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// Signal produces a time-varying multi-dimensional input vector, given
// the current simulated time.  Implementations must be deterministic
// given the global random seed, so that runs are reproducible.
type Signal interface {
	// Dim returns the fixed dimension of the signal
	Dim() int

	// Init resets any internal state at the start of a run
	Init()

	// Value writes the signal value at simulated time t (sec) into vec,
	// which has Dim() elements
	Value(t float32, vec []float32)
}

//////////////////////////////////////////////////////////////////////////////////////
//  SignalShapes

// SignalShapes are the standard built-in signal source shapes,
// for config / command-line selection of a source.
type SignalShapes int

//go:generate stringer -type=SignalShapes

var KiT_SignalShapes = kit.Enums.AddEnum(SignalShapesN, kit.NotBitFlag, nil)

func (ev SignalShapes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SignalShapes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Const is a fixed constant vector
	Const SignalShapes = iota

	// Sine is a per-dimension sinusoid
	Sine

	// White is piecewise-constant noise, resampled at a fixed interval
	White

	SignalShapesN
)

// NewSignal returns a new signal of the given shape and dimension,
// with default parameters.
func NewSignal(shape SignalShapes, dim int) Signal {
	switch shape {
	case Sine:
		sg := &SineSignal{DimN: dim}
		sg.Defaults()
		return sg
	case White:
		sg := &WhiteSignal{DimN: dim}
		sg.Defaults()
		return sg
	default:
		return &ConstSignal{Vals: make([]float32, dim)}
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  ConstSignal

// ConstSignal produces a fixed constant vector at all times.
type ConstSignal struct {
	Vals []float32 `desc:"the constant values"`
}

func (cs *ConstSignal) Dim() int { return len(cs.Vals) }

func (cs *ConstSignal) Init() {
}

func (cs *ConstSignal) Value(t float32, vec []float32) {
	copy(vec, cs.Vals)
}

//////////////////////////////////////////////////////////////////////////////////////
//  SineSignal

// SineSignal produces a sinusoid per dimension, with evenly spaced
// phase offsets across dimensions so they are not all identical.
type SineSignal struct {
	DimN  int     `desc:"dimension of the signal"`
	Freq  float32 `def:"1" desc:"frequency in Hz"`
	Amp   float32 `def:"1" desc:"amplitude"`
	Phase float32 `desc:"base phase offset in radians"`
}

func (ss *SineSignal) Defaults() {
	ss.Freq = 1
	ss.Amp = 1
}

func (ss *SineSignal) Dim() int { return ss.DimN }

func (ss *SineSignal) Init() {
}

func (ss *SineSignal) Value(t float32, vec []float32) {
	for i := range vec {
		ph := ss.Phase + 2*mat32.Pi*float32(i)/float32(ss.DimN)
		vec[i] = ss.Amp * mat32.Sin(2*mat32.Pi*ss.Freq*t+ph)
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  WhiteSignal

// WhiteSignal produces bounded piecewise-constant noise: a new random
// vector is drawn from Rnd every Interval seconds of simulated time and
// held constant in between.  Draws come from the global random source,
// so a fixed seed produces an identical signal across runs.
type WhiteSignal struct {
	DimN     int             `desc:"dimension of the signal"`
	Interval float32         `def:"0.1" min:"0" desc:"seconds between redraws of the random value"`
	Rnd      erand.RndParams `view:"inline" desc:"distribution of sampled values -- default is uniform over -1..1 (Mean 0, Var 1)"`
	Cur      []float32       `view:"-" desc:"current held value"`
	NextT    float32         `view:"-" desc:"simulated time of the next redraw"`
}

func (ws *WhiteSignal) Defaults() {
	ws.Interval = 0.1
	ws.Rnd.Dist = erand.Uniform
	ws.Rnd.Mean = 0
	ws.Rnd.Var = 1
}

func (ws *WhiteSignal) Dim() int { return ws.DimN }

func (ws *WhiteSignal) Init() {
	if len(ws.Cur) != ws.DimN {
		ws.Cur = make([]float32, ws.DimN)
	}
	ws.NextT = 0 // forces a draw at first Value call
}

func (ws *WhiteSignal) Value(t float32, vec []float32) {
	if t >= ws.NextT {
		for i := range ws.Cur {
			ws.Cur[i] = float32(ws.Rnd.Gen(-1))
		}
		ws.NextT = t + ws.Interval
	}
	copy(vec, ws.Cur)
}

//////////////////////////////////////////////////////////////////////////////////////
//  FuncSignal

// FuncSignal wraps an arbitrary function of simulated time as a signal.
type FuncSignal struct {
	DimN int                            `desc:"dimension of the signal"`
	Fn   func(t float32, vec []float32) `view:"-" desc:"function writing the value at time t into vec"`
}

func (fs *FuncSignal) Dim() int { return fs.DimN }

func (fs *FuncSignal) Init() {
}

func (fs *FuncSignal) Value(t float32, vec []float32) {
	fs.Fn(t, vec)
}
