// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

import (
	"fmt"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
	"github.com/goki/ki/kit"
)

// SigEnv wraps an input signal and its target into a standard
// environment, rendering "Input" and "Target" states each step.
// The target is either an independent Target signal, or TargetFn
// computed from the input sample at the same timestamp.
// This lets signal sources plug into generic env-driven sim loops,
// and gives counters for stats / logging.
type SigEnv struct {
	Nm  string `desc:"name of this environment"`
	Dsc string `desc:"description of this environment"`

	Input    Signal                  `desc:"input signal source"`
	Target   Signal                  `desc:"optional independent target signal -- either this or TargetFn must be set"`
	TargetFn func(in, tgt []float32) `view:"-" desc:"target as a function of the current input sample -- used if Target is nil"`

	TimePerStep float32 `def:"0.001" desc:"simulated seconds per step"`

	InState  *etensor.Float32 `desc:"current rendered input state"`
	TrgState *etensor.Float32 `desc:"current rendered target state"`

	Run   env.Ctr `view:"inline" desc:"current run of model as provided during Init"`
	Epoch env.Ctr `view:"inline" desc:"increments over arbitrary fixed number of steps, for stats-tracking"`
	Trial env.Ctr `view:"inline" desc:"step counter within epoch"`
}

var KiT_SigEnv = kit.Types.AddType(&SigEnv{}, nil)

func (ev *SigEnv) Name() string { return ev.Nm }
func (ev *SigEnv) Desc() string { return ev.Dsc }

// Config configures the environment for signals of the given dimensions,
// with ntrls steps per epoch.
func (ev *SigEnv) Config(outDim, ntrls int) {
	if ev.TimePerStep == 0 {
		ev.TimePerStep = 0.001
	}
	dim := ev.Input.Dim()
	ev.InState = etensor.NewFloat32([]int{dim}, nil, []string{"Dim"})
	ev.TrgState = etensor.NewFloat32([]int{outDim}, nil, []string{"Dim"})
	ev.Trial.Max = ntrls
}

func (ev *SigEnv) Validate() error {
	if ev.Input == nil {
		return fmt.Errorf("SigEnv %s: Input signal not set", ev.Nm)
	}
	if ev.Target == nil && ev.TargetFn == nil {
		return fmt.Errorf("SigEnv %s: neither Target signal nor TargetFn set", ev.Nm)
	}
	if ev.InState == nil {
		return fmt.Errorf("SigEnv %s: not configured -- call Config", ev.Nm)
	}
	return nil
}

func (ev *SigEnv) State(element string) etensor.Tensor {
	switch element {
	case "Input":
		return ev.InState
	case "Target":
		return ev.TrgState
	}
	return nil
}

// String returns the current state as a string
func (ev *SigEnv) String() string {
	return fmt.Sprintf("Trl_%d_T_%g", ev.Trial.Cur, ev.CurTime())
}

// CurTime returns the simulated time of the current state
func (ev *SigEnv) CurTime() float32 {
	return float32(ev.Trial.Max*ev.Epoch.Cur+ev.Trial.Cur) * ev.TimePerStep
}

// Init is called to restart environment
func (ev *SigEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Epoch.Scale = env.Epoch
	ev.Trial.Scale = env.Trial
	ev.Run.Init()
	ev.Epoch.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Trial.Cur = -1 // init state -- key so that first Step() = 0
	ev.Input.Init()
	if ev.Target != nil {
		ev.Target.Init()
	}
}

// Step renders the input and target for the next timestep.
func (ev *SigEnv) Step() bool {
	ev.Epoch.Same() // good idea to just reset all non-inner-most counters at start
	if ev.Trial.Incr() {
		ev.Epoch.Incr()
	}
	t := ev.CurTime()
	in := ev.InState.Values
	ev.Input.Value(t, in)
	if ev.Target != nil {
		ev.Target.Value(t, ev.TrgState.Values)
	} else {
		ev.TargetFn(in, ev.TrgState.Values)
	}
	return true
}

func (ev *SigEnv) Action(element string, input etensor.Tensor) {
	// no actions -- signals are read-only
}

func (ev *SigEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Epoch:
		return ev.Epoch.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*SigEnv)(nil)
