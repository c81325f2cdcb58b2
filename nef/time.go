// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

// nef.Time contains the timing state and parameter information for
// running a model.
type Time struct {

	// accumulated amount of time the model has been running,
	// in simulation-time (not real world time), in seconds.
	Time float32

	// step counter: number of timesteps taken since last Reset.
	Step int

	// total step count, continuing across multiple Run calls.
	StepTot int

	// amount of simulated time per step, in seconds.
	TimePerStep float32 `def:"0.001"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerStep = 0.001
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	tm.StepTot = 0
	if tm.TimePerStep == 0 {
		tm.Defaults()
	}
}

// StepInc increments the counters by one timestep.  Time is computed
// from the total step count rather than accumulated, so it does not
// drift from rounding error over long runs.
func (tm *Time) StepInc() {
	tm.Step++
	tm.StepTot++
	tm.Time = float32(tm.StepTot) * tm.TimePerStep
}
