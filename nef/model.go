// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

import (
	"fmt"
	"math/rand"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// nef.Model owns one complete simulation: an input source, an ensemble
// representing it, a readout decoding an estimate, the error pathway
// feeding the PES rule, and any probes.  It advances everything in
// fixed discrete timesteps, strictly sequentially -- each step the
// order is: sample input, compute activity and estimate, compute error,
// filter, gate + learn, record probes.  There is no concurrency within
// a run; independent Models can run side by side for sweeps, each
// owning all of its state.
type Model struct {
	Nm string `desc:"name of the model"`

	Input    Signal                  `desc:"input signal source -- used if Env is nil"`
	Target   Signal                  `desc:"optional independent target signal"`
	TargetFn func(in, tgt []float32) `view:"-" desc:"target as a function of the input sample at the same timestamp -- used if Target is nil"`
	Env      env.Env                 `view:"-" desc:"optional environment source exposing Input and Target states -- overrides Input / Target / TargetFn"`

	Ens  *Ensemble  `desc:"the representation layer"`
	Out  *Readout   `desc:"the learned linear readout"`
	Gate GateParams `view:"inline" desc:"time-gated gain on the error signal -- silencing the error freezes the weights"`
	ESyn Lowpass    `view:"inline" desc:"lowpass filtering on the error pathway into the learning rule -- Tau 0 = raw error"`

	Time    Time     `view:"inline" desc:"timing state and parameters"`
	RndSeed int64    `desc:"random seed for this run -- fixed seed gives bit-identical trajectories"`
	Probes  []*Probe `desc:"attached probes, recorded at the end of each step"`

	// scratch vectors, sized at Build
	in   []float32
	tgt  []float32
	errv []float32
	gerr []float32

	built bool
}

var KiT_Model = kit.Types.AddType(&Model{}, nil)

// NewModel returns a new model with an ensemble of n units representing
// an inDim-dimensional input and a readout decoding outDim values,
// all with default parameters.  Set an input source and a target
// (signal or function), then Build, Init, Run.
func NewModel(name string, n, inDim, outDim int) *Model {
	md := &Model{Nm: name}
	md.Ens = NewEnsemble("Ens", n, inDim)
	md.Out = NewReadout("Out", n, outDim)
	md.Defaults()
	return md
}

func (md *Model) Name() string { return md.Nm }

func (md *Model) Defaults() {
	md.Gate.Defaults()
	md.ESyn.Tau = 0 // raw error by default -- set for filtered learning
	md.Time.Defaults()
	md.RndSeed = 1
}

// Build validates the configuration and allocates all state.
// Must be called (once) before Init / Run.
func (md *Model) Build() error {
	if md.Env == nil {
		if md.Input == nil {
			return fmt.Errorf("Model %s: no Input signal or Env set", md.Nm)
		}
		if md.Target == nil && md.TargetFn == nil {
			return fmt.Errorf("Model %s: neither Target signal nor TargetFn set", md.Nm)
		}
		if md.Input.Dim() != md.Ens.DimN {
			return fmt.Errorf("Model %s: Input dim %d != Ensemble dim %d", md.Nm, md.Input.Dim(), md.Ens.DimN)
		}
		if md.Target != nil && md.Target.Dim() != md.Out.OutDim {
			return fmt.Errorf("Model %s: Target dim %d != Readout OutDim %d", md.Nm, md.Target.Dim(), md.Out.OutDim)
		}
	}
	if md.Ens.NUnits != md.Out.NUnits {
		return fmt.Errorf("Model %s: Ensemble NUnits %d != Readout NUnits %d", md.Nm, md.Ens.NUnits, md.Out.NUnits)
	}
	if err := md.Ens.Build(); err != nil {
		return err
	}
	if err := md.Out.Build(); err != nil {
		return err
	}
	md.in = make([]float32, md.Ens.DimN)
	md.tgt = make([]float32, md.Out.OutDim)
	md.errv = make([]float32, md.Out.OutDim)
	md.gerr = make([]float32, md.Out.OutDim)
	md.ESyn.Init(md.Out.OutDim)
	md.built = true
	return nil
}

// Init restarts the model for a new run: seeds the random source,
// resets time, resamples the ensemble tuning curves, zeroes the
// readout weights and all filter state, and resets probes.
func (md *Model) Init() {
	rand.Seed(md.RndSeed)
	md.Time.Reset()
	md.Ens.Init()
	md.Out.InitWts()
	md.ESyn.Zero()
	if md.Env != nil {
		md.Env.Init(0)
	} else {
		md.Input.Init()
		if md.Target != nil {
			md.Target.Init()
		}
	}
	for _, pb := range md.Probes {
		pb.Reset()
	}
}

// AddProbe attaches a probe on the given signal accessor, returning it.
// Probes are read-only: recording never alters the probed signal.
func (md *Model) AddProbe(name string, dim int, src func() []float32) *Probe {
	pb := NewProbe(name, dim, src)
	md.Probes = append(md.Probes, pb)
	return pb
}

// ProbeEst attaches a probe on the readout estimate.
func (md *Model) ProbeEst(tau float32) *Probe {
	pb := md.AddProbe("Est", md.Out.OutDim, func() []float32 { return md.Out.Est })
	pb.Tau = tau
	pb.Reset()
	return pb
}

// ProbeErr attaches a probe on the raw (pre-gate) error signal.
func (md *Model) ProbeErr(tau float32) *Probe {
	pb := md.AddProbe("Err", md.Out.OutDim, func() []float32 { return md.errv })
	pb.Tau = tau
	pb.Reset()
	return pb
}

// sample fills md.in and md.tgt for the current timestep, from the Env
// or the configured signals.  Input and target are always sampled at
// the same simulated timestamp.
func (md *Model) sample() error {
	if md.Env != nil {
		md.Env.Step()
		ist := md.Env.State("Input")
		tst := md.Env.State("Target")
		if ist == nil || tst == nil {
			return fmt.Errorf("Model %s: Env missing Input / Target state", md.Nm)
		}
		copy(md.in, ist.(*etensor.Float32).Values)
		copy(md.tgt, tst.(*etensor.Float32).Values)
		return nil
	}
	t := md.Time.Time
	md.Input.Value(t, md.in)
	if md.Target != nil {
		md.Target.Value(t, md.tgt)
	} else {
		md.TargetFn(md.in, md.tgt)
	}
	return nil
}

// Step advances the model by one timestep.  A non-nil error means the
// step aborted with the weights unchanged by it -- the caller should
// stop the run rather than retry, as a learning update is not safe to
// re-apply.
func (md *Model) Step() error {
	if !md.built {
		return fmt.Errorf("Model %s: not built -- call Build first", md.Nm)
	}
	dt := md.Time.TimePerStep
	if err := md.sample(); err != nil {
		return err
	}
	if err := md.Ens.ActFmInput(md.in); err != nil {
		return err
	}
	if err := md.Out.EstFmAct(md.Ens.Acts); err != nil {
		return err
	}
	for i := range md.errv {
		md.errv[i] = md.Out.Est[i] - md.tgt[i]
	}
	// gate into a scratch copy -- the filter state must not see the gate
	copy(md.gerr, md.ESyn.Step(md.errv, dt))
	md.Gate.Apply(md.Time.Time, md.gerr)
	if err := md.Out.LearnFmErr(md.gerr, md.Ens.Acts, dt); err != nil {
		return err
	}
	for _, pb := range md.Probes {
		pb.Record(md.Time.Time, dt)
	}
	md.Time.StepInc()
	return nil
}

// RunSteps advances the model by n timesteps, stopping at the first
// step error.
func (md *Model) RunSteps(n int) error {
	for i := 0; i < n; i++ {
		if err := md.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run advances the model by the given duration of simulated seconds.
func (md *Model) Run(secs float32) error {
	n := int(mat32.Round(secs / md.Time.TimePerStep))
	return md.RunSteps(n)
}

// SizeReport returns a string report of the memory used by the model
// state: units, weights, and probe records.
func (md *Model) SizeReport() string {
	nu := md.Ens.NUnits
	nw := len(md.Out.Wts.Values)
	umem := nu * (md.Ens.DimN + 3) * 4 // encoders, gain, bias, act
	wmem := nw * 2 * 4                 // wts + dwt scratch
	pmem := 0
	for _, pb := range md.Probes {
		pmem += pb.Data.Rows * (1 + md.Out.OutDim) * 8
	}
	return fmt.Sprintf("%14s:\t Units: %d \t UnitMem: %v \t Wts: %d \t WtMem: %v \t ProbeMem: %v\n",
		md.Nm, nu, (datasize.ByteSize)(umem).HumanReadable(), nw,
		(datasize.ByteSize)(wmem).HumanReadable(), (datasize.ByteSize)(pmem).HumanReadable())
}
