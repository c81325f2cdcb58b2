// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

import (
	"strconv"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// LogPrec is precision for saving float values in probe logs
const LogPrec = 6

// nef.Probe is a read-only sink on a signal: each timestep it reads the
// current value through Src and appends a (Time, Value) row to Data.
// An optional lowpass Tau filters what gets recorded; the filter state
// is probe-local, so attaching a probe never alters the probed signal.
type Probe struct {
	Nm  string           `desc:"name of the probe"`
	Src func() []float32 `view:"-" desc:"accessor for the probed signal values -- read only"`
	Tau float32          `min:"0" desc:"optional lowpass filter time constant in seconds for recorded values -- 0 = record raw"`

	Flt  Lowpass       `view:"-" desc:"probe-local filter state"`
	Data *etable.Table `view:"no-inline" desc:"append-only record of (Time, Value) rows"`

	dim int
}

// NewProbe returns a new probe on the given signal accessor, recording
// dim values per row.
func NewProbe(name string, dim int, src func() []float32) *Probe {
	pb := &Probe{Nm: name, Src: src, dim: dim}
	pb.Config()
	return pb
}

func (pb *Probe) Name() string { return pb.Nm }

// Config configures the record table schema and filter state.
func (pb *Probe) Config() {
	pb.Data = &etable.Table{}
	pb.Data.SetMetaData("name", pb.Nm)
	pb.Data.SetMetaData("desc", "Probe record of (time, value) per timestep")
	pb.Data.SetMetaData("read-only", "true")
	pb.Data.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Value", Type: etensor.FLOAT64, CellShape: []int{pb.dim}, DimNames: []string{"Dim"}},
	}
	pb.Data.SetFromSchema(sch, 0)
	pb.Flt.Tau = pb.Tau
	pb.Flt.Init(pb.dim)
}

// Reset clears all recorded rows and the filter state.
func (pb *Probe) Reset() {
	pb.Data.SetNumRows(0)
	pb.Flt.Tau = pb.Tau
	pb.Flt.Init(pb.dim)
}

// Record appends one row at simulated time t, filtering over timestep
// dt if Tau > 0.
func (pb *Probe) Record(t, dt float32) {
	vals := pb.Src()
	if pb.Tau > 0 {
		vals = pb.Flt.Step(vals, dt)
	}
	row := pb.Data.Rows
	pb.Data.SetNumRows(row + 1)
	pb.Data.SetCellFloat("Time", row, float64(t))
	for i, v := range vals {
		pb.Data.SetCellTensorFloat1D("Value", row, i, float64(v))
	}
}
