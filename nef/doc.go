// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nef provides the core simulation objects for a minimal NEF-style
model with online PES learning: Signal sources, a rate-coded Ensemble,
a learned linear Readout, lowpass synaptic filtering, Probe recording,
and the Model that steps everything in fixed discrete timesteps.

A Model run is strictly sequential: each timestep samples the input,
computes the ensemble activity and readout estimate, computes the error
(estimate - target), filters and gates the error, applies one PES weight
update, and records probes -- in that order, with no concurrency and no
step starting before the previous step's weight update has committed.
*/
package nef
