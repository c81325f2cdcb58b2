// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nef is the overall repository for a minimal Neural Engineering
Framework (NEF) style simulator implemented in the Go language (golang),
centered on the PES online learning rule.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* nef: the core simulation objects -- rate-coded Ensemble representation
layers, a learned linear Readout, Signal sources, lowpass synaptic
filtering, Probe recording, and the Model that steps everything forward
in fixed discrete timesteps.

* pes: the PES (prescribed error sensitivity) learning rule, which adapts
the readout decoding weights online, every timestep, from an externally
computed error signal.

* examples: these compile into runnable programs.  examples/learnmult
learns the product function f(x) = x0 * x1 online from a noise input,
and is the place to start for a standard template of a model.
*/
package nef
