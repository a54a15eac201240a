// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import "errors"

// ErrInvalidArg is wrapped by all errors reporting malformed arguments:
// mismatched shapes, non-positive counts or time constants, negative noise.
// Check with errors.Is.  These are reported before any computation runs, so
// a failed call never returns partial results.
var ErrInvalidArg = errors.New("ring: invalid argument")

// WtParams are the parameters of the cosine connectivity profile:
// W[i,j] = W0 + W1 * cos(2*(theta_i - theta_j)).
type WtParams struct {
	W0 float64 `def:"-1" desc:"uniform weight component -- negative values produce global inhibition across the ring"`
	W1 float64 `def:"3" desc:"cosine-tuned weight component -- excitation between neurons with similar preferred angles -- W1 large relative to the leak produces the marginal regime"`
}

func (wp *WtParams) Update() {
}

func (wp *WtParams) Defaults() {
	wp.W0 = -1
	wp.W1 = 3
}

// StimParams are the parameters of the tuned external drive:
// u[t,i] = C * (1 - Eps + Eps * cos(2*(theta_i - theta_s))).
type StimParams struct {
	C   float64 `def:"0.5" min:"0" desc:"stimulus contrast -- overall scale of the external drive"`
	Eps float64 `def:"0.1" desc:"tuning depth of the drive: 0 = fully untuned, 1 = fully modulated -- values outside [0,1] are accepted for exploring the model"`
}

func (sp *StimParams) Update() {
}

func (sp *StimParams) Defaults() {
	sp.C = 0.5
	sp.Eps = 0.1
}

// NoiseParams are the parameters of the additive Gaussian drive noise:
// sqrt(Tau/Dt) * Sigma * eta, with eta drawn i.i.d. N(0,1) per neuron per
// timestep from a private source seeded by Seed -- never the global rand
// state, so a given seed always reproduces the same noise exactly.
type NoiseParams struct {
	Sigma float64 `def:"0.1" min:"0" desc:"standard deviation of the Gaussian drive noise -- scaled by sqrt(Tau/Dt) so the integrated noise variance is invariant to the step size"`
	Seed  int64   `def:"1" desc:"seed for the private noise source"`
}

func (np *NoiseParams) Update() {
}

func (np *NoiseParams) Defaults() {
	np.Sigma = 0.1
	np.Seed = 1
}

// DynParams are the integration parameters for the leaky rectified-linear
// rate dynamics: tau * dr/dt = -r + [u + (1/N) * W @ r]+, advanced by
// explicit forward Euler with step Dt.
type DynParams struct {
	Tau float64 `def:"10" min:"0" desc:"rate time constant, in the same time units as Dt"`
	Dt  float64 `def:"1" min:"0" desc:"Euler integration step -- must be small relative to Tau (and to the recurrent gain) for stability"`
}

func (dp *DynParams) Update() {
}

func (dp *DynParams) Defaults() {
	dp.Tau = 10
	dp.Dt = 1
}
