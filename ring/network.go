// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"fmt"

	"github.com/emer/etable/etensor"
)

// Network binds a ring of N neurons with uniformly-spaced preferred angles
// to its connectivity, stimulus, noise, and integration parameters, and
// holds the built recurrent weight matrix.  It has no state that evolves
// across calls: each Run is an independent simulation, and independent
// Networks (or concurrent Runs on one Network) share nothing mutable.
type Network struct {
	Nm     string           `desc:"name of the network -- used in logs"`
	N      int              `desc:"number of neurons on the ring"`
	Thetas []float64        `view:"-" desc:"preferred angles, uniformly spaced over the open interval (-pi/2, pi/2)"`
	Wt     WtParams         `view:"inline" desc:"cosine connectivity parameters"`
	Stim   StimParams       `view:"inline" desc:"external drive parameters"`
	Noise  NoiseParams      `view:"inline" desc:"additive drive noise parameters"`
	Dyn    DynParams        `view:"inline" desc:"integration parameters"`
	Wts    *etensor.Float64 `view:"no-inline" desc:"built N x N recurrent weights -- nil until Build is called"`
}

// NewNetwork returns a new ring network of n neurons (n must be >= 1) with
// default parameters.  Call Build (or one of the regime presets) before Run.
func NewNetwork(name string, n int) *Network {
	nt := &Network{Nm: name, N: n, Thetas: RingAngles(n)}
	nt.Defaults()
	return nt
}

func (nt *Network) Defaults() {
	nt.Wt.Defaults()
	nt.Stim.Defaults()
	nt.Noise.Defaults()
	nt.Dyn.Defaults()
}

// Build constructs the recurrent weight matrix from the current WtParams.
// Must be called again after changing Wt for the change to take effect.
func (nt *Network) Build() error {
	wts, err := nt.Wt.Build(nt.Thetas)
	if err != nil {
		return err
	}
	nt.Wts = wts
	return nil
}

// FeedForward sets the feedforward-dominated regime (W0 = 0, W1 = 0: no
// recurrence, rates track the drive) and rebuilds the weights.
func (nt *Network) FeedForward() error {
	nt.Wt.W0 = 0
	nt.Wt.W1 = 0
	return nt.Build()
}

// UniformInhib sets the uniform-inhibition regime (W0 = -1, W1 = 0: global
// untuned suppression, no recurrent sharpening) and rebuilds the weights.
func (nt *Network) UniformInhib() error {
	nt.Wt.W0 = -1
	nt.Wt.W1 = 0
	return nt.Build()
}

// Marginal sets the marginal / recurrent-dominated regime (W0 = -1, W1 = 3:
// weak drive tuning is amplified into a persistent activity bump) and
// rebuilds the weights.
func (nt *Network) Marginal() error {
	nt.Wt.W0 = -1
	nt.Wt.W1 = 3
	return nt.Build()
}

// Run integrates the network forward from rInit under the given drive,
// using the current DynParams, and returns the (Nt+1) x N trajectory.
// See DynParams.Simulate for the full contract.
func (nt *Network) Run(rInit []float64, drive *etensor.Float64) (*etensor.Float64, error) {
	if nt.Wts == nil {
		return nil, fmt.Errorf("%w: Network.Run: weights not built -- call Build first", ErrInvalidArg)
	}
	return nt.Dyn.Simulate(rInit, nt.Wts, drive)
}
