// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"fmt"

	"github.com/emer/etable/etensor"
)

// Step computes one forward-Euler update from rates r into next:
// next = r + Dt/Tau * (-r + [u + (1/N) * W @ r]+).
// r, next, and u must all have length N matching wts (N x N), and r and
// next must not alias.  No validation is done here -- this is the hot loop,
// called once per timestep by Simulate; use Simulate for checked access.
func (dp *DynParams) Step(r, next, u []float64, wts *etensor.Float64) {
	n := len(r)
	dtt := dp.Dt / dp.Tau
	inv := 1 / float64(n)
	for i := range next {
		row := wts.Values[i*n : (i+1)*n]
		wr := 0.0
		for j, rj := range r {
			wr += row[j] * rj
		}
		h := u[i] + inv*wr
		if h < 0 {
			h = 0
		}
		next[i] = r[i] + dtt*(h-r[i])
	}
}

// Simulate integrates the rate dynamics tau * dr/dt = -r + [u + (1/N)*W@r]+
// forward from rInit, driven by one row of the drive tensor per timestep,
// and returns the full (Nt+1) x N trajectory: row 0 is a copy of rInit
// (never aliased), rows 1..Nt are the integrated states.
//
// All arithmetic is in float64 and fully deterministic: identical inputs
// produce a bit-for-bit identical trajectory.  The recurrence is not
// checked for finiteness mid-run -- parameter choices that make explicit
// Euler unstable (Dt too large relative to Tau or to the recurrent gain)
// propagate Inf/NaN into the trajectory for the caller to detect.
func (dp *DynParams) Simulate(rInit []float64, wts, drive *etensor.Float64) (*etensor.Float64, error) {
	n := len(rInit)
	if n == 0 {
		return nil, fmt.Errorf("%w: Simulate: rInit is empty", ErrInvalidArg)
	}
	if dp.Tau <= 0 || dp.Dt <= 0 {
		return nil, fmt.Errorf("%w: Simulate: Tau = %g and Dt = %g must be positive", ErrInvalidArg, dp.Tau, dp.Dt)
	}
	if wts == nil || wts.NumDims() != 2 || wts.Dim(0) != n || wts.Dim(1) != n {
		return nil, fmt.Errorf("%w: Simulate: weights must be %d x %d to match rInit", ErrInvalidArg, n, n)
	}
	if drive == nil || drive.NumDims() != 2 || drive.Dim(1) != n {
		return nil, fmt.Errorf("%w: Simulate: drive must be Nt x %d to match rInit", ErrInvalidArg, n)
	}
	nt := drive.Dim(0)
	if nt == 0 {
		return nil, fmt.Errorf("%w: Simulate: drive has no timesteps", ErrInvalidArg)
	}
	traj := etensor.NewFloat64([]int{nt + 1, n}, nil, []string{"Time", "Neuron"})
	copy(traj.Values[:n], rInit)
	for t := 0; t < nt; t++ {
		r := traj.Values[t*n : (t+1)*n]
		next := traj.Values[(t+1)*n : (t+2)*n]
		u := drive.Values[t*n : (t+1)*n]
		dp.Step(r, next, u, wts)
	}
	return traj, nil
}

// TrajRates returns the rate vector at timestep t of a trajectory (or any
// time x neuron tensor), as a direct slice of the underlying values --
// read-only by convention, no copy.
func TrajRates(traj *etensor.Float64, t int) []float64 {
	n := traj.Dim(1)
	return traj.Values[t*n : (t+1)*n]
}
