// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"math"

	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
)

// BumpStats summarizes one rate vector (typically a row of a trajectory) as
// an activity profile over the ring: where the bump is and how big it is.
type BumpStats struct {
	Peak int        `desc:"index of the maximum rate"`
	Ctr  float64    `desc:"bump center: circular mean of the profile over the doubled angle, in (-pi/2, pi/2]"`
	Act  minmax.F64 `desc:"min / max of the rates"`
	Avg  float64    `desc:"mean rate across the ring"`
}

// FromRates computes the stats for the given rates and matching preferred
// angles.  A flat (e.g., all-zero) profile yields Peak = 0 and Ctr = 0.
func (bs *BumpStats) FromRates(rates, thetas []float64) {
	bs.Peak = 0
	bs.Act.Min = rates[0]
	bs.Act.Max = rates[0]
	sum := 0.0
	sc := 0.0
	ss := 0.0
	for i, r := range rates {
		if r > bs.Act.Max {
			bs.Act.Max = r
			bs.Peak = i
		}
		if r < bs.Act.Min {
			bs.Act.Min = r
		}
		sum += r
		sc += r * math.Cos(2 * thetas[i])
		ss += r * math.Sin(2 * thetas[i])
	}
	bs.Avg = sum / float64(len(rates))
	bs.Ctr = 0.5 * math.Atan2(ss, sc)
}

// Converged reports whether the last two states of the trajectory differ by
// no more than tol in every element -- the usual settling check, applied by
// callers after Simulate (the engine itself never decides convergence).
func Converged(traj *etensor.Float64, tol float64) bool {
	nt := traj.Dim(0)
	if nt < 2 {
		return false
	}
	last := TrajRates(traj, nt-1)
	prev := TrajRates(traj, nt-2)
	for i, r := range last {
		if math.Abs(r-prev[i]) > tol {
			return false
		}
	}
	return true
}
