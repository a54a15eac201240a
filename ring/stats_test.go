// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"math"
	"testing"

	"github.com/emer/etable/etensor"
)

func TestBumpStats(t *testing.T) {
	n := 100
	thetas := RingAngles(n)
	ctr := 0.4
	rates := make([]float64, n)
	for i, th := range thetas {
		r := math.Cos(2 * (th - ctr))
		if r < 0 {
			r = 0
		}
		rates[i] = r
	}
	var bs BumpStats
	bs.FromRates(rates, thetas)
	if math.Abs(bs.Ctr-ctr) > 0.05 {
		t.Errorf("bump center %v, expected %v", bs.Ctr, ctr)
	}
	if math.Abs(thetas[bs.Peak]-ctr) > 0.05 {
		t.Errorf("peak at theta %v, expected near %v", thetas[bs.Peak], ctr)
	}
	if math.Abs(bs.Act.Max-1) > 0.01 {
		t.Errorf("max rate %v, expected ~1", bs.Act.Max)
	}
	if bs.Act.Min != 0 {
		t.Errorf("min rate %v, expected 0", bs.Act.Min)
	}

	// flat profile
	for i := range rates {
		rates[i] = 0
	}
	bs.FromRates(rates, thetas)
	if bs.Peak != 0 || bs.Ctr != 0 || bs.Act.Max != 0 {
		t.Errorf("flat profile: got peak %d, ctr %v, max %v", bs.Peak, bs.Ctr, bs.Act.Max)
	}
}

func TestConverged(t *testing.T) {
	traj := etensor.NewFloat64([]int{3, 2}, nil, []string{"Time", "Neuron"})
	copy(traj.Values, []float64{0, 0, 1, 1, 1.0005, 1})
	if !Converged(traj, 1.0e-3) {
		t.Errorf("expected converged at tol 1e-3")
	}
	if Converged(traj, 1.0e-4) {
		t.Errorf("expected not converged at tol 1e-4")
	}
	one := etensor.NewFloat64([]int{1, 2}, nil, []string{"Time", "Neuron"})
	if Converged(one, 1) {
		t.Errorf("single-row trajectory cannot be converged")
	}
}
