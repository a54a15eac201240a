// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"math"
	"testing"
)

func TestNewNetwork(t *testing.T) {
	net := NewNetwork("test", 100)
	if net.N != 100 || len(net.Thetas) != 100 {
		t.Fatalf("expected 100 neurons, got N = %d, %d thetas", net.N, len(net.Thetas))
	}
	if net.Dyn.Tau != 10 || net.Dyn.Dt != 1 {
		t.Errorf("defaults not applied: Tau = %v, Dt = %v", net.Dyn.Tau, net.Dyn.Dt)
	}
	if net.Wts != nil {
		t.Errorf("weights should be nil before Build")
	}
}

func TestRegimePresets(t *testing.T) {
	net := NewNetwork("regimes", 10)
	if err := net.FeedForward(); err != nil {
		t.Fatal(err)
	}
	for i, v := range net.Wts.Values {
		if v != 0 {
			t.Fatalf("feedforward weights[%d] = %v, expected 0", i, v)
		}
	}
	if err := net.UniformInhib(); err != nil {
		t.Fatal(err)
	}
	for i, v := range net.Wts.Values {
		if v != -1 {
			t.Fatalf("uniform-inhibition weights[%d] = %v, expected -1", i, v)
		}
	}
	if err := net.Marginal(); err != nil {
		t.Fatal(err)
	}
	diag := net.Wts.Values[0]
	if math.Abs(diag-2) > difTol {
		t.Errorf("marginal diagonal weight %v, expected W0+W1 = 2", diag)
	}
}

// TestUniformInhibSuppression: uniform inhibition lowers the settled rates
// relative to feedforward under the same tuned drive, without sharpening
// the profile (bump width tracks the drive, no recurrent tuning).
func TestUniformInhibSuppression(t *testing.T) {
	n := 100
	nt := 500
	net := NewNetwork("suppress", n)
	net.Stim.C = 0.5
	net.Stim.Eps = 0.5
	drv, err := net.Stim.Drive(net.Thetas, 0, nt)
	if err != nil {
		t.Fatal(err)
	}
	if err = net.FeedForward(); err != nil {
		t.Fatal(err)
	}
	ff, err := net.Run(make([]float64, n), drv)
	if err != nil {
		t.Fatal(err)
	}
	if err = net.UniformInhib(); err != nil {
		t.Fatal(err)
	}
	ui, err := net.Run(make([]float64, n), drv)
	if err != nil {
		t.Fatal(err)
	}
	var ffs, uis BumpStats
	ffs.FromRates(TrajRates(ff, nt), net.Thetas)
	uis.FromRates(TrajRates(ui, nt), net.Thetas)
	if uis.Act.Max >= ffs.Act.Max {
		t.Errorf("uniform inhibition max %v not below feedforward max %v", uis.Act.Max, ffs.Act.Max)
	}
	if uis.Act.Max <= 0 {
		t.Errorf("uniform inhibition fully silenced the network")
	}
}
