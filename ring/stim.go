// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/emer/etable/etensor"
)

// Drive constructs the Nt x N external drive tensor for a stimulus held
// constant at angle thetaS:
// u[t,i] = C * (1 - Eps + Eps * cos(2*(theta_i - thetaS))).
func (sp *StimParams) Drive(thetas []float64, thetaS float64, nt int) (*etensor.Float64, error) {
	n := len(thetas)
	if n == 0 {
		return nil, fmt.Errorf("%w: StimParams.Drive: thetas is empty", ErrInvalidArg)
	}
	if nt <= 0 {
		return nil, fmt.Errorf("%w: StimParams.Drive: nt = %d must be positive", ErrInvalidArg, nt)
	}
	drv := etensor.NewFloat64([]int{nt, n}, nil, []string{"Time", "Neuron"})
	row := drv.Values[:n]
	for i, th := range thetas {
		row[i] = sp.C * (1 - sp.Eps + sp.Eps*math.Cos(2*(th-thetaS)))
	}
	for t := 1; t < nt; t++ {
		copy(drv.Values[t*n:(t+1)*n], row)
	}
	return drv, nil
}

// DriveSeq constructs the external drive for a time-varying stimulus, one
// angle per timestep (e.g., for rotation experiments): Nt = len(thetaS),
// same formula as Drive applied per row.
func (sp *StimParams) DriveSeq(thetas, thetaS []float64) (*etensor.Float64, error) {
	n := len(thetas)
	if n == 0 {
		return nil, fmt.Errorf("%w: StimParams.DriveSeq: thetas is empty", ErrInvalidArg)
	}
	nt := len(thetaS)
	if nt == 0 {
		return nil, fmt.Errorf("%w: StimParams.DriveSeq: thetaS is empty", ErrInvalidArg)
	}
	drv := etensor.NewFloat64([]int{nt, n}, nil, []string{"Time", "Neuron"})
	for t, ths := range thetaS {
		row := drv.Values[t*n : (t+1)*n]
		for i, th := range thetas {
			row[i] = sp.C * (1 - sp.Eps + sp.Eps*math.Cos(2*(th-ths)))
		}
	}
	return drv, nil
}

// Uniform constructs the untuned drive u[t,i] = C used to model stimulus
// deletion: the contrast remains but all tuning is removed (equivalent to
// Eps = 0).
func (sp *StimParams) Uniform(n, nt int) (*etensor.Float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: StimParams.Uniform: n = %d must be positive", ErrInvalidArg, n)
	}
	if nt <= 0 {
		return nil, fmt.Errorf("%w: StimParams.Uniform: nt = %d must be positive", ErrInvalidArg, nt)
	}
	drv := etensor.NewFloat64([]int{nt, n}, nil, []string{"Time", "Neuron"})
	for i := range drv.Values {
		drv.Values[i] = sp.C
	}
	return drv, nil
}

// AddTo adds sqrt(tau/dt) * Sigma * eta noise to every element of the given
// drive tensor, with eta drawn i.i.d. N(0,1) from a source seeded by Seed.
// The drive is modified in place.
func (np *NoiseParams) AddTo(drive *etensor.Float64, tau, dt float64) error {
	if np.Sigma < 0 {
		return fmt.Errorf("%w: NoiseParams.AddTo: Sigma = %g must be non-negative", ErrInvalidArg, np.Sigma)
	}
	if tau <= 0 || dt <= 0 {
		return fmt.Errorf("%w: NoiseParams.AddTo: tau = %g and dt = %g must be positive", ErrInvalidArg, tau, dt)
	}
	if drive == nil || drive.NumDims() != 2 {
		return fmt.Errorf("%w: NoiseParams.AddTo: drive must be a 2D (time x neuron) tensor", ErrInvalidArg)
	}
	sc := math.Sqrt(tau/dt) * np.Sigma
	rnd := rand.New(rand.NewSource(np.Seed))
	for i := range drive.Values {
		drive.Values[i] += sc * rnd.NormFloat64()
	}
	return nil
}

// NoisyDrive constructs the drive for a constant stimulus as in Drive, with
// noise per np added: u[t,i] = C*(1-Eps+Eps*cos(2*(theta_i-thetaS))) +
// sqrt(tau/dt)*Sigma*eta[t,i].
func (sp *StimParams) NoisyDrive(thetas []float64, thetaS float64, nt int, np *NoiseParams, tau, dt float64) (*etensor.Float64, error) {
	drv, err := sp.Drive(thetas, thetaS, nt)
	if err != nil {
		return nil, err
	}
	if err = np.AddTo(drv, tau, dt); err != nil {
		return nil, err
	}
	return drv, nil
}
