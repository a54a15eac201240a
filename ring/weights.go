// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"fmt"
	"math"

	"github.com/emer/etable/etensor"
)

// Build constructs the N x N recurrent weight matrix over the given
// preferred angles: W[i,j] = W0 + W1 * cos(2*(theta_i - theta_j)).
// The matrix is exactly symmetric (cosine is even) and is filled once --
// it is shared read-only by the integration engine across all timesteps.
func (wp *WtParams) Build(thetas []float64) (*etensor.Float64, error) {
	n := len(thetas)
	if n == 0 {
		return nil, fmt.Errorf("%w: WtParams.Build: thetas is empty", ErrInvalidArg)
	}
	wts := etensor.NewFloat64([]int{n, n}, nil, []string{"Recv", "Send"})
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			w := wp.W0 + wp.W1*math.Cos(2*(thetas[i]-thetas[j]))
			wts.Values[i*n+j] = w
			wts.Values[j*n+i] = w
		}
	}
	return wts, nil
}

// RingAngles returns n preferred angles uniformly spaced over the open
// interval (-pi/2, pi/2), offset by half a spacing from each endpoint.
func RingAngles(n int) []float64 {
	thetas := make([]float64, n)
	for i := range thetas {
		thetas[i] = math.Pi*(float64(i)+0.5)/float64(n) - math.Pi/2
	}
	return thetas
}
