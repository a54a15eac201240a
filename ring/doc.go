// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ring implements the ring-attractor network model of orientation
tuning (Ben-Yishai et al, 1995): a 1-D population of rate-coded neurons
indexed by preferred orientation on a periodic domain, coupled by
cosine-tuned recurrent weights, and driven by a tuned external input.

The rate dynamics are leaky rectified-linear:

	tau * dr/dt = -r + [u + (1/N) * W @ r]+

where [x]+ = max(x, 0), integrated by explicit forward Euler with step Dt.

Depending on the uniform (W0) and tuned (W1) weight components, the network
operates in qualitatively different regimes: feedforward-dominated
(W0 = W1 = 0, rates track the drive), uniform-inhibition (W0 = -1, W1 = 0,
globally suppressed but no recurrent sharpening), and marginal /
recurrent-dominated (W0 = -1, W1 = 3), where a nearly untuned drive is
amplified into a sharp activity bump that persists after the stimulus is
removed.

Weights, drives, and trajectories are all etensor.Float64 tensors, computed
entirely in 64-bit floats.  The integration engine has no hidden state and
no hidden randomness: noise lives only in the drive, generated from an
explicit caller-supplied seed, so every simulation is exactly reproducible.
*/
package ring
