// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ring is the overall repository for the ring-attractor network model
of orientation tuning (Ben-Yishai et al, 1995), implemented in the Go
language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* ring: the core model: cosine-tuned recurrent weight construction, tuned
external drive generation (with optional seeded Gaussian noise), and the
forward-Euler integration engine for the leaky rectified-linear rate
dynamics, along with activity-profile statistics.

* examples: these compile into runnable programs.  examples/ring runs the
network through its three connectivity regimes (feedforward-dominated,
uniform-inhibition, and marginal / recurrent-dominated) and the stimulus
rotation, deletion, and noise experiments, logging results as etable CSV
files.
*/
package ring
