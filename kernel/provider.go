// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel implements the two interchangeable acceleration
// kernels: an exact all-pairs summation and an approximate Barnes-Hut
// octree evaluation. Both satisfy Provider, the capability the leapfrog
// integrator is injected with.
package kernel

// Provider computes accelerations for every body given its positions and
// masses. Implementations close over their own parameters (G, softening,
// and, for the tree kernel, the root cube and opening angle) at
// construction time; the integrator depends on nothing but this method.
type Provider interface {
	Accelerations(r, m []float64) ([]float64, error)
}
