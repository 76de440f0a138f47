// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BruteForce computes per-body acceleration by exact O(N²) pairwise
// summation with softening ε. It implements Provider.
type BruteForce struct {
	G   float64
	Eps float64
}

// Accelerations returns a, where
//
//	a_i = G Σ_{j≠i} m_j (r_j - r_i) / (|r_j-r_i|² + ε²)^{3/2}
//
// The outer loop over i is split across GOMAXPROCS workers; each writes
// only to its own disjoint rows of a, so no synchronization is needed
// besides the final join.
func (k BruteForce) Accelerations(r, m []float64) ([]float64, error) {
	n := len(m)
	a := make([]float64, 3*n)
	if n == 0 {
		return a, nil
	}
	eps2 := k.Eps * k.Eps

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		lo, hi := lo, hi
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				xi, yi, zi := r[3*i], r[3*i+1], r[3*i+2]
				var ax, ay, az float64
				for j := 0; j < n; j++ {
					if j == i {
						continue
					}
					dx := r[3*j] - xi
					dy := r[3*j+1] - yi
					dz := r[3*j+2] - zi
					d2 := dx*dx + dy*dy + dz*dz
					inv := math.Pow(d2+eps2, -1.5)
					mj := m[j]
					ax += mj * dx * inv
					ay += mj * dy * inv
					az += mj * dz * inv
				}
				a[3*i] = k.G * ax
				a[3*i+1] = k.G * ay
				a[3*i+2] = k.G * az
			}
			return nil
		})
	}
	// g.Go bodies never return an error; Wait only joins the workers.
	_ = g.Wait()
	return a, nil
}
