// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package store owns the particle arrays shared by every kernel and by the
// leapfrog integrator.
package store

import "github.com/cpmech/gravsim/errs"

// Space is an ordered collection of N bodies. R, V and M are exported as
// flat, contiguous SoA slices (N*3, N*3 and N respectively) so kernels can
// read them directly without copying. Index i is stable across every
// operation except Clear.
type Space struct {
	R []float64 // positions,  N*3, row-major (x,y,z per body)
	V []float64 // velocities, N*3
	M []float64 // masses,     N
}

// New returns an empty Space.
func New() *Space {
	return &Space{}
}

// Len returns N.
func (s *Space) Len() int {
	return len(s.M)
}

// AppendOne appends a single body and returns its stable index (the old
// length). Negative mass is rejected.
func (s *Space) AppendOne(r, v [3]float64, m float64) (int, error) {
	if m < 0 {
		return 0, errs.InvalidInputf("mass must be non-negative, got %v", m)
	}
	idx := s.Len()
	s.R = append(s.R, r[0], r[1], r[2])
	s.V = append(s.V, v[0], v[1], v[2])
	s.M = append(s.M, m)
	return idx, nil
}

// AppendBulk appends K bodies. R and V must each hold K 3-vectors and M
// must hold K masses; a mismatch or a negative mass is InvalidInput.
func (s *Space) AppendBulk(R, V [][3]float64, M []float64) error {
	k := len(M)
	if len(R) != k || len(V) != k {
		return errs.InvalidInputf("mismatched leading dimension: len(R)=%d len(V)=%d len(M)=%d", len(R), len(V), k)
	}
	for _, m := range M {
		if m < 0 {
			return errs.InvalidInputf("mass must be non-negative, got %v", m)
		}
	}
	for i := 0; i < k; i++ {
		s.R = append(s.R, R[i][0], R[i][1], R[i][2])
		s.V = append(s.V, V[i][0], V[i][1], V[i][2])
	}
	s.M = append(s.M, M...)
	return nil
}

// Clear resets the Space to empty. Indices assigned before the call are
// not preserved across it.
func (s *Space) Clear() {
	s.R = s.R[:0]
	s.V = s.V[:0]
	s.M = s.M[:0]
}

// Position returns the position of body i.
func (s *Space) Position(i int) [3]float64 {
	return [3]float64{s.R[3*i], s.R[3*i+1], s.R[3*i+2]}
}

// Velocity returns the velocity of body i.
func (s *Space) Velocity(i int) [3]float64 {
	return [3]float64{s.V[3*i], s.V[3*i+1], s.V[3*i+2]}
}
