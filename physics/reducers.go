// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package physics implements the stateless scalar and vector reducers
// shared by the brute-force kernel, the Barnes-Hut kernel and the
// simulation driver: center of mass, kinetic/potential/total energy and
// angular momentum.
package physics

import (
	"math"

	"github.com/cpmech/gravsim/errs"
)

// CenterOfMass returns (Σ m_i r_i) / Σ m_i. It is an error to call this on
// an empty system or one whose total mass is zero, since the quantity is
// undefined there.
func CenterOfMass(r, m []float64) ([3]float64, error) {
	n := len(m)
	if n == 0 {
		return [3]float64{}, errs.InvalidInputf("center of mass undefined: empty system")
	}
	var totalM float64
	var com [3]float64
	for i := 0; i < n; i++ {
		mi := m[i]
		totalM += mi
		com[0] += mi * r[3*i]
		com[1] += mi * r[3*i+1]
		com[2] += mi * r[3*i+2]
	}
	if totalM == 0 {
		return [3]float64{}, errs.InvalidInputf("center of mass undefined: total mass is zero")
	}
	com[0] /= totalM
	com[1] /= totalM
	com[2] /= totalM
	return com, nil
}

// KineticEnergy returns ½ Σ m_i |v_i|².
func KineticEnergy(v, m []float64) float64 {
	var ke float64
	for i := range m {
		vx, vy, vz := v[3*i], v[3*i+1], v[3*i+2]
		ke += m[i] * (vx*vx + vy*vy + vz*vz)
	}
	return 0.5 * ke
}

// PotentialEnergy returns -G Σ_{i<j} m_i m_j / sqrt(|r_i-r_j|²+ε²), using
// the same softening ε the force kernels use (the contract assumed by the
// original simulator: both the force and its potential share ε).
func PotentialEnergy(r, m []float64, G, eps float64) float64 {
	n := len(m)
	eps2 := eps * eps
	var pe float64
	for i := 0; i < n; i++ {
		xi, yi, zi := r[3*i], r[3*i+1], r[3*i+2]
		for j := i + 1; j < n; j++ {
			dx := xi - r[3*j]
			dy := yi - r[3*j+1]
			dz := zi - r[3*j+2]
			d2 := dx*dx + dy*dy + dz*dz
			pe -= m[i] * m[j] / math.Sqrt(d2+eps2)
		}
	}
	return G * pe
}

// TotalEnergy returns KineticEnergy(v,m) + PotentialEnergy(r,m,G,eps).
func TotalEnergy(r, v, m []float64, G, eps float64) float64 {
	return KineticEnergy(v, m) + PotentialEnergy(r, m, G, eps)
}

// AngularMomentum returns Σ m_i (r_i × v_i), about the origin.
func AngularMomentum(r, v, m []float64) [3]float64 {
	var l [3]float64
	for i := range m {
		mi := m[i]
		rx, ry, rz := r[3*i], r[3*i+1], r[3*i+2]
		vx, vy, vz := v[3*i], v[3*i+1], v[3*i+2]
		l[0] += mi * (ry*vz - rz*vy)
		l[1] += mi * (rz*vx - rx*vz)
		l[2] += mi * (rx*vy - ry*vx)
	}
	return l
}
