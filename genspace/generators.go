// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package genspace implements the particle generators that fill a
// store.Space before a run: uniform cuboid, sphere, cylinder and Plummer
// sphere distributions. These are out-of-scope collaborators per the
// engine's specification (they carry no algorithmic weight) and exist
// only so the driver, as run by the gravsim command, has something to run
// against.
package genspace

import (
	"math"
	"math/rand"

	"github.com/cpmech/gravsim/store"
)

// VelocityFunc returns a velocity for a particle generated at position r.
type VelocityFunc func(r [3]float64) [3]float64

// MassFunc returns a mass for a particle generated at position r.
type MassFunc func(r [3]float64) float64

// Zero is a VelocityFunc that always returns the zero vector.
func Zero(r [3]float64) [3]float64 { return [3]float64{} }

// Uniform returns a MassFunc that always returns m.
func Uniform(m float64) MassFunc {
	return func(r [3]float64) float64 { return m }
}

// Cuboid appends n particles uniformly distributed within a cuboid of the
// given center and side lengths.
func Cuboid(sp *store.Space, rng *rand.Rand, n int, center [3]float64, lx, ly, lz float64, vf VelocityFunc, mf MassFunc) error {
	R := make([][3]float64, n)
	V := make([][3]float64, n)
	M := make([]float64, n)
	for i := 0; i < n; i++ {
		r := [3]float64{
			center[0] + (rng.Float64()-0.5)*lx,
			center[1] + (rng.Float64()-0.5)*ly,
			center[2] + (rng.Float64()-0.5)*lz,
		}
		R[i] = r
		V[i] = vf(r)
		M[i] = mf(r)
	}
	return sp.AppendBulk(R, V, M)
}

// Sphere appends n particles uniformly distributed by volume within a
// sphere of the given center and radius.
func Sphere(sp *store.Space, rng *rand.Rand, n int, center [3]float64, radius float64, vf VelocityFunc, mf MassFunc) error {
	R := make([][3]float64, n)
	V := make([][3]float64, n)
	M := make([]float64, n)
	for i := 0; i < n; i++ {
		u := rng.Float64()
		v := 2*rng.Float64() - 1
		phi := 2 * math.Pi * rng.Float64()
		rad := radius * math.Cbrt(u)
		theta := math.Acos(-v)
		r := [3]float64{
			center[0] + rad*math.Sin(theta)*math.Cos(phi),
			center[1] + rad*math.Sin(theta)*math.Sin(phi),
			center[2] + rad*math.Cos(theta),
		}
		R[i] = r
		V[i] = vf(r)
		M[i] = mf(r)
	}
	return sp.AppendBulk(R, V, M)
}

// Cylinder appends n particles uniformly distributed within a cylinder of
// the given center, radius and height.
func Cylinder(sp *store.Space, rng *rand.Rand, n int, center [3]float64, radius, lz float64, vf VelocityFunc, mf MassFunc) error {
	R := make([][3]float64, n)
	V := make([][3]float64, n)
	M := make([]float64, n)
	for i := 0; i < n; i++ {
		rad := radius * math.Sqrt(rng.Float64())
		theta := 2 * math.Pi * rng.Float64()
		z := center[2] + (rng.Float64()-0.5)*lz
		r := [3]float64{
			center[0] + rad*math.Cos(theta),
			center[1] + rad*math.Sin(theta),
			z,
		}
		R[i] = r
		V[i] = vf(r)
		M[i] = mf(r)
	}
	return sp.AppendBulk(R, V, M)
}

// Plummer appends n particles sampled from a Plummer sphere of unit
// total mass and scale radius, centered at center, using the standard
// rejection-sampling velocity distribution of a self-consistent Plummer
// model.
func Plummer(sp *store.Space, rng *rand.Rand, n int, center [3]float64) error {
	R := make([][3]float64, n)
	V := make([][3]float64, n)
	M := make([]float64, n)
	for i := 0; i < n; i++ {
		M[i] = 1.0 / float64(n)

		rad := 1.0 / math.Sqrt(math.Pow(rng.Float64(), -2.0/3.0)-1)
		phi := 2 * math.Pi * rng.Float64()
		theta := math.Acos(2*rng.Float64() - 1)
		R[i] = [3]float64{
			center[0] + rad*math.Sin(theta)*math.Cos(phi),
			center[1] + rad*math.Sin(theta)*math.Sin(phi),
			center[2] + rad*math.Cos(theta),
		}

		var x, y float64 = 0, 0.1
		for y > x*x*math.Pow(1-x*x, 3.5) {
			x = rng.Float64()
			y = 0.1 * rng.Float64()
		}
		speed := x * math.Sqrt2 * math.Pow(1+rad*rad, -0.25)
		vphi := 2 * math.Pi * rng.Float64()
		vtheta := math.Acos(2*rng.Float64() - 1)
		V[i] = [3]float64{
			speed * math.Sin(vtheta) * math.Cos(vphi),
			speed * math.Sin(vtheta) * math.Sin(vphi),
			speed * math.Cos(vtheta),
		}
	}
	return sp.AppendBulk(R, V, M)
}
