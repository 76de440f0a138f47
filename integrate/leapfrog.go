// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrate implements the kick-drift-kick (velocity-Verlet)
// leapfrog advance of positions and velocities, driven by an injected
// acceleration kernel.Provider. It is symplectic for constant Δt, giving
// bounded energy error independent of which kernel supplies the
// acceleration.
package integrate

import (
	"math"

	"github.com/cpmech/gravsim/errs"
	"github.com/cpmech/gravsim/kernel"
	"github.com/cpmech/gravsim/store"
)

// Leapfrog holds the acceleration kernel and the "previous" acceleration
// carried between steps.
type Leapfrog struct {
	Kernel kernel.Provider

	// DetectNonFinite, when true, turns a NaN/Inf value produced by the
	// kernel into a NumericalError instead of silently propagating it.
	DetectNonFinite bool

	aPrev []float64
}

// NewLeapfrog returns a Leapfrog driven by k. Init must be called once
// before the first Step.
func NewLeapfrog(k kernel.Provider) *Leapfrog {
	return &Leapfrog{Kernel: k}
}

// Init computes the initial acceleration from sp's current positions.
func (lf *Leapfrog) Init(sp *store.Space) error {
	a, err := lf.Kernel.Accelerations(sp.R, sp.M)
	if err != nil {
		return err
	}
	if err := lf.checkFinite(a); err != nil {
		return err
	}
	lf.aPrev = a
	return nil
}

// Step advances sp by one step of size dt using the kick-drift-kick form:
//
//	r ← r + v·Δt + ½ a_prev·Δt²
//	a_new ← Kernel(r, m)
//	v ← v + ½ (a_prev + a_new)·Δt
//	a_prev ← a_new
func (lf *Leapfrog) Step(sp *store.Space, dt float64) error {
	if lf.aPrev == nil {
		return errs.InvalidInputf("leapfrog: Step called before Init")
	}
	n := len(sp.R)
	half := 0.5 * dt * dt
	for idx := 0; idx < n; idx++ {
		sp.R[idx] += sp.V[idx]*dt + half*lf.aPrev[idx]
	}

	aNew, err := lf.Kernel.Accelerations(sp.R, sp.M)
	if err != nil {
		return err
	}
	if err := lf.checkFinite(aNew); err != nil {
		return err
	}

	halfDt := 0.5 * dt
	for idx := 0; idx < n; idx++ {
		sp.V[idx] += halfDt * (lf.aPrev[idx] + aNew[idx])
	}
	lf.aPrev = aNew
	return nil
}

func (lf *Leapfrog) checkFinite(a []float64) error {
	if !lf.DetectNonFinite {
		return nil
	}
	for i, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.Numericalf("non-finite acceleration component %d: %v", i, v)
		}
	}
	return nil
}
