// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config holds the value objects describing one simulation run:
// which acceleration kernel to use, the physical constants, the step
// schedule and the set of quantities to record.
package config

import "github.com/cpmech/gravsim/errs"

// KernelKind selects which acceleration kernel a run uses.
type KernelKind int

// kernel kinds
const (
	BruteForceKernel KernelKind = iota
	BarnesHutKernel
)

func (k KernelKind) String() string {
	switch k {
	case BruteForceKernel:
		return "Brute force"
	case BarnesHutKernel:
		return "Barnes-Hut"
	}
	return "unknown"
}

// Kernel carries the parameters for whichever KernelKind is selected.
// BarnesHut-only fields are ignored under BruteForceKernel.
type Kernel struct {
	Kind       KernelKind
	RootCenter [3]float64
	RootWidth  float64
	Theta      float64
}

// BruteForce returns a Kernel configured for exact O(N²) summation.
func BruteForce() Kernel {
	return Kernel{Kind: BruteForceKernel}
}

// BarnesHut returns a Kernel configured for the octree approximation.
func BarnesHut(rootCenter [3]float64, rootWidth, theta float64) Kernel {
	return Kernel{Kind: BarnesHutKernel, RootCenter: rootCenter, RootWidth: rootWidth, Theta: theta}
}

// QuantityName identifies a recordable quantity. This is the tagged
// variant named by the recorded-quantity dispatch design: four cases,
// each with its own row shape and emission period, enumerated by the
// driver's registry at setup.
type QuantityName string

// recordable quantity names
const (
	Position        QuantityName = "position"
	Velocity        QuantityName = "velocity"
	Energy          QuantityName = "energy"
	AngularMomentum QuantityName = "angular_momentum"
)

var knownQuantities = map[QuantityName]bool{
	Position: true, Velocity: true, Energy: true, AngularMomentum: true,
}

// Quantity pairs a recordable name with its emission period: p>=1 emits
// every p steps, p=0 disables emission entirely.
type Quantity struct {
	Name   QuantityName
	Period int
}

// DefaultQuantities returns position and velocity enabled at period 1,
// and the two scalars disabled, matching the driver's documented
// defaults.
func DefaultQuantities() []Quantity {
	return []Quantity{
		{Position, 1},
		{Velocity, 1},
		{Energy, 0},
		{AngularMomentum, 0},
	}
}

// Config describes one simulation run.
type Config struct {
	Kernel     Kernel
	G          float64
	Eps        float64
	NSteps     int
	Dt         float64
	Quantities []Quantity

	// DetectNonFinite turns a NaN/Inf acceleration into a NumericalError
	// abort instead of silently propagating it. Off by default.
	DetectNonFinite bool
}

// Validate checks the invariants named in the error handling design:
// non-negative epsilon and theta, positive step count and step size, and
// no duplicate or unknown recorded-quantity names.
func (c Config) Validate() error {
	if c.NSteps <= 0 {
		return errs.InvalidInputf("n_steps must be positive, got %d", c.NSteps)
	}
	if c.Dt <= 0 {
		return errs.InvalidInputf("dt must be positive, got %v", c.Dt)
	}
	if c.Eps < 0 {
		return errs.InvalidInputf("epsilon must be non-negative, got %v", c.Eps)
	}
	if c.Kernel.Kind == BarnesHutKernel && c.Kernel.Theta < 0 {
		return errs.InvalidInputf("theta must be non-negative, got %v", c.Kernel.Theta)
	}
	seen := map[QuantityName]bool{}
	for _, q := range c.Quantities {
		if !knownQuantities[q.Name] {
			return errs.InvalidInputf("unknown recorded quantity %q", q.Name)
		}
		if seen[q.Name] {
			return errs.InvalidInputf("duplicate recorded quantity %q", q.Name)
		}
		seen[q.Name] = true
		if q.Period < 0 {
			return errs.InvalidInputf("period for %q must be non-negative, got %d", q.Name, q.Period)
		}
	}
	return nil
}
