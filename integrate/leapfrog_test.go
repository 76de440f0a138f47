// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gravsim/kernel"
	"github.com/cpmech/gravsim/physics"
	"github.com/cpmech/gravsim/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeapfrogEnergyConservation(t *testing.T) {
	const (
		G    = 1.0
		eps  = 0.05
		n    = 1000
		dt   = 0.001
		nstp = 1000
	)
	rng := rand.New(rand.NewSource(7))
	sp := store.New()
	for i := 0; i < n; i++ {
		r := [3]float64{rng.Float64() - 0.5, rng.Float64() - 0.5, rng.Float64() - 0.5}
		v := [3]float64{}
		_, err := sp.AppendOne(r, v, 1.0/float64(n))
		require.NoError(t, err)
	}

	k := kernel.BarnesHut{G: G, Eps: eps, RootCenter: [3]float64{0, 0, 0}, RootWidth: 10, Theta: 0.75}
	lf := NewLeapfrog(k)
	require.NoError(t, lf.Init(sp))

	e0 := physics.TotalEnergy(sp.R, sp.V, sp.M, G, eps)
	for step := 0; step < nstp; step++ {
		require.NoError(t, lf.Step(sp, dt))
	}
	e1 := physics.TotalEnergy(sp.R, sp.V, sp.M, G, eps)

	assert.Less(t, math.Abs(e1-e0)/math.Abs(e0), 0.01)
}

func TestLeapfrogStepBeforeInit(t *testing.T) {
	sp := store.New()
	_, _ = sp.AppendOne([3]float64{0, 0, 0}, [3]float64{0, 0, 0}, 1)
	lf := NewLeapfrog(kernel.BruteForce{G: 1})
	err := lf.Step(sp, 0.1)
	require.Error(t, err)
}
