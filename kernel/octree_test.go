// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gravsim/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformCuboid(seed int64, n int, side float64) ([]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	r := make([]float64, 3*n)
	m := make([]float64, n)
	for i := 0; i < n; i++ {
		r[3*i] = (rng.Float64() - 0.5) * side
		r[3*i+1] = (rng.Float64() - 0.5) * side
		r[3*i+2] = (rng.Float64() - 0.5) * side
		m[i] = rng.Float64() + 0.1
	}
	return r, m
}

func relativeError(a, aRef []float64, n int) (mean, std float64) {
	errsSlice := make([]float64, n)
	for i := 0; i < n; i++ {
		dx := a[3*i] - aRef[3*i]
		dy := a[3*i+1] - aRef[3*i+1]
		dz := a[3*i+2] - aRef[3*i+2]
		num := math.Sqrt(dx*dx + dy*dy + dz*dz)
		den := math.Sqrt(aRef[3*i]*aRef[3*i] + aRef[3*i+1]*aRef[3*i+1] + aRef[3*i+2]*aRef[3*i+2])
		if den == 0 {
			continue
		}
		errsSlice[i] = num / den
		mean += errsSlice[i]
	}
	mean /= float64(n)
	for i := 0; i < n; i++ {
		d := errsSlice[i] - mean
		std += d * d
	}
	std = math.Sqrt(std / float64(n))
	return
}

func TestOctreeExactAtThetaZero(t *testing.T) {
	for _, n := range []int{2, 10, 50, 200} {
		r, m := uniformCuboid(int64(n), n, 10)
		bf := BruteForce{G: 1, Eps: 0.01}
		aRef, err := bf.Accelerations(r, m)
		require.NoError(t, err)

		bh := BarnesHut{G: 1, Eps: 0.01, RootCenter: [3]float64{0, 0, 0}, RootWidth: 100, Theta: 0}
		a, err := bh.Accelerations(r, m)
		require.NoError(t, err)

		for i := range a {
			if aRef[i] == 0 {
				assert.InDelta(t, 0, a[i], 1e-9)
				continue
			}
			assert.InDelta(t, 0, (a[i]-aRef[i])/aRef[i], 1e-10)
		}
	}
}

func TestOctreeApproximateAgreement(t *testing.T) {
	for _, n := range []int{2, 10, 100, 1000} {
		r, m := uniformCuboid(int64(n)+1000, n, 10)
		bf := BruteForce{G: 1, Eps: 0.05}
		aRef, err := bf.Accelerations(r, m)
		require.NoError(t, err)

		bh := BarnesHut{G: 1, Eps: 0.05, RootCenter: [3]float64{0, 0, 0}, RootWidth: 100, Theta: 0.5}
		a, err := bh.Accelerations(r, m)
		require.NoError(t, err)

		mean, std := relativeError(a, aRef, n)
		assert.Less(t, mean, 0.02)
		assert.Less(t, std, 0.02)
	}
}

func TestOctreeOutsideRootCubeFails(t *testing.T) {
	r := []float64{0, 0, 0, 100, 100, 100}
	m := []float64{1, 1}
	_, err := BuildOctree([3]float64{0, 0, 0}, 10, r, m)
	require.Error(t, err)
	assert.Equal(t, errs.Geometry, errs.KindOf(err))
}

func TestOctreeCoincidentParticlesMerge(t *testing.T) {
	r := []float64{1, 1, 1, 1, 1, 1, -1, -1, -1}
	m := []float64{1, 2, 3}
	tree, err := BuildOctree([3]float64{0, 0, 0}, 10, r, m)
	require.NoError(t, err)
	a, err := tree.Accelerations(1, 0.1, 0)
	require.NoError(t, err)
	assert.Len(t, a, 9)

	bf := BruteForce{G: 1, Eps: 0.1}
	aRef, err := bf.Accelerations(r, m)
	require.NoError(t, err)
	for i := range a {
		assert.InDelta(t, aRef[i], a[i], 1e-9)
	}
}

func TestOctreeMassDominance(t *testing.T) {
	r := []float64{0, 0, 0, 2, 2, 2, 1, 1, 1}
	m := []float64{1, 2, 1e15}
	tree, err := BuildOctree([3]float64{0, 0, 0}, 20, r, m)
	require.NoError(t, err)
	root := tree.nodes[0]
	assert.InDelta(t, 1, root.com[0], 1e-10)
	assert.InDelta(t, 1, root.com[1], 1e-10)
	assert.InDelta(t, 1, root.com[2], 1e-10)
}
