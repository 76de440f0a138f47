// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"path/filepath"
	"testing"

	"github.com/cpmech/gravsim/config"
	"github.com/cpmech/gravsim/result"
	"github.com/cpmech/gravsim/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoBodySpace(t *testing.T) *store.Space {
	t.Helper()
	sp := store.New()
	_, err := sp.AppendOne([3]float64{0, 0, 0}, [3]float64{0, 0, 0}, 1)
	require.NoError(t, err)
	_, err = sp.AppendOne([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, 1)
	require.NoError(t, err)
	return sp
}

func TestDriverRunBruteForceAndRoundTrip(t *testing.T) {
	sp := twoBodySpace(t)
	cfg := config.Config{
		Kernel: config.BruteForce(),
		G:      1, Eps: 0.1,
		NSteps: 10, Dt: 0.01,
		Quantities: []config.Quantity{
			{config.Position, 1},
			{config.Velocity, 1},
			{config.Energy, 5},
			{config.AngularMomentum, 0},
		},
	}
	d, err := New(cfg, sp, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "twobody.gravsim")
	sink := result.NewWriter(path)
	require.NoError(t, d.Run(sink))
	assert.Equal(t, Completed, d.State())

	r, err := result.Open(path)
	require.NoError(t, err)
	meta := r.Metadata()
	assert.Equal(t, 10, meta.NumberOfSteps)
	assert.Equal(t, 2, meta.NumberOfParticles)
	assert.Equal(t, "Brute force", meta.SimulationType)

	nRows, err := r.NumRows("position")
	require.NoError(t, err)
	assert.Equal(t, 11, nRows)

	row0, err := r.Get("position", 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 1, 0, 0}, row0)

	nRows, err = r.NumRows("energy")
	require.NoError(t, err)
	assert.Equal(t, 3, nRows)

	assert.NotContains(t, r.Names(), "angular_momentum")
}

func TestDriverRunTwiceFails(t *testing.T) {
	sp := twoBodySpace(t)
	cfg := config.Config{Kernel: config.BruteForce(), G: 1, NSteps: 1, Dt: 0.01}
	d, err := New(cfg, sp, nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "once.gravsim")
	require.NoError(t, d.Run(result.NewWriter(path)))
	err = d.Run(result.NewWriter(path))
	require.Error(t, err)
}

func TestDriverAbortsOnGeometryFailure(t *testing.T) {
	sp := store.New()
	_, _ = sp.AppendOne([3]float64{100, 100, 100}, [3]float64{0, 0, 0}, 1)
	cfg := config.Config{
		Kernel: config.BarnesHut([3]float64{0, 0, 0}, 1, 0.5),
		G:      1, NSteps: 5, Dt: 0.01,
	}
	d, err := New(cfg, sp, nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "fail.gravsim")
	err = d.Run(result.NewWriter(path))
	require.Error(t, err)
	assert.Equal(t, Failed, d.State())
}

func TestDriverRejectsInvalidConfig(t *testing.T) {
	sp := twoBodySpace(t)
	cfg := config.Config{Kernel: config.BruteForce(), G: 1, NSteps: 0, Dt: 0.01}
	_, err := New(cfg, sp, nil)
	require.Error(t, err)
}
