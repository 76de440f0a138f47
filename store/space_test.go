// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/cpmech/gravsim/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendOne(t *testing.T) {
	sp := New()
	idx, err := sp.AppendOne([3]float64{1, 2, 3}, [3]float64{-1, 1, 0}, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	idx, err = sp.AppendOne([3]float64{0, 0, 0}, [3]float64{0, 0, 0}, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, sp.Len())
	assert.Equal(t, [3]float64{1, 2, 3}, sp.Position(0))
	assert.Equal(t, [3]float64{-1, 1, 0}, sp.Velocity(0))
}

func TestAppendOneNegativeMass(t *testing.T) {
	sp := New()
	_, err := sp.AppendOne([3]float64{}, [3]float64{}, -1)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
}

func TestAppendBulkMismatch(t *testing.T) {
	sp := New()
	err := sp.AppendBulk([][3]float64{{0, 0, 0}}, [][3]float64{{0, 0, 0}, {1, 1, 1}}, []float64{1})
	require.Error(t, err)
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
}

func TestAppendBulkAndClear(t *testing.T) {
	sp := New()
	R := [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 1}}
	V := [][3]float64{{-1, 1, 0}, {1, -1, 0}, {1, -2, 1}}
	M := []float64{1, 2, 3}
	require.NoError(t, sp.AppendBulk(R, V, M))
	assert.Equal(t, 3, sp.Len())
	assert.Equal(t, M, sp.M)
	sp.Clear()
	assert.Equal(t, 0, sp.Len())
}

func TestZeroMassAllowed(t *testing.T) {
	sp := New()
	_, err := sp.AppendOne([3]float64{}, [3]float64{}, 0)
	require.NoError(t, err)
}
