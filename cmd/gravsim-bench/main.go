// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// command gravsim-bench times brute-force against Barnes-Hut across a
// sweep of particle counts, grounded on the original simulator's
// benchmark module and on gosl/utl's timing helpers.
package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gravsim/kernel"
)

func main() {
	theta := flag.Float64("theta", 0.5, "Barnes-Hut opening angle")
	flag.Parse()

	io.Pfwhite("\ngravsim-bench -- acceleration kernel benchmark\n\n")

	sizes := []int{100, 1000, 5000, 10000, 50000}
	rng := rand.New(rand.NewSource(1))

	for _, n := range sizes {
		r := make([]float64, 3*n)
		m := make([]float64, n)
		for i := 0; i < n; i++ {
			r[3*i] = rng.Float64()*10 - 5
			r[3*i+1] = rng.Float64()*10 - 5
			r[3*i+2] = rng.Float64()*10 - 5
			m[i] = rng.Float64() + 0.1
		}

		bf := kernel.BruteForce{G: 1, Eps: 0.01}
		t0 := time.Now()
		if _, err := bf.Accelerations(r, m); err != nil {
			io.Pfred("brute force N=%d failed: %v\n", n, err)
			continue
		}
		bfDt := time.Since(t0)

		bh := kernel.BarnesHut{G: 1, Eps: 0.01, RootCenter: [3]float64{0, 0, 0}, RootWidth: 20, Theta: *theta}
		t0 = time.Now()
		if _, err := bh.Accelerations(r, m); err != nil {
			io.Pfred("barnes-hut N=%d failed: %v\n", n, err)
			continue
		}
		bhDt := time.Since(t0)

		io.Pforan("N=%-6d  brute-force=%-12v  barnes-hut(theta=%.2f)=%-12v\n", n, bfDt, *theta, bhDt)
	}
}
