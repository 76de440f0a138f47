// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gravsim/config"
	"github.com/cpmech/gravsim/genspace"
	"github.com/cpmech/gravsim/logx"
	"github.com/cpmech/gravsim/progress"
	"github.com/cpmech/gravsim/result"
	"github.com/cpmech/gravsim/sim"
	"github.com/cpmech/gravsim/store"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\ngravsim -- N-body gravitational simulator\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// command-line options
	n := flag.Int("n", 1000, "number of particles to generate")
	nsteps := flag.Int("nsteps", 1000, "number of integration steps")
	dt := flag.Float64("dt", 0.001, "integration time step")
	g := flag.Float64("g", 1, "gravitational constant")
	eps := flag.Float64("eps", 0.01, "softening length")
	theta := flag.Float64("theta", 0.5, "Barnes-Hut opening angle; 0 selects brute force")
	out := flag.String("o", "run.gravsim", "output result file")
	flag.Parse()

	// profiling?
	defer utl.DoProf(false)()

	// generate an initial Plummer sphere
	sp := store.New()
	rng := rand.New(rand.NewSource(1))
	if err := genspace.Plummer(sp, rng, *n, [3]float64{0, 0, 0}); err != nil {
		chk.Panic("failed to generate initial space: %v", err)
	}

	// select kernel
	var kernel config.Kernel
	if *theta <= 0 {
		kernel = config.BruteForce()
	} else {
		kernel = config.BarnesHut([3]float64{0, 0, 0}, 50, *theta)
	}

	cfg := config.Config{
		Kernel:     kernel,
		G:          *g,
		Eps:        *eps,
		NSteps:     *nsteps,
		Dt:         *dt,
		Quantities: config.DefaultQuantities(),
	}

	bar := progress.New(*nsteps, 40)
	d, err := sim.New(cfg, sp, logx.NewConsole(true))
	if err != nil {
		chk.Panic("failed to configure driver: %v", err)
	}
	d.OnStep = func(step int) { bar.Update() }

	if err := d.Run(result.NewWriter(*out)); err != nil {
		chk.Panic("simulation failed: %v", err)
	}

	io.Pfgreen("\ndone: wrote %s\n", *out)
}
