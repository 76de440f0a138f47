// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim orchestrates one simulation run: it owns the step loop,
// invokes the leapfrog integrator with whichever kernel the configuration
// selects, and emits the recorded quantities on their configured
// schedule. It is deliberately the only library package that knows about both the
// numerical core (store, kernel, integrate, physics) and the persisted
// output format (result).
package sim

import (
	"time"

	"github.com/cpmech/gravsim/config"
	"github.com/cpmech/gravsim/errs"
	"github.com/cpmech/gravsim/integrate"
	"github.com/cpmech/gravsim/kernel"
	"github.com/cpmech/gravsim/logx"
	"github.com/cpmech/gravsim/physics"
	"github.com/cpmech/gravsim/result"
	"github.com/cpmech/gravsim/store"
)

// State is the driver's run state machine: Configured -> Running ->
// Completed | Failed.
type State int

// driver states
const (
	Configured State = iota
	Running
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Configured:
		return "Configured"
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// Driver owns one simulation run end to end. Run may be called at most
// once per instance.
type Driver struct {
	cfg        config.Config
	space      *store.Space
	integrator *integrate.Leapfrog
	logger     logx.Logger
	state      State

	// OnStep, if set, is called after every completed step with the step
	// number (1..NSteps). Callers use this to drive a progress.Bar; it is
	// never required for correctness.
	OnStep func(step int)
}

// New validates cfg, builds the kernel it names, and returns a Driver
// ready to Run against space.
func New(cfg config.Config, space *store.Space, logger logx.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logx.NewSilent()
	}

	var provider kernel.Provider
	switch cfg.Kernel.Kind {
	case config.BruteForceKernel:
		provider = kernel.BruteForce{G: cfg.G, Eps: cfg.Eps}
	case config.BarnesHutKernel:
		provider = kernel.BarnesHut{
			G:          cfg.G,
			Eps:        cfg.Eps,
			RootCenter: cfg.Kernel.RootCenter,
			RootWidth:  cfg.Kernel.RootWidth,
			Theta:      cfg.Kernel.Theta,
		}
	default:
		return nil, errs.InvalidInputf("unknown kernel kind %d", cfg.Kernel.Kind)
	}

	integrator := integrate.NewLeapfrog(provider)
	integrator.DetectNonFinite = cfg.DetectNonFinite

	return &Driver{cfg: cfg, space: space, integrator: integrator, logger: logger, state: Configured}, nil
}

// State returns the driver's current state.
func (d *Driver) State() State { return d.state }

// quantitySpec binds a recordable name to its row computation. This is
// the recorded-quantity registry named in the design notes: a map from
// name to (shape is implicit in result.Writer, compute function, period)
// rather than a class hierarchy.
type quantitySpec struct {
	period  int
	compute func(sp *store.Space, G, eps float64) []float64
}

func registry(quantities []config.Quantity) map[string]quantitySpec {
	periods := map[config.QuantityName]int{}
	for _, q := range quantities {
		periods[q.Name] = q.Period
	}
	specs := map[string]quantitySpec{
		string(config.Position): {
			period: periods[config.Position],
			compute: func(sp *store.Space, G, eps float64) []float64 {
				return append([]float64(nil), sp.R...)
			},
		},
		string(config.Velocity): {
			period: periods[config.Velocity],
			compute: func(sp *store.Space, G, eps float64) []float64 {
				return append([]float64(nil), sp.V...)
			},
		},
		string(config.Energy): {
			period: periods[config.Energy],
			compute: func(sp *store.Space, G, eps float64) []float64 {
				return []float64{physics.TotalEnergy(sp.R, sp.V, sp.M, G, eps)}
			},
		},
		string(config.AngularMomentum): {
			period: periods[config.AngularMomentum],
			compute: func(sp *store.Space, G, eps float64) []float64 {
				l := physics.AngularMomentum(sp.R, sp.V, sp.M)
				return l[:]
			},
		},
	}
	return specs
}

// Run executes the configured simulation and writes the recorded
// quantities to sink. It may be called only once per Driver.
func (d *Driver) Run(sink *result.Writer) error {
	if d.state != Configured {
		return errs.InvalidInputf("driver: Run called in state %v, expected %v", d.state, Configured)
	}
	d.state = Running

	quantities := d.cfg.Quantities
	if len(quantities) == 0 {
		quantities = config.DefaultQuantities()
	}
	specs := registry(quantities)

	start := time.Now()
	meta := result.RunMetadata{
		NumberOfSteps:     d.cfg.NSteps,
		TimeStepSize:      d.cfg.Dt,
		G:                 d.cfg.G,
		Epsilon:           d.cfg.Eps,
		NumberOfParticles: d.space.Len(),
		SimulationType:    d.cfg.Kernel.Kind.String(),
		Nproc:             1,
		StartTime:         start,
	}
	if err := sink.Begin(meta, quantities); err != nil {
		d.state = Failed
		return err
	}

	abort := func(err error) error {
		d.logger.Errorf("simulation aborted: %v\n", err)
		_ = sink.Abort()
		d.state = Failed
		return err
	}

	writeRow := func(step int) error {
		for name, spec := range specs {
			if spec.period <= 0 || step%spec.period != 0 {
				continue
			}
			row := spec.compute(d.space, d.cfg.G, d.cfg.Eps)
			if err := sink.WriteRow(name, step, row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(0); err != nil {
		return abort(err)
	}

	d.logger.Infof("simulation start: type=%s N=%d n_steps=%d\n", meta.SimulationType, meta.NumberOfParticles, d.cfg.NSteps)

	if err := d.integrator.Init(d.space); err != nil {
		return abort(err)
	}
	for step := 1; step <= d.cfg.NSteps; step++ {
		if err := d.integrator.Step(d.space, d.cfg.Dt); err != nil {
			return abort(err)
		}
		if err := writeRow(step); err != nil {
			return abort(err)
		}
		if d.OnStep != nil {
			d.OnStep(step)
		}
	}

	if err := sink.Finish(time.Now()); err != nil {
		d.state = Failed
		return err
	}
	d.state = Completed
	d.logger.Infof("simulation complete\n")
	return nil
}
