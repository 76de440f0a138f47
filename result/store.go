// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package result implements the persisted simulation output: a
// self-describing file with two logical groups, "info" (run metadata)
// and "results/<name>" (one dataset per recorded quantity), mirroring
// the hierarchical dataset contract the driver and its readers agree on.
// No HDF5 binding exists anywhere in the corpus this module was grown
// from, so the container is written with encoding/gob, the same
// serialization family the teacher already uses for its own run summary.
package result

import (
	"encoding/gob"
	"errors"
	"os"
	"time"

	"github.com/cpmech/gravsim/config"
	"github.com/cpmech/gravsim/errs"
)

const (
	magic         = "gravsim-result"
	formatVersion = 1
)

// ErrNotARecognizedFile is returned by Open when the file does not carry
// the expected magic/version header.
var ErrNotARecognizedFile = errors.New("not a recognized result file")

// RunMetadata is the "info" group: the scalar attributes recorded once at
// the start of a run, plus the wall-clock bookkeeping recorded at the end.
type RunMetadata struct {
	NumberOfSteps     int
	TimeStepSize      float64
	G                 float64
	Epsilon           float64
	NumberOfParticles int
	SimulationType    string
	Nproc             int
	StartTime         time.Time
	EndTime           time.Time
	TotalTime         float64
}

type datasetRecord struct {
	Name      string
	Shape     []int
	Frequency int
	Rows      [][]float64
}

type fileContainer struct {
	Magic    string
	Version  int
	Meta     RunMetadata
	Names    []string
	Datasets map[string]datasetRecord
}

// Writer accumulates one run's recorded quantities in memory and persists
// them to disk in a single pass at Finish, matching the contract that the
// output sink is truncated on entry (Begin) and exclusively held until
// the run completes or aborts.
type Writer struct {
	path     string
	file     *os.File
	meta     RunMetadata
	names    []string
	datasets map[string]*datasetRecord
}

// NewWriter returns a Writer for path. The file is not touched until
// Begin is called.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Begin truncates and opens the output file, and allocates one dataset
// per enabled quantity with ⌊n_steps/period⌋+1 rows.
func (w *Writer) Begin(meta RunMetadata, quantities []config.Quantity) error {
	f, err := os.Create(w.path)
	if err != nil {
		return errs.IOf("cannot open output sink %q: %v", w.path, err)
	}
	w.file = f
	w.meta = meta
	w.datasets = map[string]*datasetRecord{}
	w.names = nil

	shapes := map[config.QuantityName][]int{
		config.Position:        {meta.NumberOfParticles, 3},
		config.Velocity:        {meta.NumberOfParticles, 3},
		config.Energy:          {1},
		config.AngularMomentum: {3},
	}
	for _, q := range quantities {
		if q.Period <= 0 {
			continue
		}
		nRows := meta.NumberOfSteps/q.Period + 1
		w.datasets[string(q.Name)] = &datasetRecord{
			Name:      string(q.Name),
			Shape:     shapes[q.Name],
			Frequency: q.Period,
			Rows:      make([][]float64, nRows),
		}
		w.names = append(w.names, string(q.Name))
	}
	return nil
}

// WriteRow records row, a flattened value, for the dataset named name at
// simulation step step. Row k = step/frequency.
func (w *Writer) WriteRow(name string, step int, row []float64) error {
	ds, ok := w.datasets[name]
	if !ok {
		return errs.InvalidInputf("unknown recorded quantity %q", name)
	}
	k := step / ds.Frequency
	if k < 0 || k >= len(ds.Rows) {
		return errs.InvalidInputf("step %d out of range for quantity %q", step, name)
	}
	ds.Rows[k] = append([]float64(nil), row...)
	return nil
}

// Finish records the end time and total elapsed time, then encodes the
// whole container to disk and closes the sink.
func (w *Writer) Finish(endTime time.Time) error {
	w.meta.EndTime = endTime
	w.meta.TotalTime = endTime.Sub(w.meta.StartTime).Seconds()

	container := fileContainer{
		Magic:    magic,
		Version:  formatVersion,
		Meta:     w.meta,
		Names:    w.names,
		Datasets: map[string]datasetRecord{},
	}
	for name, ds := range w.datasets {
		container.Datasets[name] = *ds
	}

	if _, err := w.file.Seek(0, 0); err != nil {
		return errs.IOf("cannot rewind output sink %q: %v", w.path, err)
	}
	enc := gob.NewEncoder(w.file)
	if err := enc.Encode(container); err != nil {
		w.file.Close()
		return errs.IOf("cannot write output sink %q: %v", w.path, err)
	}
	return errs.IOWrap(w.file.Close(), "cannot close output sink %q", w.path)
}

// Abort closes the sink without writing the final container, leaving
// whatever partial (here: empty, since content is only written at
// Finish) output was already on disk.
func (w *Writer) Abort() error {
	if w.file == nil {
		return nil
	}
	return errs.IOWrap(w.file.Close(), "cannot close output sink %q", w.path)
}

// Reader exposes the contract consumed by external tooling: the list of
// recorded names, the run metadata, and random access to individual rows.
type Reader struct {
	meta     RunMetadata
	names    []string
	datasets map[string]datasetRecord
}

// Open reads a result file written by Writer. It fails with an IOError
// wrapping ErrNotARecognizedFile if the file lacks the expected header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.IOf("cannot open %q: %v", path, err)
	}
	defer f.Close()

	var container fileContainer
	if err := gob.NewDecoder(f).Decode(&container); err != nil {
		return nil, errs.Wrap(errs.IO, ErrNotARecognizedFile, "%q", path)
	}
	if container.Magic != magic || container.Version != formatVersion {
		return nil, errs.Wrap(errs.IO, ErrNotARecognizedFile, "%q", path)
	}
	return &Reader{meta: container.Meta, names: container.Names, datasets: container.Datasets}, nil
}

// Names returns the recorded quantity names present in the file.
func (r *Reader) Names() []string { return r.names }

// Metadata returns the "info" group.
func (r *Reader) Metadata() RunMetadata { return r.meta }

// Get returns row k of dataset name.
func (r *Reader) Get(name string, k int) ([]float64, error) {
	ds, ok := r.datasets[name]
	if !ok {
		return nil, errs.InvalidInputf("unknown recorded quantity %q", name)
	}
	if k < 0 || k >= len(ds.Rows) {
		return nil, errs.InvalidInputf("row %d out of range for quantity %q", k, name)
	}
	return ds.Rows[k], nil
}

// NumRows returns the number of rows recorded for dataset name.
func (r *Reader) NumRows(name string) (int, error) {
	ds, ok := r.datasets[name]
	if !ok {
		return 0, errs.InvalidInputf("unknown recorded quantity %q", name)
	}
	return len(ds.Rows), nil
}

// Frequency returns the emission period of dataset name.
func (r *Reader) Frequency(name string) (int, error) {
	ds, ok := r.datasets[name]
	if !ok {
		return 0, errs.InvalidInputf("unknown recorded quantity %q", name)
	}
	return ds.Frequency, nil
}
