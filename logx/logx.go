// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package logx provides the colored progress/diagnostic printers used by
// the simulation driver, grounded on gosl/io's Pf-family of printers and
// the fem package's verbose-gated logging.
package logx

import "github.com/cpmech/gosl/io"

// Logger is the sink the driver reports progress and failures to.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// console is the default terminal Logger.
type console struct {
	verbose bool
}

// NewConsole returns a colored terminal Logger. Infof is a no-op unless
// verbose is true; Warnf and Errorf always print.
func NewConsole(verbose bool) Logger {
	return &console{verbose: verbose}
}

func (c *console) Infof(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	io.Pfgreen(format, args...)
}

func (c *console) Warnf(format string, args ...interface{}) {
	io.Pfyel(format, args...)
}

func (c *console) Errorf(format string, args ...interface{}) {
	io.Pfred(format, args...)
}

// silent discards everything. Used by tests and by callers who already
// have their own logging.
type silent struct{}

// NewSilent returns a no-op Logger.
func NewSilent() Logger { return silent{} }

func (silent) Infof(string, ...interface{})  {}
func (silent) Warnf(string, ...interface{})  {}
func (silent) Errorf(string, ...interface{}) {}
