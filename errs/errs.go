// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs defines the error taxonomy shared by the particle store,
// kernels, integrator and simulation driver.
package errs

import "fmt"

// Kind classifies an Error so callers can branch on failure category
// without parsing messages.
type Kind int

// error kinds
const (
	InvalidInput Kind = iota // mismatched shapes, bad parameters, unknown names
	Geometry                 // particle outside root cube; unresolved coincident particles
	IO                       // sink cannot be opened/written; file not recognized
	Numerical                // non-finite (NaN/Inf) value produced by a kernel
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case Geometry:
		return "GeometryError"
	case IO:
		return "IOError"
	case Numerical:
		return "NumericalError"
	}
	return "UnknownError"
}

// Error is the concrete error type returned by this module. It carries a
// Kind so a caller (e.g. the simulation driver) can decide how to react to
// a kernel failure instead of pattern-matching on the message text, and
// an optional wrapped error so callers can still errors.Is/errors.As
// through to a sentinel such as ErrNotARecognizedFile.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error of the given kind with a fmt.Sprintf-formatted message.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around an existing error, so
// callers can still errors.Is/errors.As through to it.
func Wrap(kind Kind, err error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// InvalidInputf builds an InvalidInput error.
func InvalidInputf(format string, args ...interface{}) error {
	return New(InvalidInput, format, args...)
}

// Geometryf builds a GeometryError.
func Geometryf(format string, args ...interface{}) error {
	return New(Geometry, format, args...)
}

// IOf builds an IOError.
func IOf(format string, args ...interface{}) error {
	return New(IO, format, args...)
}

// Numericalf builds a NumericalError.
func Numericalf(format string, args ...interface{}) error {
	return New(Numerical, format, args...)
}

// IOWrap returns nil if err is nil, otherwise an IOError wrapping err.
func IOWrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(IO, err, format, args...)
}

// KindOf returns the Kind of err, or -1 if err is not one of ours.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return -1
}

// Is reports whether err has the given Kind. Like KindOf, it only
// recognizes err itself being an *Error; wrapped chains are not searched.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
