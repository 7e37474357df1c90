// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merr collects the error kinds raised by the homogenization
// engine so that callers can discriminate construction-time mistakes
// from runtime solver failures.
package merr

import "fmt"

// Kind classifies an Error.
type Kind int

const (
	InvalidArgument Kind = iota
	OutOfRange
	IOError
	ParseError
	GeometryError
	SolverFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case OutOfRange:
		return "OutOfRange"
	case IOError:
		return "IOError"
	case ParseError:
		return "ParseError"
	case GeometryError:
		return "GeometryError"
	case SolverFailure:
		return "SolverFailure"
	default:
		return "Unknown"
	}
}

// Error is a located, kinded error. Op names the failing operation
// (e.g. "Quad4Grid.SetDensity"); Msg carries the human-readable
// detail, including the offending value.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Msg)
}

// New builds an *Error with a formatted message, mirroring the
// located-message convention of gosl/chk.Err.
func New(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
