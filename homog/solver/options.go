// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver orchestrates the periodic-cell homogenization solve:
// macroscopic field construction, reduced right-hand side assembly,
// preconditioned conjugate gradient iteration against the matrix-free
// operator, expansion of the reduced solution back to standard dofs,
// and the Hill-Mandel element sum that yields the homogenized tensor.
package solver

// FieldSave is a bitmask selecting which nodal field snapshots a
// Solve call retains in its Result. The reference library's own
// bitwise-and on this enum is implemented with `|`, which makes
// Wants() accidentally work (it only tests inequality to None) but
// makes any other combined-flag test wrong. This type's And method is
// a true bitwise AND.
type FieldSave uint

const (
	FieldNone  FieldSave = 0
	FieldTotal FieldSave = 1 << 0
	FieldMacro FieldSave = 1 << 1
	FieldMicro FieldSave = 1 << 2
	FieldAll   FieldSave = FieldTotal | FieldMacro | FieldMicro
)

// And is the corrected bitwise AND; use it (not &) to test membership.
func (f FieldSave) And(g FieldSave) FieldSave { return f & g }

// Wants reports whether bit is set in f.
func (f FieldSave) Wants(bit FieldSave) bool { return f.And(bit) != FieldNone }

// Options configures a Solve call.
type Options struct {
	MaxIterations int
	Tolerance     float64
	Fields        FieldSave
}

// DefaultOptions returns maxIterations=1000, tolerance=1e-6, and no
// field snapshots retained.
func DefaultOptions() Options {
	return Options{MaxIterations: 1000, Tolerance: 1e-6, Fields: FieldNone}
}
