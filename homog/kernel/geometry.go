// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel computes per-element stiffness and source matrices
// for the three supported physics (linear elastic, linear scalar
// transport, linear piezoelectric), at unit density, by quadrature
// over each element's own reference rule.
package kernel

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/internal/merr"
)

// globalGradient returns the global-coordinate shape function
// gradient matrix (Dim x NumNodes) at reference point xi, rejecting
// degenerate (detJ=0) and inverted (detJ<0) elements.
func globalGradient(op string, e elem.Element, xi []float64, nodes [][]float64) (gradGlobal [][]float64, detJ float64, err error) {
	gradRef := e.GradShapeFunctions(xi)
	J := elem.Jacobian(gradRef, nodes)
	dim := e.Dim()
	var Jinv [][]float64
	if dim == 2 {
		detJ = elem.Det2(J)
	} else {
		detJ = elem.Det3(J)
	}
	if detJ == 0 {
		return nil, 0, merr.New(merr.GeometryError, op, "degenerate element: det(J)=0")
	}
	if detJ < 0 {
		return nil, 0, merr.New(merr.GeometryError, op, "inverted element: det(J)=%g<0", detJ)
	}
	if dim == 2 {
		Jinv = elem.Inv2(J, detJ)
	} else {
		Jinv = elem.Inv3(J, detJ)
	}
	numNodes := len(gradRef[0])
	gradGlobal = la.MatAlloc(dim, numNodes)
	la.MatMul(gradGlobal, 1, Jinv, gradRef) // gradGlobal = Jinv . gradRef
	return gradGlobal, detJ, nil
}

func symmetrize(a [][]float64) [][]float64 {
	n := len(a)
	out := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = 0.5 * (a[i][j] + a[j][i])
		}
	}
	return out
}

// trMulAdd adds coef * tr(a) * m into dest, a column of m at a time,
// via la.MatTrVecMulAdd. gosl/la's la.MatTrMulAdd3 sandwiches a square
// matrix between tr(a) and a third factor, which covers every squarely-
// dimensioned material tensor (C, K) this package uses but not the
// Dim x VoigtSize piezoelectric coupling block, so the rectangular case
// goes through this column-wise helper instead.
func trMulAdd(dest [][]float64, coef float64, a, m [][]float64) {
	rows, cols := len(dest), len(dest[0])
	col := make([]float64, rows)
	mcol := make([]float64, len(a))
	for j := 0; j < cols; j++ {
		for i := range mcol {
			mcol[i] = m[i][j]
		}
		la.VecFill(col, 0)
		la.MatTrVecMulAdd(col, coef, a, mcol)
		for i := 0; i < rows; i++ {
			dest[i][j] += col[i]
		}
	}
}

// trMulAddT is trMulAdd with m read transposed (dest += coef*tr(a)*tr(m)),
// avoiding the need to materialize tr(m) for the one coupling term that
// needs it.
func trMulAddT(dest [][]float64, coef float64, a, m [][]float64) {
	rows, cols := len(dest), len(dest[0])
	col := make([]float64, rows)
	mcol := make([]float64, len(a))
	for j := 0; j < cols; j++ {
		for i := range mcol {
			mcol[i] = m[j][i]
		}
		la.VecFill(col, 0)
		la.MatTrVecMulAdd(col, coef, a, mcol)
		for i := 0; i < rows; i++ {
			dest[i][j] += col[i]
		}
	}
}
