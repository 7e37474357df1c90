// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/homog/operator"
	"github.com/dorival/monad/internal/merr"
)

// Preconditioner solves an approximate system M.x=b cheaply.
type Preconditioner interface {
	Solve(b []float64) []float64
}

// PCG solves op.Apply(x) = b with the preconditioned conjugate
// gradient method, used uniformly for the elastic, scalar-transport
// and piezoelectric operators alike: the reference library always
// instantiates a single CG loop regardless of operator definiteness,
// and this follows that behavior rather than a per-physics split.
func PCG(op *operator.Operator, precond Preconditioner, b []float64, maxIter int, tol float64) ([]float64, error) {
	const opName = "PCG"
	n := len(b)
	x := make([]float64, n)

	bNorm := la.VecNorm(b)
	if bNorm < 1e-300 {
		return x, nil
	}

	r := make([]float64, n)
	la.VecCopy(r, 1, b) // x starts at 0, so r = b - A.x = b

	z := precond.Solve(r)
	p := make([]float64, n)
	la.VecCopy(p, 1, z)

	rz := dot(r, z)

	for iter := 0; iter < maxIter; iter++ {
		if la.VecNorm(r)/bNorm < tol {
			return x, nil
		}
		Ap := op.Apply(p)
		pAp := dot(p, Ap)
		if math.Abs(pAp) < 1e-300 {
			return nil, merr.New(merr.SolverFailure, opName, "numerical issue: p.A.p is numerically zero at iteration %d", iter)
		}
		alpha := rz / pAp

		la.VecAdd(x, alpha, p)  // x += alpha*p
		la.VecAdd(r, -alpha, Ap) // r -= alpha*(A.p)

		if la.VecNorm(r)/bNorm < tol {
			return x, nil
		}

		z = precond.Solve(r)
		rzNew := dot(r, z)
		if math.Abs(rz) < 1e-300 {
			return nil, merr.New(merr.SolverFailure, opName, "numerical issue: r.z is numerically zero at iteration %d", iter)
		}
		beta := rzNew / rz
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rz = rzNew
	}

	return nil, merr.New(merr.SolverFailure, opName, "did not converge within %d iterations (tolerance %g)", maxIter, tol)
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
