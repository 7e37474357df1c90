// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operator

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dorival/monad/homog/grid"
	"github.com/dorival/monad/homog/kernel"
	"github.com/dorival/monad/homog/material"
)

// traitsBijection checks that, over every non-fixed dof, ReducedDof and
// ExpandedDof are mutual inverses and every reduced index in
// [0,numNodeDofs*numPeriodicNodes-numFixedDofs) is hit exactly once.
func traitsBijection(tst *testing.T, t Traits, numPeriodicNodes int) {
	total := t.NumNodeDofs() * numPeriodicNodes
	seen := make([]bool, total-t.NumFixedDofs())
	for dof := 0; dof < total; dof++ {
		if t.IsFixedDof(dof, numPeriodicNodes) {
			continue
		}
		r := t.ReducedDof(dof, numPeriodicNodes)
		if r < 0 || r >= len(seen) {
			tst.Errorf("ReducedDof(%d) = %d out of range [0,%d)\n", dof, r, len(seen))
			continue
		}
		if seen[r] {
			tst.Errorf("ReducedDof(%d) = %d collides with another dof\n", dof, r)
		}
		seen[r] = true
		if back := t.ExpandedDof(r, numPeriodicNodes); back != dof {
			tst.Errorf("ExpandedDof(ReducedDof(%d)) = %d, want %d\n", dof, back, dof)
		}
	}
	for r, ok := range seen {
		if !ok {
			tst.Errorf("reduced dof %d is never produced by any non-fixed dof\n", r)
		}
	}
}

func Test_elastic_traits_bijection(tst *testing.T) {
	chk.PrintTitle("ElasticTraits reduced/expanded bijection")
	traitsBijection(tst, ElasticTraits{Dim: 2}, 9)
	traitsBijection(tst, ElasticTraits{Dim: 3}, 8)
}

func Test_transport_traits_bijection(tst *testing.T) {
	chk.PrintTitle("TransportTraits reduced/expanded bijection")
	traitsBijection(tst, TransportTraits{}, 12)
}

func Test_piezo_traits_bijection(tst *testing.T) {
	chk.PrintTitle("PiezoTraits reduced/expanded bijection")
	traitsBijection(tst, PiezoTraits{Dim: 2}, 9)
	traitsBijection(tst, PiezoTraits{Dim: 3}, 8)
}

func Test_operator_apply_symmetric(tst *testing.T) {
	chk.PrintTitle("matrix-free Apply is symmetric: x.(K.y) == y.(K.x)")

	g, err := grid.NewQuad4Grid([2]int{3, 3}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	g.SetDensitiesRandom(11)

	mat, err := material.NewLinearTransportIsotropic(2, 2.0)
	if err != nil {
		tst.Errorf("NewLinearTransportIsotropic failed: %v\n", err)
		return
	}
	Kr, err := kernel.ScalarLHS(mat, g.ElementKind(), g.ElementNodes(0), kernel.GradientNegative)
	if err != nil {
		tst.Errorf("ScalarLHS failed: %v\n", err)
		return
	}
	op, err := New(g, TransportTraits{}, Kr, 3)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	x := make([]float64, op.Dim())
	y := make([]float64, op.Dim())
	for i := range x {
		x[i] = float64(i+1) * 0.37
		y[i] = float64(i*i+1) * 0.11
	}
	Kx := op.Apply(x)
	Ky := op.Apply(y)

	lhs, rhs := 0.0, 0.0
	for i := range x {
		lhs += y[i] * Kx[i]
		rhs += x[i] * Ky[i]
	}
	chk.Scalar(tst, "y.(K.x) vs x.(K.y)", 1e-9, lhs, rhs)
}

func Test_operator_apply_positive_semidefinite(tst *testing.T) {
	chk.PrintTitle("matrix-free Apply is positive semidefinite")

	g, err := grid.NewQuad4Grid([2]int{3, 3}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	g.SetDensitiesConstant(1)

	mat, err := material.NewLinearTransportIsotropic(2, 1.0)
	if err != nil {
		tst.Errorf("NewLinearTransportIsotropic failed: %v\n", err)
		return
	}
	Kr, err := kernel.ScalarLHS(mat, g.ElementKind(), g.ElementNodes(0), kernel.GradientNegative)
	if err != nil {
		tst.Errorf("ScalarLHS failed: %v\n", err)
		return
	}
	op, err := New(g, TransportTraits{}, Kr, 2)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	for seed := 1; seed <= 5; seed++ {
		x := make([]float64, op.Dim())
		for i := range x {
			x[i] = float64((seed*7+i*13)%11) - 5
		}
		Kx := op.Apply(x)
		quad := 0.0
		for i := range x {
			quad += x[i] * Kx[i]
		}
		if quad < -1e-9 {
			tst.Errorf("x.(K.x) = %g must be non-negative (seed %d)\n", quad, seed)
		}
	}
}

func Test_jacobi_preconditioner_matches_diagonal(tst *testing.T) {
	chk.PrintTitle("JacobiPreconditioner solves b/diag(K)")

	g, err := grid.NewQuad4Grid([2]int{2, 2}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	g.SetDensitiesConstant(1)

	mat, err := material.NewLinearTransportIsotropic(2, 1.0)
	if err != nil {
		tst.Errorf("NewLinearTransportIsotropic failed: %v\n", err)
		return
	}
	Kr, err := kernel.ScalarLHS(mat, g.ElementKind(), g.ElementNodes(0), kernel.GradientNegative)
	if err != nil {
		tst.Errorf("ScalarLHS failed: %v\n", err)
		return
	}
	op, err := New(g, TransportTraits{}, Kr, 1)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	jacobi := NewJacobiPreconditioner(op)
	b := make([]float64, op.Dim())
	for i := range b {
		b[i] = float64(i + 1)
	}
	z := jacobi.Solve(b)
	for i := range z {
		if jacobi.diag[i] == 0 {
			tst.Errorf("diag[%d] must not be zero\n", i)
			continue
		}
		chk.Scalar(tst, "z[i]", 1e-12, z[i], b[i]/jacobi.diag[i])
	}
}
