// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/homog/grid"
	"github.com/dorival/monad/homog/operator"
	"github.com/dorival/monad/internal/merr"
)

// PeriodicCellSolver orchestrates the full periodic unit-cell
// homogenization solve for one physics, driven by a Policy.
type PeriodicCellSolver struct {
	Policy     Policy
	NumWorkers int
}

// Solve computes, for every macroscopic loading column, the total
// nodal field x = x_macro + x_micro, then assembles the homogenized
// tensor by the Hill-Mandel element sum. Field snapshots are retained
// in the Result according to opts.Fields.
func (s *PeriodicCellSolver) Solve(g grid.Grid, opts Options) (*Result, error) {
	const op = "PeriodicCellSolver.Solve"

	traits := s.Policy.Traits()
	Kr, err := s.Policy.ReferenceStiffness(g)
	if err != nil {
		return nil, err
	}
	Fref, err := s.Policy.ReferenceSource(g)
	if err != nil {
		return nil, err
	}

	numWorkers := s.NumWorkers
	if numWorkers < 1 {
		numWorkers = 1
	}
	op2, err := operator.New(g, traits, Kr, numWorkers)
	if err != nil {
		return nil, err
	}
	jacobi := operator.NewJacobiPreconditioner(op2)

	numMacro := s.Policy.NumMacroFields()
	numStandard := g.NumNodes()
	nodeDofs := traits.NumNodeDofs()
	fullDim := nodeDofs * numStandard

	Xbar := s.Policy.MacroscopicField(g)
	X := la.MatAlloc(fullDim, numMacro)
	for i := range Xbar {
		copy(X[i], Xbar[i])
	}

	micro := make([][]float64, numMacro)

	for q := 0; q < numMacro; q++ {
		Fred := make([]float64, op2.Dim())
		for i := 0; i < g.NumElements(); i++ {
			reduced := op2.ElementDofs(i)
			rho := g.Density(i)
			for j, rd := range reduced {
				if rd >= 0 {
					Fred[rd] += rho * Fref[j][q]
				}
			}
		}

		xtildeRed, err := PCG(op2, jacobi, Fred, opts.MaxIterations, opts.Tolerance)
		if err != nil {
			return nil, merr.New(merr.SolverFailure, op, "loading %d: %v", q, err)
		}

		xtildeFull := expandToStandard(g, traits, xtildeRed)
		micro[q] = xtildeFull
		for i := 0; i < fullDim; i++ {
			X[i][q] += xtildeFull[i]
		}
	}

	V := g.Measure()
	M := hillMandel(g, traits, Kr, X, numMacro, V)

	result := &Result{Tensors: s.Policy.Split(M)}
	if opts.Fields.Wants(FieldTotal) {
		result.Total = columnFields(s.Policy, g, X, numMacro)
	}
	if opts.Fields.Wants(FieldMacro) {
		result.Macro = columnFields(s.Policy, g, Xbar, numMacro)
	}
	if opts.Fields.Wants(FieldMicro) {
		result.Micro = make([]map[string][][]float64, numMacro)
		for q := 0; q < numMacro; q++ {
			result.Micro[q] = s.Policy.ReshapeField(micro[q], g)
		}
	}
	return result, nil
}

func columnFields(p Policy, g grid.Grid, X [][]float64, numMacro int) []map[string][][]float64 {
	out := make([]map[string][][]float64, numMacro)
	for q := 0; q < numMacro; q++ {
		col := make([]float64, len(X))
		for i := range X {
			col[i] = X[i][q]
		}
		out[q] = p.ReshapeField(col, g)
	}
	return out
}

// expandToStandard lifts the reduced microscopic correction back to
// the periodic dof space (zeros at fixed dofs) and then to the
// standard dof space, copying each element's periodic-dof values into
// its own standard dofs: this is the cover-from-quotient step that
// encodes the periodic boundary condition.
func expandToStandard(g grid.Grid, traits operator.Traits, xtildeRed []float64) []float64 {
	numPeriodic := g.NumPeriodicNodes()
	numStandard := g.NumNodes()
	nodeDofs := traits.NumNodeDofs()

	periodic := make([]float64, nodeDofs*numPeriodic)
	for dof := 0; dof < nodeDofs*numPeriodic; dof++ {
		if traits.IsFixedDof(dof, numPeriodic) {
			continue
		}
		periodic[dof] = xtildeRed[traits.ReducedDof(dof, numPeriodic)]
	}

	standard := make([]float64, nodeDofs*numStandard)
	for i := 0; i < g.NumElements(); i++ {
		stdDofs := traits.Dofs(g.Element(i), numStandard)
		perDofs := traits.Dofs(g.PeriodicElement(i), numPeriodic)
		for j := range stdDofs {
			standard[stdDofs[j]] = periodic[perDofs[j]]
		}
	}
	return standard
}

// hillMandel assembles M = (1/V) sum_i rho_i * Xe^T Kr Xe, Xe being
// the rows of X at element i's standard dofs, then symmetrizes the
// result to remove roundoff asymmetry.
func hillMandel(g grid.Grid, traits operator.Traits, Kr, X [][]float64, numMacro int, V float64) [][]float64 {
	numStandard := g.NumNodes()
	M := la.MatAlloc(numMacro, numMacro)
	for i := 0; i < g.NumElements(); i++ {
		stdDofs := traits.Dofs(g.Element(i), numStandard)
		n := len(stdDofs)
		Xe := la.MatAlloc(n, numMacro)
		for j, d := range stdDofs {
			copy(Xe[j], X[d])
		}
		rho := g.Density(i)
		la.MatTrMulAdd3(M, rho, Xe, Kr, Xe) // M += rho * tr(Xe) * Kr * Xe
	}
	for a := 0; a < numMacro; a++ {
		for b := 0; b < numMacro; b++ {
			M[a][b] /= V
		}
	}
	out := la.MatAlloc(numMacro, numMacro)
	for a := 0; a < numMacro; a++ {
		for b := 0; b < numMacro; b++ {
			out[a][b] = 0.5 * (M[a][b] + M[b][a])
		}
	}
	return out
}
