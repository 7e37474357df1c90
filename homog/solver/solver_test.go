// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dorival/monad/homog/grid"
	"github.com/dorival/monad/homog/material"
)

// A homogeneous unit cell (uniform density everywhere) must homogenize
// to exactly its own constitutive tensor: there is no microstructure to
// average over, so the Hill-Mandel tensor recovers the base material.

func Test_elasticity_homogeneous_cell_recovers_material(tst *testing.T) {
	chk.PrintTitle("homogeneous elastic cell recovers its own C")

	g, err := grid.NewQuad4Grid([2]int{4, 4}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	g.SetDensitiesConstant(1)

	mat, err := material.NewLinearElastic2D(5.0, 0.25, material.PlaneStrain)
	if err != nil {
		tst.Errorf("NewLinearElastic2D failed: %v\n", err)
		return
	}

	s := NewElasticitySolver(2, mat, 2)
	result, err := s.Solve(g, DefaultOptions())
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}

	Cbar := result.Tensors["C"]
	for i := range Cbar {
		chk.Vector(tst, "Cbar row", 1e-6, Cbar[i], mat.C[i])
	}
}

func Test_dielectric_homogeneous_cell_recovers_material(tst *testing.T) {
	chk.PrintTitle("homogeneous dielectric cell recovers its own K")

	g, err := grid.NewQuad4Grid([2]int{4, 4}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	g.SetDensitiesConstant(1)

	mat, err := material.NewLinearTransportIsotropic(2, 3.0)
	if err != nil {
		tst.Errorf("NewLinearTransportIsotropic failed: %v\n", err)
		return
	}

	s := NewDielectricSolver(2, mat, 2)
	result, err := s.Solve(g, DefaultOptions())
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}

	Kbar := result.Tensors["K"]
	for i := range Kbar {
		chk.Vector(tst, "Kbar row", 1e-6, Kbar[i], mat.K[i])
	}
}

func Test_elasticity_two_phase_cell_lies_between_bounds(tst *testing.T) {
	chk.PrintTitle("two-phase elastic homogenization lies within the Voigt/Reuss bounds")

	g, err := grid.NewQuad4Grid([2]int{6, 6}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	densities := make([]float64, g.NumElements())
	for i := range densities {
		if i%3 == 0 {
			densities[i] = 0.2
		} else {
			densities[i] = 1.0
		}
	}
	if err := g.SetDensities(densities); err != nil {
		tst.Errorf("SetDensities failed: %v\n", err)
		return
	}

	mat, err := material.NewLinearElastic2D(5.0, 0.25, material.PlaneStrain)
	if err != nil {
		tst.Errorf("NewLinearElastic2D failed: %v\n", err)
		return
	}
	voigt, err := mat.Voigt(densities)
	if err != nil {
		tst.Errorf("Voigt failed: %v\n", err)
		return
	}
	reuss, err := mat.Reuss(densities)
	if err != nil {
		tst.Errorf("Reuss failed: %v\n", err)
		return
	}

	s := NewElasticitySolver(2, mat, 2)
	result, err := s.Solve(g, DefaultOptions())
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	Cbar := result.Tensors["C"]
	for i := 0; i < len(Cbar); i++ {
		if Cbar[i][i] > voigt[i][i]+1e-6 {
			tst.Errorf("Cbar[%d][%d]=%g exceeds the Voigt upper bound %g\n", i, i, Cbar[i][i], voigt[i][i])
		}
		if Cbar[i][i] < reuss[i][i]-1e-6 {
			tst.Errorf("Cbar[%d][%d]=%g falls below the Reuss lower bound %g\n", i, i, Cbar[i][i], reuss[i][i])
		}
	}
}

func Test_fieldsave_and(tst *testing.T) {
	chk.PrintTitle("FieldSave.And is a true bitwise AND, not a mask-through")

	all := FieldAll
	if all.And(FieldTotal) != FieldTotal {
		tst.Errorf("FieldAll & FieldTotal should equal FieldTotal\n")
	}
	if FieldTotal.And(FieldMacro) != FieldNone {
		tst.Errorf("FieldTotal & FieldMacro should be empty, got %v\n", FieldTotal.And(FieldMacro))
	}
	if !FieldTotal.Wants(FieldTotal) {
		tst.Errorf("FieldTotal.Wants(FieldTotal) should be true\n")
	}
	if FieldNone.Wants(FieldTotal) {
		tst.Errorf("FieldNone.Wants(FieldTotal) should be false\n")
	}
}
