// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// elasticity homogenizes the effective elastic stiffness tensor of a
// periodic Quad4/Quad8/Hex8/Hex20 unit cell filled with two isotropic
// phases (matrix and inclusion) selected by a density threshold.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/dorival/monad/homog/grid"
	"github.com/dorival/monad/homog/material"
	"github.com/dorival/monad/homog/solver"
)

func panicOn(err error) {
	if err != nil {
		chk.Panic("%v", err)
	}
}

func main() {
	defer utl.DoProf(false, false)()
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	kind := io.ArgToString(0, "quad4")
	nx := io.ArgToInt(1, 8)
	ny := io.ArgToInt(2, 8)
	E := io.ArgToFloat(3, 1.0)
	nu := io.ArgToFloat(4, 0.3)
	inclusionFraction := io.ArgToFloat(5, 0.3)
	numWorkers := io.ArgToInt(6, 4)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"element kind: quad4, quad8, hex8, or hex20", "kind", kind,
		"number of elements along x", "nx", nx,
		"number of elements along y", "ny", ny,
		"Young's modulus", "E", E,
		"Poisson's ratio", "nu", nu,
		"inclusion volume fraction", "inclusionFraction", inclusionFraction,
		"number of worker goroutines", "numWorkers", numWorkers,
	))

	var g grid.Grid
	var dim int
	switch kind {
	case "quad4":
		q, err := grid.NewQuad4Grid([2]int{nx, ny}, [2]float64{1, 1})
		panicOn(err)
		q.SetDensitiesRandom(1)
		thresholdDensities(q.Densities(), inclusionFraction)
		panicOn(q.SetDensities(q.Densities()))
		g, dim = q, 2
	case "quad8":
		q, err := grid.NewQuad8Grid([2]int{nx, ny}, [2]float64{1, 1})
		panicOn(err)
		q.SetDensitiesRandom(1)
		thresholdDensities(q.Densities(), inclusionFraction)
		panicOn(q.SetDensities(q.Densities()))
		g, dim = q, 2
	case "hex8":
		h, err := grid.NewHex8Grid([3]int{nx, ny, nx}, [3]float64{1, 1, 1})
		panicOn(err)
		h.SetDensitiesRandom(1)
		thresholdDensities(h.Densities(), inclusionFraction)
		panicOn(h.SetDensities(h.Densities()))
		g, dim = h, 3
	case "hex20":
		h, err := grid.NewHex20Grid([3]int{nx, ny, nx}, [3]float64{1, 1, 1})
		panicOn(err)
		h.SetDensitiesRandom(1)
		thresholdDensities(h.Densities(), inclusionFraction)
		panicOn(h.SetDensities(h.Densities()))
		g, dim = h, 3
	default:
		chk.Panic("unknown element kind %q: must be quad4, quad8, hex8, or hex20", kind)
		return
	}

	var mat *material.LinearElastic
	var err error
	if dim == 2 {
		mat, err = material.NewLinearElastic2D(E, nu, material.PlaneStrain)
	} else {
		mat, err = material.NewLinearElastic3D(E, nu)
	}
	panicOn(err)

	s := solver.NewElasticitySolver(dim, mat, numWorkers)
	result, err := s.Solve(g, solver.DefaultOptions())
	panicOn(err)

	Cbar := result.Tensors["C"]
	io.Pf("\nhomogenized stiffness tensor C (Voigt notation):\n")
	for _, row := range Cbar {
		io.Pf("%v\n", row)
	}
}

// thresholdDensities turns a uniform random [0,1) fill into a two-phase
// indicator: 1 for the matrix, 0.2 for the inclusion, split so that
// approximately fraction of the elements become inclusions.
func thresholdDensities(densities []float64, fraction float64) {
	for i, d := range densities {
		if d < fraction {
			densities[i] = 0.2
		} else {
			densities[i] = 1.0
		}
	}
}
