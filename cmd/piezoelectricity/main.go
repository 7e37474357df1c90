// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// piezoelectricity homogenizes the effective elastic, dielectric, and
// piezoelectric coupling tensors of a periodic 2D Quad4 unit cell
// filled with one piezoelectric material at two densities, selected by
// a density threshold: inclusions at full density embedded in a matrix
// at density 0.01, which scales the matrix's elastic, dielectric and
// coupling tensors alike.
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

	nx := io.ArgToInt(0, 8)
	ny := io.ArgToInt(1, 8)
	E := io.ArgToFloat(2, 1.0)
	nu := io.ArgToFloat(3, 0.3)
	epsilon := io.ArgToFloat(4, 1.0)
	d31 := io.ArgToFloat(5, 0.1)
	inclusionFraction := io.ArgToFloat(6, 0.4)
	numWorkers := io.ArgToInt(7, 4)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"number of elements along x", "nx", nx,
		"number of elements along y", "ny", ny,
		"Young's modulus", "E", E,
		"Poisson's ratio", "nu", nu,
		"dielectric permittivity", "epsilon", epsilon,
		"piezoelectric coupling coefficient d31", "d31", d31,
		"inclusion volume fraction", "inclusionFraction", inclusionFraction,
		"number of worker goroutines", "numWorkers", numWorkers,
	))

	q, err := grid.NewQuad4Grid([2]int{nx, ny}, [2]float64{1, 1})
	panicOn(err)
	q.SetDensitiesRandom(1)
	densities := q.Densities()
	for i, v := range densities {
		if v < inclusionFraction {
			densities[i] = 1.0
		} else {
			densities[i] = 0.01
		}
	}
	panicOn(q.SetDensities(densities))

	elastic, err := material.NewLinearElastic2D(E, nu, material.PlaneStrain)
	panicOn(err)

	dielectric, err := material.NewLinearTransportIsotropic(2, epsilon)
	panicOn(err)

	d := [][]float64{
		{d31, d31, 0},
		{0, 0, 2 * d31},
	}
	mat, err := material.NewLinearPiezoelectric(elastic, dielectric, d)
	panicOn(err)

	s := solver.NewPiezoelectricitySolver(2, mat, numWorkers)
	result, err := s.Solve(q, solver.DefaultOptions())
	panicOn(err)

	io.Pf("\nhomogenized elastic stiffness tensor C:\n")
	for _, row := range result.Tensors["C"] {
		io.Pf("%v\n", row)
	}
	io.Pf("\nhomogenized dielectric tensor eps:\n")
	for _, row := range result.Tensors["eps"] {
		io.Pf("%v\n", row)
	}
	io.Pf("\nhomogenized piezoelectric coupling tensor d:\n")
	for _, row := range result.Tensors["d"] {
		io.Pf("%v\n", row)
	}
}
