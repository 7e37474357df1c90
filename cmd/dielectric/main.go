// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dielectric homogenizes the effective permittivity tensor of a
// periodic Quad4 unit cell filled with two isotropic dielectric
// phases selected by a density threshold.
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
	kMatrix := io.ArgToFloat(2, 1.0)
	kInclusion := io.ArgToFloat(3, 10.0)
	inclusionFraction := io.ArgToFloat(4, 0.3)
	numWorkers := io.ArgToInt(5, 4)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"number of elements along x", "nx", nx,
		"number of elements along y", "ny", ny,
		"matrix permittivity", "kMatrix", kMatrix,
		"inclusion permittivity", "kInclusion", kInclusion,
		"inclusion volume fraction", "inclusionFraction", inclusionFraction,
		"number of worker goroutines", "numWorkers", numWorkers,
	))

	q, err := grid.NewQuad4Grid([2]int{nx, ny}, [2]float64{1, 1})
	panicOn(err)
	q.SetDensitiesRandom(1)
	densities := q.Densities()
	kMax := kMatrix
	if kInclusion > kMax {
		kMax = kInclusion
	}
	for i, d := range densities {
		if d < inclusionFraction {
			densities[i] = kInclusion / kMax
		} else {
			densities[i] = kMatrix / kMax
		}
	}
	panicOn(q.SetDensities(densities))

	mat, err := material.NewLinearTransportIsotropic(2, kMax)
	panicOn(err)

	s := solver.NewDielectricSolver(2, mat, numWorkers)
	result, err := s.Solve(q, solver.DefaultOptions())
	panicOn(err)

	Kbar := result.Tensors["K"]
	io.Pf("\nhomogenized permittivity tensor:\n")
	for _, row := range Kbar {
		io.Pf("%v\n", row)
	}
}
