// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// grid2d builds a periodic Quad4 or Quad8 unit-cell grid, assigns
// densities (constant, random, or from a CSV file), and writes the
// result as a Gmsh mesh for visualization.
package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/dorival/monad/homog/gmsh"
	"github.com/dorival/monad/homog/grid"
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
	lx := io.ArgToFloat(3, 1.0)
	ly := io.ArgToFloat(4, 1.0)
	densityMode := io.ArgToString(5, "constant")
	densityArg := io.ArgToString(6, "0.5")
	output, _ := io.ArgToFilename(7, "/tmp/grid2d", ".msh", false)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"element kind: quad4 or quad8", "kind", kind,
		"number of elements along x", "nx", nx,
		"number of elements along y", "ny", ny,
		"cell size along x", "lx", lx,
		"cell size along y", "ly", ly,
		"density mode: constant, random, or file", "densityMode", densityMode,
		"density value, seed, or CSV path", "densityArg", densityArg,
		"output .msh filename", "output", output,
	))

	var g grid.Grid
	switch kind {
	case "quad4":
		q4, err := grid.NewQuad4Grid([2]int{nx, ny}, [2]float64{lx, ly})
		panicOn(err)
		setDensity2D(q4, densityMode, densityArg)
		g = q4
	case "quad8":
		q8, err := grid.NewQuad8Grid([2]int{nx, ny}, [2]float64{lx, ly})
		panicOn(err)
		setDensity2DOct(q8, densityMode, densityArg)
		g = q8
	default:
		chk.Panic("unknown element kind %q: must be quad4 or quad8", kind)
		return
	}

	f, err := os.Create(output)
	panicOn(err)
	defer f.Close()
	panicOn(gmsh.SaveGrid(f, g))

	io.Pf("> wrote %s\n", output)
}

func setDensity2D(g *grid.Quad4Grid, mode, arg string) {
	switch mode {
	case "constant":
		g.SetDensitiesConstant(io.Atof(arg))
	case "random":
		g.SetDensitiesRandom(io.Atoi(arg))
	case "file":
		panicOn(g.SetDensitiesFile(arg))
	default:
		chk.Panic("unknown density mode %q", mode)
	}
}

func setDensity2DOct(g *grid.Quad8Grid, mode, arg string) {
	switch mode {
	case "constant":
		g.SetDensitiesConstant(io.Atof(arg))
	case "random":
		g.SetDensitiesRandom(io.Atoi(arg))
	case "file":
		panicOn(g.SetDensitiesFile(arg))
	default:
		chk.Panic("unknown density mode %q", mode)
	}
}
