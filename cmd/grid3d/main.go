// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// grid3d builds a periodic Hex8 or Hex20 unit-cell grid, assigns
// densities (constant or random; CSV loading is 2D-only), and writes
// the result as a Gmsh mesh for visualization.
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

	kind := io.ArgToString(0, "hex8")
	nx := io.ArgToInt(1, 4)
	ny := io.ArgToInt(2, 4)
	nz := io.ArgToInt(3, 4)
	lx := io.ArgToFloat(4, 1.0)
	ly := io.ArgToFloat(5, 1.0)
	lz := io.ArgToFloat(6, 1.0)
	densityMode := io.ArgToString(7, "constant")
	densityArg := io.ArgToString(8, "0.5")
	output, _ := io.ArgToFilename(9, "/tmp/grid3d", ".msh", false)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"element kind: hex8 or hex20", "kind", kind,
		"number of elements along x", "nx", nx,
		"number of elements along y", "ny", ny,
		"number of elements along z", "nz", nz,
		"cell size along x", "lx", lx,
		"cell size along y", "ly", ly,
		"cell size along z", "lz", lz,
		"density mode: constant or random", "densityMode", densityMode,
		"density value or seed", "densityArg", densityArg,
		"output .msh filename", "output", output,
	))

	resolution := [3]int{nx, ny, nz}
	size := [3]float64{lx, ly, lz}

	var g grid.Grid
	switch kind {
	case "hex8":
		h8, err := grid.NewHex8Grid(resolution, size)
		panicOn(err)
		setDensity3D(h8.SetDensitiesConstant, h8.SetDensitiesRandom, densityMode, densityArg)
		g = h8
	case "hex20":
		h20, err := grid.NewHex20Grid(resolution, size)
		panicOn(err)
		setDensity3D(h20.SetDensitiesConstant, h20.SetDensitiesRandom, densityMode, densityArg)
		g = h20
	default:
		chk.Panic("unknown element kind %q: must be hex8 or hex20", kind)
		return
	}

	f, err := os.Create(output)
	panicOn(err)
	defer f.Close()
	panicOn(gmsh.SaveGrid(f, g))

	io.Pf("> wrote %s\n", output)
}

func setDensity3D(setConstant func(float64), setRandom func(int), mode, arg string) {
	switch mode {
	case "constant":
		setConstant(io.Atof(arg))
	case "random":
		setRandom(io.Atoi(arg))
	default:
		chk.Panic("unknown density mode %q: must be constant or random (CSV loading is 2D-only)", mode)
	}
}
