// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// densityfunction demonstrates assigning a periodic Quad4 grid's
// densities from an analytic function of position rather than a
// constant, a random draw, or a CSV file.
package main

import (
	"math"
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

// checkerboard is a fun.Func sampling a smooth periodic pattern in
// [0,1], amplitude and period set from the cell size.
type checkerboard struct {
	lx, ly   float64
	amp, off float64
}

func (c checkerboard) F(t float64, x []float64) float64 {
	return c.off + c.amp*math.Sin(2*math.Pi*x[0]/c.lx)*math.Cos(2*math.Pi*x[1]/c.ly)
}

func main() {
	defer utl.DoProf(false, false)()
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	nx := io.ArgToInt(0, 16)
	ny := io.ArgToInt(1, 16)
	lx := io.ArgToFloat(2, 1.0)
	ly := io.ArgToFloat(3, 1.0)
	offset := io.ArgToFloat(4, 0.5)
	amplitude := io.ArgToFloat(5, 0.4)
	output, _ := io.ArgToFilename(6, "/tmp/densityfunction", ".msh", false)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"number of elements along x", "nx", nx,
		"number of elements along y", "ny", ny,
		"cell size along x", "lx", lx,
		"cell size along y", "ly", ly,
		"density function offset", "offset", offset,
		"density function amplitude", "amplitude", amplitude,
		"output .msh filename", "output", output,
	))

	g, err := grid.NewQuad4Grid([2]int{nx, ny}, [2]float64{lx, ly})
	panicOn(err)

	panicOn(g.SetDensitiesFunction(checkerboard{lx: lx, ly: ly, amp: amplitude, off: offset}))

	f, err := os.Create(output)
	panicOn(err)
	defer f.Close()
	panicOn(gmsh.SaveGrid(f, g))

	io.Pf("> wrote %s\n", output)
}
