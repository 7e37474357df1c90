// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// plotshapes is a diagnostic: it plots each element kind's shape
// functions over a line sweep through its reference domain, to
// visually spot-check the hand-written Quad4/Quad8/Hex8/Hex20
// definitions in homog/elem against the expected bilinear/serendipity
// shapes.
package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/dorival/monad/homog/elem"
)

func main() {
	defer utl.DoProf(false, false)()
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	np := io.ArgToInt(0, 41)
	dirout := io.ArgToString(1, "/tmp")

	plt.Clf()
	plt.Subplot(2, 2, 1)
	plotAlongDiagonal("Quad4", elem.Quad4{}, np)
	plt.Subplot(2, 2, 2)
	plotAlongDiagonal("Quad8", elem.Quad8{}, np)
	plt.Subplot(2, 2, 3)
	plotAlongDiagonal("Hex8", elem.Hex8{}, np)
	plt.Subplot(2, 2, 4)
	plotAlongDiagonal("Hex20", elem.Hex20{}, np)
	plt.SaveD(dirout, "monad_shapes.png")
}

// plotAlongDiagonal sweeps xi = (t,...,t) from -1 to 1 and plots N_n(t)
// for every local node n, so every shape function's value at its own
// node (t=+-1) and its zero-crossing at the opposite nodes are both
// visible on one axis.
func plotAlongDiagonal(title string, e elem.Element, np int) {
	dim := e.Dim()
	numNodes := e.NumNodes()
	t := utl.LinSpace(-1, 1, np)
	N := make([][]float64, numNodes)
	for n := range N {
		N[n] = make([]float64, np)
	}
	xi := make([]float64, dim)
	for k := 0; k < np; k++ {
		for d := 0; d < dim; d++ {
			xi[d] = t[k]
		}
		vals := e.ShapeFunctions(xi)
		for n := 0; n < numNodes; n++ {
			N[n][k] = vals[n]
		}
	}
	for n := 0; n < numNodes; n++ {
		plt.Plot(t, N[n], io.Sf("label='N%d'", n))
	}
	plt.Gll("$t$", "$N(t,...,t)$", "leg_out=1, leg_ncol=2, leg_hlen=1")
	plt.Title(title, "")
}
