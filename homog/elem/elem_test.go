// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// shapesSumToOne checks the partition-of-unity property sum_n N_n(xi)=1
// and sum_n dN_n/dxi_d(xi)=0 for every direction d, at a handful of
// sample points including the element's own nodes.
func shapesSumToOne(tst *testing.T, e Element) {
	samples := append([][]float64{}, e.LocalNodes()...)
	switch e.Dim() {
	case 2:
		samples = append(samples, []float64{0, 0}, []float64{0.3, -0.4})
	case 3:
		samples = append(samples, []float64{0, 0, 0}, []float64{0.3, -0.4, 0.1})
	}
	for _, xi := range samples {
		N := e.ShapeFunctions(xi)
		sum := 0.0
		for _, n := range N {
			sum += n
		}
		chk.Scalar(tst, "sum(N)", 1e-13, sum, 1.0)

		gradN := e.GradShapeFunctions(xi)
		for d := 0; d < e.Dim(); d++ {
			sum := 0.0
			for _, v := range gradN[d] {
				sum += v
			}
			chk.Scalar(tst, "sum(dN)", 1e-12, sum, 0.0)
		}
	}
}

// shapesAreKronecker checks N_n(xi_m) = delta(n,m) at the element's own
// local nodes.
func shapesAreKronecker(tst *testing.T, e Element) {
	nodes := e.LocalNodes()
	for m, xi := range nodes {
		N := e.ShapeFunctions(xi)
		for n := range N {
			expected := 0.0
			if n == m {
				expected = 1.0
			}
			chk.Scalar(tst, "N_n(xi_m)", 1e-12, N[n], expected)
		}
	}
}

func Test_quad4_shapes(tst *testing.T) {
	chk.PrintTitle("quad4 shapes")
	e := Quad4{}
	shapesSumToOne(tst, e)
	shapesAreKronecker(tst, e)
}

func Test_quad8_shapes(tst *testing.T) {
	chk.PrintTitle("quad8 shapes")
	e := Quad8{}
	shapesSumToOne(tst, e)
	shapesAreKronecker(tst, e)
}

func Test_hex8_shapes(tst *testing.T) {
	chk.PrintTitle("hex8 shapes")
	e := Hex8{}
	shapesSumToOne(tst, e)
	shapesAreKronecker(tst, e)
}

func Test_hex20_shapes(tst *testing.T) {
	chk.PrintTitle("hex20 shapes")
	e := Hex20{}
	shapesSumToOne(tst, e)
	shapesAreKronecker(tst, e)
}

func Test_quadrature_weights(tst *testing.T) {
	chk.PrintTitle("quadrature weights sum to reference measure")
	cases := []struct {
		name string
		e    Element
		want float64
	}{
		{"quad4", Quad4{}, 4.0},
		{"quad8", Quad8{}, 4.0},
		{"hex8", Hex8{}, 8.0},
		{"hex20", Hex20{}, 8.0},
	}
	for _, c := range cases {
		rule := c.e.QuadratureRule()
		sum := 0.0
		for _, w := range rule.Weights {
			sum += w
		}
		chk.Scalar(tst, c.name, 1e-13, sum, c.want)
	}
}
