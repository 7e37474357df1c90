// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elem

// Hex20 is the 20-node serendipity quadratic hexahedron: corners 1-8
// ordered as Hex8, then the four bottom-face edge midpoints (9-12),
// the four top-face edge midpoints (13-16), then the four vertical
// edge midpoints (17-20).
type Hex20 struct{}

var hex20Local = [][]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	{0, -1, -1}, {1, 0, -1}, {0, 1, -1}, {-1, 0, -1},
	{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
	{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0},
}

func (Hex20) Dim() int      { return 3 }
func (Hex20) NumNodes() int { return 20 }

func (Hex20) LocalNodes() [][]float64 { return hex20Local }

func (Hex20) ShapeFunctions(xi []float64) []float64 {
	r, s, t := xi[0], xi[1], xi[2]
	N := make([]float64, 20)
	for i, node := range hex20Local {
		ri, si, ti := node[0], node[1], node[2]
		switch {
		case ri == 0:
			N[i] = 0.25 * (1 - r*r) * (1 + s*si) * (1 + t*ti)
		case si == 0:
			N[i] = 0.25 * (1 + r*ri) * (1 - s*s) * (1 + t*ti)
		case ti == 0:
			N[i] = 0.25 * (1 + r*ri) * (1 + s*si) * (1 - t*t)
		default:
			N[i] = 0.125 * (1 + r*ri) * (1 + s*si) * (1 + t*ti) * (r*ri + s*si + t*ti - 2)
		}
	}
	return N
}

func (Hex20) GradShapeFunctions(xi []float64) [][]float64 {
	r, s, t := xi[0], xi[1], xi[2]
	dNdr := make([]float64, 20)
	dNds := make([]float64, 20)
	dNdt := make([]float64, 20)
	for i, node := range hex20Local {
		ri, si, ti := node[0], node[1], node[2]
		switch {
		case ri == 0:
			dNdr[i] = -0.5 * r * (1 + s*si) * (1 + t*ti)
			dNds[i] = 0.25 * (1 - r*r) * si * (1 + t*ti)
			dNdt[i] = 0.25 * (1 - r*r) * ti * (1 + s*si)
		case si == 0:
			dNdr[i] = 0.25 * ri * (1 - s*s) * (1 + t*ti)
			dNds[i] = -0.5 * s * (1 + r*ri) * (1 + t*ti)
			dNdt[i] = 0.25 * (1 + r*ri) * (1 - s*s) * ti
		case ti == 0:
			dNdr[i] = 0.25 * ri * (1 + s*si) * (1 - t*t)
			dNds[i] = 0.25 * (1 + r*ri) * si * (1 - t*t)
			dNdt[i] = -0.5 * t * (1 + r*ri) * (1 + s*si)
		default:
			dNdr[i] = 0.125 * ri * (1 + s*si) * (1 + t*ti) * (2*r*ri + s*si + t*ti - 1)
			dNds[i] = 0.125 * si * (1 + r*ri) * (1 + t*ti) * (r*ri + 2*s*si + t*ti - 1)
			dNdt[i] = 0.125 * ti * (1 + r*ri) * (1 + s*si) * (r*ri + s*si + 2*t*ti - 1)
		}
	}
	return [][]float64{dNdr, dNds, dNdt}
}

func (Hex20) QuadratureRule() Quadrature {
	p, w := gauss3()
	var pts [][]float64
	var wts []float64
	for i, pr := range p {
		for j, ps := range p {
			for k, pt := range p {
				pts = append(pts, []float64{pr, ps, pt})
				wts = append(wts, w[i]*w[j]*w[k])
			}
		}
	}
	return Quadrature{Points: pts, Weights: wts}
}

func (Hex20) GmshType() int { return 17 }
func (Hex20) GmshOrder() []int {
	return []int{0, 1, 5, 4, 3, 2, 6, 7, 8, 16, 11, 17, 9, 12, 13, 15, 10, 19, 18, 14}
}
