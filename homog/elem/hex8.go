// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elem

// Hex8 is the 8-node trilinear hexahedron: bottom face 1-4 ordered
// counterclockwise at zeta=-1, top face 5-8 ordered counterclockwise
// at zeta=1 directly above 1-4, eta front-to-rear, zeta bottom-to-top.
type Hex8 struct{}

var hex8Local = [][]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

func (Hex8) Dim() int      { return 3 }
func (Hex8) NumNodes() int { return 8 }

func (Hex8) LocalNodes() [][]float64 { return hex8Local }

func (Hex8) ShapeFunctions(xi []float64) []float64 {
	r, s, t := xi[0], xi[1], xi[2]
	N := make([]float64, 8)
	for i, node := range hex8Local {
		N[i] = 0.125 * (1 + r*node[0]) * (1 + s*node[1]) * (1 + t*node[2])
	}
	return N
}

func (Hex8) GradShapeFunctions(xi []float64) [][]float64 {
	r, s, t := xi[0], xi[1], xi[2]
	dNdr := make([]float64, 8)
	dNds := make([]float64, 8)
	dNdt := make([]float64, 8)
	for i, node := range hex8Local {
		ri, si, ti := node[0], node[1], node[2]
		dNdr[i] = 0.125 * ri * (1 + s*si) * (1 + t*ti)
		dNds[i] = 0.125 * si * (1 + r*ri) * (1 + t*ti)
		dNdt[i] = 0.125 * ti * (1 + r*ri) * (1 + s*si)
	}
	return [][]float64{dNdr, dNds, dNdt}
}

func (Hex8) QuadratureRule() Quadrature {
	p, w := gauss2()
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

func (Hex8) GmshType() int    { return 5 }
func (Hex8) GmshOrder() []int { return []int{0, 1, 5, 4, 3, 2, 6, 7} }
