// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elem

// Quad4 is the 4-node bilinear quadrilateral. Local node order is
// counterclockwise starting at (-1,-1): 1=(-1,-1) 2=(1,-1) 3=(1,1)
// 4=(-1,1), with xi left-to-right and eta bottom-to-top.
type Quad4 struct{}

func (Quad4) Dim() int      { return 2 }
func (Quad4) NumNodes() int { return 4 }

func (Quad4) LocalNodes() [][]float64 {
	return [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
}

func (Quad4) ShapeFunctions(xi []float64) []float64 {
	r, s := xi[0], xi[1]
	return []float64{
		0.25 * (1 - r) * (1 - s),
		0.25 * (1 + r) * (1 - s),
		0.25 * (1 + r) * (1 + s),
		0.25 * (1 - r) * (1 + s),
	}
}

func (Quad4) GradShapeFunctions(xi []float64) [][]float64 {
	r, s := xi[0], xi[1]
	dNdr := []float64{-0.25 * (1 - s), 0.25 * (1 - s), 0.25 * (1 + s), -0.25 * (1 + s)}
	dNds := []float64{-0.25 * (1 - r), -0.25 * (1 + r), 0.25 * (1 + r), 0.25 * (1 - r)}
	return [][]float64{dNdr, dNds}
}

func (Quad4) QuadratureRule() Quadrature {
	p, w := gauss2()
	var pts [][]float64
	var wts []float64
	for i, pr := range p {
		for j, ps := range p {
			pts = append(pts, []float64{pr, ps})
			wts = append(wts, w[i]*w[j])
		}
	}
	return Quadrature{Points: pts, Weights: wts}
}

func (Quad4) GmshType() int    { return 3 }
func (Quad4) GmshOrder() []int { return []int{0, 1, 2, 3} }
