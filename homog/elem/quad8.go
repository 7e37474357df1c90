// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elem

// Quad8 is the 8-node serendipity quadratic quadrilateral: corners
// 1-4 ordered as Quad4, then edge midpoints 5=(1,2) 6=(2,3) 7=(3,4)
// 8=(4,1).
type Quad8 struct{}

func (Quad8) Dim() int      { return 2 }
func (Quad8) NumNodes() int { return 8 }

func (Quad8) LocalNodes() [][]float64 {
	return [][]float64{
		{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
		{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	}
}

func (Quad8) ShapeFunctions(xi []float64) []float64 {
	r, s := xi[0], xi[1]
	return []float64{
		0.25 * (1 - r) * (1 - s) * (-r - s - 1),
		0.25 * (1 + r) * (1 - s) * (r - s - 1),
		0.25 * (1 + r) * (1 + s) * (r + s - 1),
		0.25 * (1 - r) * (1 + s) * (-r + s - 1),
		0.5 * (1 - r*r) * (1 - s),
		0.5 * (1 + r) * (1 - s*s),
		0.5 * (1 - r*r) * (1 + s),
		0.5 * (1 - r) * (1 - s*s),
	}
}

func (Quad8) GradShapeFunctions(xi []float64) [][]float64 {
	r, s := xi[0], xi[1]
	dNdr := []float64{
		0.25 * (1 - s) * (2*r + s),
		0.25 * (1 - s) * (2*r - s),
		0.25 * (1 + s) * (2*r + s),
		0.25 * (1 + s) * (2*r - s),
		-r * (1 - s),
		0.5 * (1 - s*s),
		-r * (1 + s),
		-0.5 * (1 - s*s),
	}
	dNds := []float64{
		0.25 * (1 - r) * (r + 2*s),
		0.25 * (1 + r) * (2*s - r),
		0.25 * (1 + r) * (r + 2*s),
		0.25 * (1 - r) * (2*s - r),
		-0.5 * (1 - r*r),
		-(1 + r) * s,
		0.5 * (1 - r*r),
		-(1 - r) * s,
	}
	return [][]float64{dNdr, dNds}
}

func (Quad8) QuadratureRule() Quadrature {
	p, w := gauss3()
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

func (Quad8) GmshType() int    { return 16 }
func (Quad8) GmshOrder() []int { return []int{0, 1, 2, 3, 4, 5, 6, 7} }
