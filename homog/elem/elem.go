// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elem holds the reference-domain data for the four structured
// element kinds used by the periodic homogenization grids: Quad4,
// Quad8, Hex8 and Hex20. Each element exposes its local node layout,
// shape functions and gradients on [-1,1]^Dim, a Gauss-Legendre
// quadrature rule exact to its own polynomial order, and the Gmsh
// element-type identifier and node-reordering table used only by the
// visualization writer.
package elem

import "github.com/cpmech/gosl/la"

// Element is the reference-domain contract shared by Quad4, Quad8,
// Hex8 and Hex20. All methods operate purely on [-1,1]^Dim; mapping to
// a physical element happens in the kernel package via the Jacobian.
type Element interface {
	Dim() int
	NumNodes() int
	LocalNodes() [][]float64
	ShapeFunctions(xi []float64) []float64
	GradShapeFunctions(xi []float64) [][]float64
	QuadratureRule() Quadrature
	GmshType() int
	GmshOrder() []int
}

// Quadrature is a Gauss-Legendre tensor-product rule: Points[k] is a
// Dim-vector and Weights[k] its associated weight.
type Quadrature struct {
	Points  [][]float64
	Weights []float64
}

// gauss2 returns the abscissa/weight pair of the 1D 2-point
// Gauss-Legendre rule, exact for polynomials up to degree 3.
func gauss2() (pts, wts []float64) {
	a := 1.0 / sqrt3
	return []float64{-a, a}, []float64{1.0, 1.0}
}

// gauss3 returns the abscissa/weight pair of the 1D 3-point
// Gauss-Legendre rule, exact for polynomials up to degree 5.
func gauss3() (pts, wts []float64) {
	a := sqrt35
	return []float64{-a, 0, a}, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
}

const (
	sqrt3  = 1.7320508075688772935
	sqrt35 = 0.7745966692414833770
)

// IntegrateScalar evaluates sum_k w_k * f(xi_k) for a scalar integrand.
func IntegrateScalar(rule Quadrature, f func(xi []float64) float64) float64 {
	sum := 0.0
	for k, xi := range rule.Points {
		sum += rule.Weights[k] * f(xi)
	}
	return sum
}

// IntegrateMatrix evaluates sum_k w_k * f(xi_k) for a matrix-valued
// integrand, accumulating into a freshly allocated rows x cols matrix.
func IntegrateMatrix(rule Quadrature, rows, cols int, f func(xi []float64) [][]float64) [][]float64 {
	sum := la.MatAlloc(rows, cols)
	for k, xi := range rule.Points {
		m := f(xi)
		w := rule.Weights[k]
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				sum[i][j] += w * m[i][j]
			}
		}
	}
	return sum
}

// Jacobian computes J = gradN . nodes (Dim x Dim) given the Dim x K
// gradient matrix gradN and the K x Dim nodes matrix.
func Jacobian(gradN, nodes [][]float64) [][]float64 {
	d := len(gradN)
	J := la.MatAlloc(d, d)
	la.MatMul(J, 1, gradN, nodes) // J = gradN . nodes
	return J
}

// Det2 and Det3 compute small determinants; Inv2/Inv3 their inverses.
// Element Jacobians never exceed 3x3, so these are hand-written rather
// than routed through a generic dense-matrix inverse.

func Det2(J [][]float64) float64 {
	return J[0][0]*J[1][1] - J[0][1]*J[1][0]
}

func Inv2(J [][]float64, det float64) [][]float64 {
	inv := 1.0 / det
	return [][]float64{
		{J[1][1] * inv, -J[0][1] * inv},
		{-J[1][0] * inv, J[0][0] * inv},
	}
}

func Det3(J [][]float64) float64 {
	return J[0][0]*(J[1][1]*J[2][2]-J[1][2]*J[2][1]) -
		J[0][1]*(J[1][0]*J[2][2]-J[1][2]*J[2][0]) +
		J[0][2]*(J[1][0]*J[2][1]-J[1][1]*J[2][0])
}

func Inv3(J [][]float64, det float64) [][]float64 {
	inv := 1.0 / det
	return [][]float64{
		{
			(J[1][1]*J[2][2] - J[1][2]*J[2][1]) * inv,
			(J[0][2]*J[2][1] - J[0][1]*J[2][2]) * inv,
			(J[0][1]*J[1][2] - J[0][2]*J[1][1]) * inv,
		},
		{
			(J[1][2]*J[2][0] - J[1][0]*J[2][2]) * inv,
			(J[0][0]*J[2][2] - J[0][2]*J[2][0]) * inv,
			(J[0][2]*J[1][0] - J[0][0]*J[1][2]) * inv,
		},
		{
			(J[1][0]*J[2][1] - J[1][1]*J[2][0]) * inv,
			(J[0][1]*J[2][0] - J[0][0]*J[2][1]) * inv,
			(J[0][0]*J[1][1] - J[0][1]*J[1][0]) * inv,
		},
	}
}

// PhysicalPoint maps a reference point xi to its physical location
// given the element's nodes, via x = N(xi) . nodes.
func PhysicalPoint(e Element, xi []float64, nodes [][]float64) []float64 {
	N := e.ShapeFunctions(xi)
	dim := e.Dim()
	x := make([]float64, dim)
	for n, node := range nodes {
		for j := 0; j < dim; j++ {
			x[j] += N[n] * node[j]
		}
	}
	return x
}

// Measure integrates |det J| over the reference domain for the given
// physical nodes, using the element's own quadrature rule.
func Measure(e Element, nodes [][]float64) float64 {
	dim := e.Dim()
	rule := e.QuadratureRule()
	return IntegrateScalar(rule, func(xi []float64) float64 {
		gradN := e.GradShapeFunctions(xi)
		J := Jacobian(gradN, nodes)
		if dim == 2 {
			d := Det2(J)
			if d < 0 {
				d = -d
			}
			return d
		}
		d := Det3(J)
		if d < 0 {
			d = -d
		}
		return d
	})
}
