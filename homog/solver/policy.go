// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/homog/grid"
	"github.com/dorival/monad/homog/kernel"
	"github.com/dorival/monad/homog/material"
	"github.com/dorival/monad/homog/operator"
)

// Policy is the physics-specific contract the periodic-cell solver is
// parameterized over: it owns the element kernel, the traits used to
// build the matrix-free operator, the macroscopic loading field, and
// the rule for splitting the assembled homogenized block operator
// back into named tensors.
type Policy interface {
	NumMacroFields() int
	Traits() operator.Traits
	ReferenceStiffness(g grid.Grid) ([][]float64, error)
	ReferenceSource(g grid.Grid) ([][]float64, error)
	MacroscopicField(g grid.Grid) [][]float64
	Split(M [][]float64) map[string][][]float64
	ReshapeField(raw []float64, g grid.Grid) map[string][][]float64
}

// ElasticPolicy drives a linear-elastic homogenization solve.
type ElasticPolicy struct {
	Dim      int
	Material *material.LinearElastic
}

func (p *ElasticPolicy) NumMacroFields() int           { return p.Material.VoigtSize }
func (p *ElasticPolicy) Traits() operator.Traits        { return operator.ElasticTraits{Dim: p.Dim} }

func (p *ElasticPolicy) ReferenceStiffness(g grid.Grid) ([][]float64, error) {
	return kernel.ElasticLHS(p.Material, g.ElementKind(), g.ElementNodes(0))
}

func (p *ElasticPolicy) ReferenceSource(g grid.Grid) ([][]float64, error) {
	return kernel.ElasticRHS(p.Material, g.ElementKind(), g.ElementNodes(0))
}

func (p *ElasticPolicy) MacroscopicField(g grid.Grid) [][]float64 {
	return elasticMacroField(g, p.Dim, p.Material.VoigtSize, 1)
}

func (p *ElasticPolicy) Split(M [][]float64) map[string][][]float64 {
	return map[string][][]float64{"C": M}
}

func (p *ElasticPolicy) ReshapeField(raw []float64, g grid.Grid) map[string][][]float64 {
	n, dim := g.NumNodes(), p.Dim
	u := la.MatAlloc(n, dim)
	for i := 0; i < n; i++ {
		for d := 0; d < dim; d++ {
			u[i][d] = raw[i*dim+d]
		}
	}
	return map[string][][]float64{"u": u}
}

// elasticMacroField builds the elastic macroscopic strain field, used
// standalone by ElasticPolicy and as the top-left block of
// PiezoPolicy's field.
func elasticMacroField(g grid.Grid, dim, voigt int, sign float64) [][]float64 {
	n := g.NumNodes()
	X := la.MatAlloc(n*dim, voigt)
	for i := 0; i < n; i++ {
		node := g.Node(i)
		x, y := node[0], node[1]
		if dim == 2 {
			X[dim*i][0] = sign * x
			X[dim*i+1][1] = sign * y
			X[dim*i][2] = sign * y / 2
			X[dim*i+1][2] = sign * x / 2
			continue
		}
		z := node[2]
		X[dim*i][0] = sign * x
		X[dim*i+1][1] = sign * y
		X[dim*i+2][2] = sign * z
		X[dim*i][3] = sign * y / 2
		X[dim*i+1][3] = sign * x / 2
		X[dim*i][4] = sign * z / 2
		X[dim*i+2][4] = sign * x / 2
		X[dim*i+1][5] = sign * z / 2
		X[dim*i+2][5] = sign * y / 2
	}
	return X
}

// TransportPolicy drives a linear scalar-transport homogenization
// solve (thermal, electrical, diffusive, ...).
type TransportPolicy struct {
	Dim        int
	Convention kernel.GradientConvention
	Material   *material.LinearTransport
}

func (p *TransportPolicy) NumMacroFields() int    { return p.Dim }
func (p *TransportPolicy) Traits() operator.Traits { return operator.TransportTraits{} }

func (p *TransportPolicy) ReferenceStiffness(g grid.Grid) ([][]float64, error) {
	return kernel.ScalarLHS(p.Material, g.ElementKind(), g.ElementNodes(0), p.Convention)
}

func (p *TransportPolicy) ReferenceSource(g grid.Grid) ([][]float64, error) {
	return kernel.ScalarRHS(p.Material, g.ElementKind(), g.ElementNodes(0), p.Convention)
}

func (p *TransportPolicy) MacroscopicField(g grid.Grid) [][]float64 {
	return transportMacroField(g, p.Dim, p.Convention.Sign())
}

func (p *TransportPolicy) Split(M [][]float64) map[string][][]float64 {
	return map[string][][]float64{"K": M}
}

func (p *TransportPolicy) ReshapeField(raw []float64, g grid.Grid) map[string][][]float64 {
	n := g.NumNodes()
	phi := la.MatAlloc(n, 1)
	for i := 0; i < n; i++ {
		phi[i][0] = raw[i]
	}
	return map[string][][]float64{"phi": phi}
}

func transportMacroField(g grid.Grid, dim int, sign float64) [][]float64 {
	n := g.NumNodes()
	X := la.MatAlloc(n, dim)
	for i := 0; i < n; i++ {
		node := g.Node(i)
		for d := 0; d < dim; d++ {
			X[i][d] = sign * node[d]
		}
	}
	return X
}

// PiezoPolicy drives a coupled linear-piezoelectric homogenization
// solve. The electrical block always uses GradientNegative, matching
// kernel.PiezoLHS/PiezoRHS's fixed convention.
type PiezoPolicy struct {
	Dim      int
	Material *material.LinearPiezoelectric
}

func (p *PiezoPolicy) NumMacroFields() int {
	return p.Material.VoigtSize + p.Dim
}

func (p *PiezoPolicy) Traits() operator.Traits { return operator.PiezoTraits{Dim: p.Dim} }

func (p *PiezoPolicy) ReferenceStiffness(g grid.Grid) ([][]float64, error) {
	return kernel.PiezoLHS(p.Material, g.ElementKind(), g.ElementNodes(0))
}

func (p *PiezoPolicy) ReferenceSource(g grid.Grid) ([][]float64, error) {
	return kernel.PiezoRHS(p.Material, g.ElementKind(), g.ElementNodes(0))
}

func (p *PiezoPolicy) MacroscopicField(g grid.Grid) [][]float64 {
	dim := p.Dim
	voigt := p.Material.VoigtSize
	n := g.NumNodes()
	numMacro := voigt + dim
	X := la.MatAlloc(n*(dim+1), numMacro)

	mech := elasticMacroField(g, dim, voigt, 1)
	for i := range mech {
		for j := 0; j < voigt; j++ {
			X[i][j] = mech[i][j]
		}
	}
	elec := transportMacroField(g, dim, kernel.GradientNegative.Sign())
	for i := range elec {
		for j := 0; j < dim; j++ {
			X[dim*n+i][voigt+j] = elec[i][j]
		}
	}
	return X
}

func (p *PiezoPolicy) Split(M [][]float64) map[string][][]float64 {
	v := p.Material.VoigtSize
	C := submatrix(M, 0, v, 0, v)
	eps := negate(submatrix(M, v, len(M), v, len(M[0])))
	d := negate(submatrix(M, v, len(M), 0, v))
	return map[string][][]float64{"C": C, "eps": eps, "d": d}
}

func (p *PiezoPolicy) ReshapeField(raw []float64, g grid.Grid) map[string][][]float64 {
	n, dim := g.NumNodes(), p.Dim
	u := la.MatAlloc(n, dim)
	phi := la.MatAlloc(n, 1)
	for i := 0; i < n; i++ {
		for d := 0; d < dim; d++ {
			u[i][d] = raw[i*dim+d]
		}
		phi[i][0] = raw[dim*n+i]
	}
	return map[string][][]float64{"u": u, "phi": phi}
}

func submatrix(M [][]float64, r0, r1, c0, c1 int) [][]float64 {
	out := la.MatAlloc(r1-r0, c1-c0)
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			out[i-r0][j-c0] = M[i][j]
		}
	}
	return out
}

func negate(M [][]float64) [][]float64 {
	out := la.MatAlloc(len(M), len(M[0]))
	for i := range M {
		for j := range M[i] {
			out[i][j] = -M[i][j]
		}
	}
	return out
}
