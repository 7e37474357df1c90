// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/homog/material"
)

// ElasticBMatrix builds the strain-displacement B matrix (VoigtSize x
// Dim*NumNodes) from the global-coordinate gradient matrix (Dim x
// NumNodes).
func ElasticBMatrix(dim int, gradGlobal [][]float64) [][]float64 {
	numNodes := len(gradGlobal[0])
	if dim == 2 {
		B := la.MatAlloc(3, 2*numNodes)
		for n := 0; n < numNodes; n++ {
			gx, gy := gradGlobal[0][n], gradGlobal[1][n]
			B[0][2*n] = gx
			B[1][2*n+1] = gy
			B[2][2*n] = gy
			B[2][2*n+1] = gx
		}
		return B
	}
	B := la.MatAlloc(6, 3*numNodes)
	for n := 0; n < numNodes; n++ {
		gx, gy, gz := gradGlobal[0][n], gradGlobal[1][n], gradGlobal[2][n]
		B[0][3*n] = gx
		B[1][3*n+1] = gy
		B[2][3*n+2] = gz
		B[3][3*n] = gy
		B[3][3*n+1] = gx
		B[4][3*n] = gz
		B[4][3*n+2] = gx
		B[5][3*n+1] = gz
		B[5][3*n+2] = gy
	}
	return B
}

// ElasticLHS computes the element stiffness matrix Ke = Int B^T C B
// |detJ| dOmega at unit density, symmetrized after quadrature.
func ElasticLHS(mat *material.LinearElastic, e elem.Element, nodes [][]float64) ([][]float64, error) {
	const op = "ElasticLHS"
	dim := e.Dim()
	numDofs := dim * e.NumNodes()
	K := la.MatAlloc(numDofs, numDofs)
	rule := e.QuadratureRule()
	for q, xi := range rule.Points {
		gradGlobal, detJ, err := globalGradient(op, e, xi, nodes)
		if err != nil {
			return nil, err
		}
		B := ElasticBMatrix(dim, gradGlobal)
		la.MatTrMulAdd3(K, rule.Weights[q]*detJ, B, mat.C, B) // K += w * tr(B) * C * B
	}
	return symmetrize(K), nil
}

// ElasticRHS computes the element macroscopic-source matrix Fe = -Int
// B^T C |detJ| dOmega (VoigtSize columns) at unit density, built one
// column of C at a time via la.MatTrVecMulAdd.
func ElasticRHS(mat *material.LinearElastic, e elem.Element, nodes [][]float64) ([][]float64, error) {
	const op = "ElasticRHS"
	dim := e.Dim()
	numDofs := dim * e.NumNodes()
	F := la.MatAlloc(numDofs, mat.VoigtSize)
	rule := e.QuadratureRule()
	for q, xi := range rule.Points {
		gradGlobal, detJ, err := globalGradient(op, e, xi, nodes)
		if err != nil {
			return nil, err
		}
		B := ElasticBMatrix(dim, gradGlobal)
		trMulAdd(F, -rule.Weights[q]*detJ, B, mat.C) // F -= w * tr(B) * C
	}
	return F, nil
}
