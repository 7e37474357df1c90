// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/homog/material"
)

// PiezoLHS computes the coupled block stiffness matrix:
//
//	Ke = [ Kuu      -Kphiu^T ]
//	     [ -Kphiu   -Kphiphi ]
//
// NumDofs = Dim*NumNodes (mechanical) + NumNodes (electrical). The
// electrical block always uses GradientNegative, matching the
// reference library's fixed choice for the piezoelectric kernel.
func PiezoLHS(mat *material.LinearPiezoelectric, e elem.Element, nodes [][]float64) ([][]float64, error) {
	const op = "PiezoLHS"
	dim := e.Dim()
	numNodes := e.NumNodes()
	numU := dim * numNodes
	numPhi := numNodes
	voigt := mat.VoigtSize

	Kuu := la.MatAlloc(numU, numU)
	Kphiphi := la.MatAlloc(numPhi, numPhi)
	Kphiu := la.MatAlloc(numPhi, numU)
	DBu := la.MatAlloc(dim, numU)

	rule := e.QuadratureRule()
	for q, xi := range rule.Points {
		gradGlobal, detJ, err := globalGradient(op, e, xi, nodes)
		if err != nil {
			return nil, err
		}
		w := rule.Weights[q] * detJ

		Bu := ElasticBMatrix(dim, gradGlobal)
		Bphi := ScalarBMatrix(GradientNegative.Sign(), gradGlobal)

		la.MatTrMulAdd3(Kuu, w, Bu, mat.Elastic.C, Bu)          // Kuu += w * tr(Bu) * C * Bu
		la.MatTrMulAdd3(Kphiphi, w, Bphi, mat.Dielectric.K, Bphi) // Kphiphi += w * tr(Bphi) * K * Bphi

		la.MatFill(DBu, 0)
		la.MatMul(DBu, 1, mat.D, Bu)    // DBu = D . Bu
		trMulAdd(Kphiu, w, Bphi, DBu) // Kphiu += w * tr(Bphi) * D * Bu
	}

	numDofs := numU + numPhi
	K := la.MatAlloc(numDofs, numDofs)
	for i := 0; i < numU; i++ {
		for j := 0; j < numU; j++ {
			K[i][j] = Kuu[i][j]
		}
	}
	for i := 0; i < numPhi; i++ {
		for j := 0; j < numPhi; j++ {
			K[numU+i][numU+j] = -Kphiphi[i][j]
		}
	}
	for i := 0; i < numPhi; i++ {
		for j := 0; j < numU; j++ {
			K[numU+i][j] = -Kphiu[i][j]
			K[j][numU+i] = -Kphiu[i][j]
		}
	}
	_ = voigt
	return symmetrize(K), nil
}

// PiezoRHS computes the coupled macroscopic-source matrix:
//
//	Fe = [ Fuu    Fuphi  ]
//	     [ -Fphiu -Fphiphi ]
//
// with NumMacroFields = VoigtSize + Dim columns.
func PiezoRHS(mat *material.LinearPiezoelectric, e elem.Element, nodes [][]float64) ([][]float64, error) {
	const op = "PiezoRHS"
	dim := e.Dim()
	numNodes := e.NumNodes()
	numU := dim * numNodes
	numPhi := numNodes
	voigt := mat.VoigtSize
	numMacro := voigt + dim

	Fuu := la.MatAlloc(numU, voigt)
	Fphiphi := la.MatAlloc(numPhi, dim)
	Fphiu := la.MatAlloc(numPhi, voigt)
	Fuphi := la.MatAlloc(numU, dim)

	rule := e.QuadratureRule()
	for q, xi := range rule.Points {
		gradGlobal, detJ, err := globalGradient(op, e, xi, nodes)
		if err != nil {
			return nil, err
		}
		w := rule.Weights[q] * detJ

		Bu := ElasticBMatrix(dim, gradGlobal)
		Bphi := ScalarBMatrix(GradientNegative.Sign(), gradGlobal)

		trMulAdd(Fuu, -w, Bu, mat.Elastic.C)          // Fuu -= w * tr(Bu) * C
		trMulAdd(Fphiphi, -w, Bphi, mat.Dielectric.K) // Fphiphi -= w * tr(Bphi) * K
		trMulAdd(Fphiu, -w, Bphi, mat.D)              // Fphiu -= w * tr(Bphi) * D
		trMulAddT(Fuphi, w, Bu, mat.D)                // Fuphi += w * tr(Bu) * tr(D)
	}

	F := la.MatAlloc(numU+numPhi, numMacro)
	for i := 0; i < numU; i++ {
		for j := 0; j < voigt; j++ {
			F[i][j] = Fuu[i][j]
		}
		for j := 0; j < dim; j++ {
			F[i][voigt+j] = Fuphi[i][j]
		}
	}
	for i := 0; i < numPhi; i++ {
		for j := 0; j < voigt; j++ {
			F[numU+i][j] = -Fphiu[i][j]
		}
		for j := 0; j < dim; j++ {
			F[numU+i][voigt+j] = -Fphiphi[i][j]
		}
	}
	return F, nil
}
