// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/homog/material"
)

// GradientConvention fixes the sign between the gradient of the
// scalar potential and the physical flux; it does not change Ke (K
// is quadratic in B) but flips the sign of Fe and of the macroscopic
// loading built from it.
type GradientConvention int

const (
	GradientNegative GradientConvention = iota // D = -K.grad(phi), electric-like
	GradientPositive                            // J = +K.grad(phi), mass/flow/thermal-like
)

// Sign returns -1 for GradientNegative, +1 for GradientPositive.
func (c GradientConvention) Sign() float64 {
	if c == GradientNegative {
		return -1
	}
	return 1
}

// ScalarBMatrix builds B = sign * gradGlobal (Dim x NumNodes).
func ScalarBMatrix(sign float64, gradGlobal [][]float64) [][]float64 {
	dim := len(gradGlobal)
	numNodes := len(gradGlobal[0])
	B := la.MatAlloc(dim, numNodes)
	for i := 0; i < dim; i++ {
		for n := 0; n < numNodes; n++ {
			B[i][n] = sign * gradGlobal[i][n]
		}
	}
	return B
}

func ScalarLHS(mat *material.LinearTransport, e elem.Element, nodes [][]float64, convention GradientConvention) ([][]float64, error) {
	const op = "ScalarLHS"
	numDofs := e.NumNodes()
	K := la.MatAlloc(numDofs, numDofs)
	rule := e.QuadratureRule()
	sign := convention.Sign()
	for q, xi := range rule.Points {
		gradGlobal, detJ, err := globalGradient(op, e, xi, nodes)
		if err != nil {
			return nil, err
		}
		B := ScalarBMatrix(sign, gradGlobal)
		la.MatTrMulAdd3(K, rule.Weights[q]*detJ, B, mat.K, B) // K += w * tr(B) * K_mat * B
	}
	return symmetrize(K), nil
}

func ScalarRHS(mat *material.LinearTransport, e elem.Element, nodes [][]float64, convention GradientConvention) ([][]float64, error) {
	const op = "ScalarRHS"
	numDofs := e.NumNodes()
	F := la.MatAlloc(numDofs, mat.Dim)
	rule := e.QuadratureRule()
	sign := convention.Sign()
	for q, xi := range rule.Points {
		gradGlobal, detJ, err := globalGradient(op, e, xi, nodes)
		if err != nil {
			return nil, err
		}
		B := ScalarBMatrix(sign, gradGlobal)
		trMulAdd(F, -rule.Weights[q]*detJ, B, mat.K) // F -= w * tr(B) * K_mat
	}
	return F, nil
}
