// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/internal/merr"
)

// LinearPiezoelectric couples an elastic material, a dielectric
// material, and a DxVoigtSize coupling tensor d. The full
// (VoigtSize+Dim)x(VoigtSize+Dim) block operator is
//
//	[ C   -d^T ]
//	[ -d  -eps ]
//
// and must satisfy the thermodynamic stability invariant: the Schur
// complement C - d^T.eps^-1.d is positive definite.
type LinearPiezoelectric struct {
	Dim        int
	VoigtSize  int
	Elastic    *LinearElastic
	Dielectric *LinearTransport
	D          [][]float64 // Dim x VoigtSize
}

func NewLinearPiezoelectric(elastic *LinearElastic, dielectric *LinearTransport, d [][]float64) (*LinearPiezoelectric, error) {
	const op = "NewLinearPiezoelectric"
	if elastic.Dim != dielectric.Dim {
		return nil, merr.New(merr.InvalidArgument, op, "elastic dim %d and dielectric dim %d must match", elastic.Dim, dielectric.Dim)
	}
	if len(d) != elastic.Dim || (len(d) > 0 && len(d[0]) != elastic.VoigtSize) {
		return nil, merr.New(merr.InvalidArgument, op, "coupling tensor must be %dx%d", elastic.Dim, elastic.VoigtSize)
	}
	epsInv, ok := Invert(dielectric.K)
	if !ok {
		return nil, merr.New(merr.InvalidArgument, op, "dielectric tensor is not invertible")
	}
	// schur = C - d^T . epsInv . d
	schur := la.MatAlloc(elastic.VoigtSize, elastic.VoigtSize)
	for i := range schur {
		copy(schur[i], elastic.C[i])
	}
	la.MatTrMulAdd3(schur, -1, d, epsInv, d) // schur -= tr(d) * epsInv * d
	if !IsPD(schur) {
		return nil, merr.New(merr.InvalidArgument, op, "Schur complement C - d^T.eps^-1.d is not positive definite: unstable piezoelectric material")
	}
	return &LinearPiezoelectric{Dim: elastic.Dim, VoigtSize: elastic.VoigtSize, Elastic: elastic, Dielectric: dielectric, D: d}, nil
}
