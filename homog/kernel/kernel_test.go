// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/homog/material"
)

var unitQuad4Nodes = [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func Test_elastic_lhs_symmetric(tst *testing.T) {
	chk.PrintTitle("ElasticLHS is symmetric")

	mat, err := material.NewLinearElastic2D(10, 0.3, material.PlaneStrain)
	if err != nil {
		tst.Errorf("NewLinearElastic2D failed: %v\n", err)
		return
	}
	K, err := ElasticLHS(mat, elem.Quad4{}, unitQuad4Nodes)
	if err != nil {
		tst.Errorf("ElasticLHS failed: %v\n", err)
		return
	}
	for i := range K {
		for j := range K[i] {
			chk.Scalar(tst, "K[i][j]==K[j][i]", 1e-12, K[i][j], K[j][i])
		}
	}
}

func Test_elastic_lhs_rigid_translation_nullspace(tst *testing.T) {
	chk.PrintTitle("ElasticLHS annihilates rigid-body translation")

	mat, err := material.NewLinearElastic2D(10, 0.3, material.PlaneStrain)
	if err != nil {
		tst.Errorf("NewLinearElastic2D failed: %v\n", err)
		return
	}
	K, err := ElasticLHS(mat, elem.Quad4{}, unitQuad4Nodes)
	if err != nil {
		tst.Errorf("ElasticLHS failed: %v\n", err)
		return
	}
	// uniform displacement (1,0) at every node: a rigid translation
	// produces zero strain and hence zero nodal force.
	u := make([]float64, 8)
	for n := 0; n < 4; n++ {
		u[2*n] = 1
	}
	f := make([]float64, 8)
	la.MatVecMul(f, 1, K, u)
	zero := make([]float64, 8)
	chk.Vector(tst, "K.u_rigid", 1e-11, f, zero)
}

func Test_scalar_lhs_constant_field_nullspace(tst *testing.T) {
	chk.PrintTitle("ScalarLHS annihilates a constant potential field")

	mat, err := material.NewLinearTransportIsotropic(2, 5.0)
	if err != nil {
		tst.Errorf("NewLinearTransportIsotropic failed: %v\n", err)
		return
	}
	K, err := ScalarLHS(mat, elem.Quad4{}, unitQuad4Nodes, GradientNegative)
	if err != nil {
		tst.Errorf("ScalarLHS failed: %v\n", err)
		return
	}
	phi := []float64{3, 3, 3, 3}
	f := make([]float64, 4)
	la.MatVecMul(f, 1, K, phi)
	zero := make([]float64, 4)
	chk.Vector(tst, "K.phi_const", 1e-11, f, zero)
}

func Test_gradient_convention_sign(tst *testing.T) {
	chk.PrintTitle("GradientConvention.Sign")
	chk.Scalar(tst, "negative", 1e-15, GradientNegative.Sign(), -1)
	chk.Scalar(tst, "positive", 1e-15, GradientPositive.Sign(), 1)
}

func Test_piezo_lhs_symmetric(tst *testing.T) {
	chk.PrintTitle("PiezoLHS is symmetric")

	elastic, err := material.NewLinearElastic2D(10, 0.3, material.PlaneStrain)
	if err != nil {
		tst.Errorf("NewLinearElastic2D failed: %v\n", err)
		return
	}
	dielectric, err := material.NewLinearTransportIsotropic(2, 1.0)
	if err != nil {
		tst.Errorf("NewLinearTransportIsotropic failed: %v\n", err)
		return
	}
	d := [][]float64{{0.01, 0.01, 0}, {0, 0, 0.02}}
	mat, err := material.NewLinearPiezoelectric(elastic, dielectric, d)
	if err != nil {
		tst.Errorf("NewLinearPiezoelectric failed: %v\n", err)
		return
	}
	K, err := PiezoLHS(mat, elem.Quad4{}, unitQuad4Nodes)
	if err != nil {
		tst.Errorf("PiezoLHS failed: %v\n", err)
		return
	}
	for i := range K {
		for j := range K[i] {
			chk.Scalar(tst, "K[i][j]==K[j][i]", 1e-11, K[i][j], K[j][i])
		}
	}
}
