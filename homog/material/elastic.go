// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/internal/merr"
)

// PlaneCondition selects the 2D elasticity reduction.
type PlaneCondition int

const (
	PlaneStress PlaneCondition = iota
	PlaneStrain
)

// LinearElastic is an immutable Voigt-notation elastic stiffness
// tensor: 3x3 in 2D (sx,sy,sxy), 6x6 in 3D.
type LinearElastic struct {
	Dim       int
	VoigtSize int
	C         [][]float64
}

// NewLinearElastic2D builds a plane-stress or plane-strain elastic
// material from Young's modulus E and Poisson's ratio nu.
func NewLinearElastic2D(E, nu float64, condition PlaneCondition) (*LinearElastic, error) {
	const op = "NewLinearElastic2D"
	if E <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "E (%g) must be positive", E)
	}
	if nu <= -1.0 || nu >= 0.5 {
		return nil, merr.New(merr.InvalidArgument, op, "nu (%g) must be in range (-1,0.5)", nu)
	}
	var C [][]float64
	if condition == PlaneStress {
		k := E / (1 - nu*nu)
		C = [][]float64{
			{k, k * nu, 0},
			{k * nu, k, 0},
			{0, 0, k * (1 - nu) / 2},
		}
	} else {
		k := E / ((1 + nu) * (1 - 2*nu))
		C = [][]float64{
			{k * (1 - nu), k * nu, 0},
			{k * nu, k * (1 - nu), 0},
			{0, 0, k * (1 - 2*nu) / 2},
		}
	}
	if !IsPD(C) {
		return nil, merr.New(merr.InvalidArgument, op, "resulting stiffness tensor is not positive definite")
	}
	return &LinearElastic{Dim: 2, VoigtSize: 3, C: C}, nil
}

// NewLinearElastic3D builds an isotropic elastic material from Lame
// parameters derived from E and nu.
func NewLinearElastic3D(E, nu float64) (*LinearElastic, error) {
	const op = "NewLinearElastic3D"
	if E <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "E (%g) must be positive", E)
	}
	if nu <= -1.0 || nu >= 0.5 {
		return nil, merr.New(merr.InvalidArgument, op, "nu (%g) must be in range (-1,0.5)", nu)
	}
	lame1 := E * nu / ((1 + nu) * (1 - 2*nu))
	lame2 := E / (2 * (1 + nu))
	C := la.MatAlloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				C[i][j] = lame1 + 2*lame2
			} else {
				C[i][j] = lame1
			}
		}
	}
	C[3][3], C[4][4], C[5][5] = lame2, lame2, lame2
	if !IsPD(C) {
		return nil, merr.New(merr.InvalidArgument, op, "resulting stiffness tensor is not positive definite")
	}
	return &LinearElastic{Dim: 3, VoigtSize: 6, C: C}, nil
}

// NewLinearElasticFromC builds an elastic material from a caller-
// supplied Voigt stiffness tensor, validating it is symmetric PD.
func NewLinearElasticFromC(dim int, C [][]float64) (*LinearElastic, error) {
	const op = "NewLinearElasticFromC"
	if !IsPD(C) {
		return nil, merr.New(merr.InvalidArgument, op, "C must be symmetric positive definite")
	}
	return &LinearElastic{Dim: dim, VoigtSize: len(C), C: C}, nil
}

// Voigt returns the arithmetic-mean (upper-bound) density-weighted
// stiffness tensor.
func (m *LinearElastic) Voigt(densities []float64) ([][]float64, error) {
	mean, err := ArithmeticMean(densities)
	if err != nil {
		return nil, err
	}
	return scaleMatrix(m.C, mean), nil
}

// Reuss returns the harmonic-mean (lower-bound) density-weighted
// stiffness tensor.
func (m *LinearElastic) Reuss(densities []float64) ([][]float64, error) {
	mean, err := HarmonicMean(densities)
	if err != nil {
		return nil, err
	}
	return scaleMatrix(m.C, mean), nil
}
