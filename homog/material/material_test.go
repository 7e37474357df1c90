// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_means_bound_each_other(tst *testing.T) {
	chk.PrintTitle("arithmetic mean is >= harmonic mean")

	densities := []float64{0.2, 0.5, 1.0, 0.8}
	voigt, err := ArithmeticMean(densities)
	if err != nil {
		tst.Errorf("ArithmeticMean failed: %v\n", err)
		return
	}
	reuss, err := HarmonicMean(densities)
	if err != nil {
		tst.Errorf("HarmonicMean failed: %v\n", err)
		return
	}
	if reuss > voigt {
		tst.Errorf("Reuss bound (%g) must not exceed Voigt bound (%g)\n", reuss, voigt)
	}

	uniform := []float64{0.6, 0.6, 0.6}
	va, _ := ArithmeticMean(uniform)
	vh, _ := HarmonicMean(uniform)
	chk.Scalar(tst, "uniform means coincide", 1e-13, va, vh)
}

func Test_harmonic_mean_rejects_zero(tst *testing.T) {
	chk.PrintTitle("harmonic mean rejects zero density")
	if _, err := HarmonicMean([]float64{0.5, 0}); err == nil {
		tst.Errorf("HarmonicMean should fail on a zero density\n")
	}
}

func Test_linear_elastic_2d_rejects_bad_input(tst *testing.T) {
	chk.PrintTitle("NewLinearElastic2D validates E and nu")
	if _, err := NewLinearElastic2D(-1, 0.3, PlaneStrain); err == nil {
		tst.Errorf("should reject non-positive E\n")
	}
	if _, err := NewLinearElastic2D(1, 0.5, PlaneStrain); err == nil {
		tst.Errorf("should reject nu at the incompressible limit\n")
	}
}

func Test_linear_elastic_2d_voigt_reuss(tst *testing.T) {
	chk.PrintTitle("LinearElastic Voigt/Reuss scale C by the density mean")

	mat, err := NewLinearElastic2D(10.0, 0.25, PlaneStrain)
	if err != nil {
		tst.Errorf("NewLinearElastic2D failed: %v\n", err)
		return
	}
	densities := []float64{1.0, 1.0, 1.0}
	voigt, err := mat.Voigt(densities)
	if err != nil {
		tst.Errorf("Voigt failed: %v\n", err)
		return
	}
	for i := range voigt {
		chk.Vector(tst, "C at full density", 1e-12, voigt[i], mat.C[i])
	}
	reuss, err := mat.Reuss(densities)
	if err != nil {
		tst.Errorf("Reuss failed: %v\n", err)
		return
	}
	for i := range reuss {
		chk.Vector(tst, "C at full density (Reuss)", 1e-12, reuss[i], mat.C[i])
	}
}

func Test_linear_elastic_3d_is_isotropic(tst *testing.T) {
	chk.PrintTitle("NewLinearElastic3D produces a symmetric isotropic tensor")

	mat, err := NewLinearElastic3D(100.0, 0.3)
	if err != nil {
		tst.Errorf("NewLinearElastic3D failed: %v\n", err)
		return
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			chk.Scalar(tst, "C symmetric", 1e-12, mat.C[i][j], mat.C[j][i])
		}
	}
	// isotropy: the shear modulus equals (C11 - C12)/2
	chk.Scalar(tst, "C44 == (C11-C12)/2", 1e-12, mat.C[3][3], 0.5*(mat.C[0][0]-mat.C[0][1]))
}

func Test_linear_piezoelectric_requires_stability(tst *testing.T) {
	chk.PrintTitle("NewLinearPiezoelectric rejects an unstable Schur complement")

	elastic, err := NewLinearElastic2D(1.0, 0.3, PlaneStrain)
	if err != nil {
		tst.Errorf("NewLinearElastic2D failed: %v\n", err)
		return
	}
	dielectric, err := NewLinearTransportIsotropic(2, 0.001)
	if err != nil {
		tst.Errorf("NewLinearTransportIsotropic failed: %v\n", err)
		return
	}
	// an enormous coupling coefficient against a near-zero permittivity
	// drives the Schur complement C - d^T.eps^-1.d indefinite.
	d := [][]float64{{100, 100, 0}, {0, 0, 200}}
	if _, err := NewLinearPiezoelectric(elastic, dielectric, d); err == nil {
		tst.Errorf("expected rejection of an unstable piezoelectric material\n")
	}
}
