// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material holds the constitutive models: linear elastic
// (2D/3D), linear scalar transport (isotropic or full SPD tensor,
// exposed under physically-named aliases), and linear piezoelectric
// coupling of the two.
package material

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/internal/merr"
)

// ArithmeticMean is the Voigt-bound density average.
func ArithmeticMean(densities []float64) (float64, error) {
	if len(densities) == 0 {
		return 0, merr.New(merr.InvalidArgument, "ArithmeticMean", "empty density sequence")
	}
	sum := 0.0
	for _, d := range densities {
		sum += d
	}
	return sum / float64(len(densities)), nil
}

// HarmonicMean is the Reuss-bound density average. Fails if any
// density is exactly zero.
func HarmonicMean(densities []float64) (float64, error) {
	if len(densities) == 0 {
		return 0, merr.New(merr.InvalidArgument, "HarmonicMean", "empty density sequence")
	}
	sum := 0.0
	for _, d := range densities {
		if d == 0 {
			return 0, merr.New(merr.InvalidArgument, "HarmonicMean", "zero density has no harmonic mean")
		}
		sum += 1.0 / d
	}
	return float64(len(densities)) / sum, nil
}

func scaleMatrix(m [][]float64, s float64) [][]float64 {
	out := la.MatAlloc(len(m), len(m[0]))
	la.MatCopy(out, s, m) // out = s * m
	return out
}
